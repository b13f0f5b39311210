package cmd

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"bubble/internal/models"

	"github.com/fatih/color"
)

// printJSON writes v indented, keeping non-ASCII text and HTML characters
// as they are.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// echoMethod reports on stderr how a result was produced.
func echoMethod(method string) {
	c := color.New(color.FgYellow)
	if method == models.MethodModel {
		c = color.New(color.FgGreen)
	} else if strings.HasSuffix(method, "thinking") {
		c = color.New(color.FgCyan)
	}
	c.Fprintf(os.Stderr, "method: %s\n", method)
}
