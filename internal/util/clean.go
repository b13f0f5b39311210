package util

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

const maxBinaryCheckBytes = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// typography flattens the punctuation feeds and word processors like to emit,
// including the C1 code points left behind by mis-decoded Windows-1252.
var typography = strings.NewReplacer(
	"\u2018", "'", "\u2019", "'", "\u201C", "\"", "\u201D", "\"",
	"\u2013", "-", "\u2014", "--", "\u2026", "...", "\u00a0", " ",
	"\u0096", "-", "\u0097", "--", "\u0091", "'", "\u0092", "'",
	"\u0093", "\"", "\u0094", "\"", "\u200b", "",
)

// IsLikelyBinary reports whether the first bytes of the file contain a NUL.
func IsLikelyBinary(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, maxBinaryCheckBytes)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	return bytes.Contains(buffer[:n], []byte{0}), nil
}

// CleanFileContent strips a UTF-8 BOM, repairs invalid UTF-8 and normalizes
// typographic punctuation. src names the input in log messages.
func CleanFileContent(fileContentBytes []byte, src string) (string, error) {
	fileContentBytes = bytes.TrimPrefix(fileContentBytes, utf8BOM)

	if !utf8.Valid(fileContentBytes) {
		log.Warnf("%s has invalid UTF-8, replacing invalid characters", src)
		fileContentBytes = bytes.ToValidUTF8(fileContentBytes, []byte(string(utf8.RuneError)))
	}

	str := typography.Replace(string(fileContentBytes))

	if !utf8.ValidString(str) {
		return "", fmt.Errorf("invalid UTF-8 after replacements: %s", src)
	}
	return str, nil
}
