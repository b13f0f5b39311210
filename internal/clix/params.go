// Package clix holds flag parsing shared by the cobra commands.
package clix

import (
	"io"
	"os"
	"strings"

	"bubble/internal/inputprocessor"

	"github.com/spf13/pflag"
)

const (
	DefaultLimit = 20
	MaxLimit     = 200
)

type PaginationParams struct {
	Limit  int
	Offset int
}

// ParsePagination reads --limit and --offset, clamping them to sane values.
func ParsePagination(flags *pflag.FlagSet) (PaginationParams, error) {
	limit, _ := flags.GetInt("limit")
	offset, _ := flags.GetInt("offset")
	return NormalizePagination(limit, offset), nil
}

// NormalizePagination applies the default and maximum page size.
func NormalizePagination(limit, offset int) PaginationParams {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return PaginationParams{Limit: limit, Offset: offset}
}

// ParseProfessional returns nil unless --professional was given explicitly,
// so that "not set" and "false" stay distinct.
func ParseProfessional(flags *pflag.FlagSet) *bool {
	if !flags.Changed("professional") {
		return nil
	}
	v, _ := flags.GetBool("professional")
	return &v
}

// ParseArticle builds the article input from --text and --article-path,
// falling back to stdin when it is piped.
func ParseArticle(flags *pflag.FlagSet, stdin *os.File) inputprocessor.Input {
	text, _ := flags.GetString("text")
	path, _ := flags.GetString("article-path")
	return inputprocessor.Input{
		Text:  text,
		Path:  strings.TrimSpace(path),
		Stdin: pipedReader(stdin),
	}
}

func pipedReader(f *os.File) io.Reader {
	if f == nil {
		return nil
	}
	fi, err := f.Stat()
	if err != nil || fi.Mode()&os.ModeCharDevice != 0 {
		return nil
	}
	return f
}
