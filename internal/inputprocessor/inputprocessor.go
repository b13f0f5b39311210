// Package inputprocessor turns the article a caller supplies (inline text, a
// file, a URL or stdin) into clean plain text for keyword extraction.
package inputprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"bubble/internal/models"
	"bubble/internal/util"

	log "github.com/sirupsen/logrus"
)

// maxArticleBytes bounds what is read from a file, a URL or stdin.
const maxArticleBytes = 4 << 20

// Input names the candidate article sources. Path wins over Text, and Text
// wins over Stdin. Path may be an http(s) URL.
type Input struct {
	Text  string
	Path  string
	Stdin io.Reader
}

// Result holds the extracted article.
type Result struct {
	Text        string
	ContentType string
	Source      string // "file", "url", "text" or "stdin"
}

// Processor defines the interface for processing article input.
type Processor interface {
	Process(ctx context.Context, in Input) (Result, error)
}

// New creates the default processor.
func New() Processor {
	return &defaultProcessor{client: &http.Client{Timeout: 30 * time.Second}}
}

type defaultProcessor struct {
	client *http.Client
}

// Process reads the first available source, normalizes it and strips HTML.
// An article that is empty after cleaning yields models.ErrEmptyArticle.
func (p *defaultProcessor) Process(ctx context.Context, in Input) (Result, error) {
	var (
		res  Result
		data []byte
		err  error
	)

	switch {
	case in.Path != "":
		if u, perr := url.Parse(in.Path); perr == nil && (u.Scheme == "http" || u.Scheme == "https") {
			data, res.ContentType, err = p.fetch(ctx, u.String())
			res.Source = "url"
		} else {
			data, err = readFile(in.Path)
			res.Source = "file"
		}
	case strings.TrimSpace(in.Text) != "":
		data = []byte(in.Text)
		res.Source = "text"
	case in.Stdin != nil:
		data, err = io.ReadAll(io.LimitReader(in.Stdin, maxArticleBytes))
		if err != nil {
			err = fmt.Errorf("failed to read article from stdin: %w", err)
		}
		res.Source = "stdin"
	default:
		return res, models.ErrEmptyArticle
	}
	if err != nil {
		return res, err
	}

	if res.ContentType == "" {
		res.ContentType = http.DetectContentType(data)
	}

	text, err := util.CleanFileContent(data, res.Source)
	if err != nil {
		return res, err
	}
	if isHTML(res.ContentType) {
		log.Debugf("Article from %s detected as HTML; extracting visible text", res.Source)
		text, err = htmlToText(text)
		if err != nil {
			return res, err
		}
	}

	res.Text = strings.TrimSpace(text)
	if res.Text == "" {
		return res, models.ErrEmptyArticle
	}
	return res, nil
}

func readFile(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat article file '%s': %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("article path '%s' is a directory: %w", path, models.ErrValidation)
	}
	binary, err := util.IsLikelyBinary(path)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect article file '%s': %w", path, err)
	}
	if binary {
		return nil, fmt.Errorf("article file '%s' looks binary: %w", path, models.ErrValidation)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return nil, fmt.Errorf("permission denied reading file '%s': %w", path, err)
		}
		return nil, fmt.Errorf("failed to open file '%s': %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxArticleBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", path, err)
	}
	return data, nil
}

func (p *defaultProcessor) fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request for URL '%s': %w", rawURL, err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch URL '%s': %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		hint, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, "", fmt.Errorf("failed to fetch URL '%s': status code %d %s - Body Hint: %s",
			rawURL, resp.StatusCode, http.StatusText(resp.StatusCode), string(hint))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxArticleBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body from URL '%s': %w", rawURL, err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

func isHTML(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml")
}
