package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"bubble/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJSONKeepsTextReadable(t *testing.T) {
	var buf bytes.Buffer
	err := printJSON(&buf, map[string]string{"hook": "R&D <climate> café"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"hook\": \"R&D <climate> café\"\n}\n", buf.String())
}

func TestArticleError(t *testing.T) {
	err := articleError(models.ErrEmptyArticle)
	assert.True(t, errors.Is(err, models.ErrEmptyArticle))
	assert.Contains(t, err.Error(), "--article-path")

	other := errors.New("boom")
	err = articleError(other)
	assert.True(t, errors.Is(err, other))
	assert.Contains(t, err.Error(), "failed to read article")
}

func TestCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"study", "brief", "random", "categories", "groups", "keywords", "serve", "worker", "job", "history", "cost", "doctor"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestGetAppFromContextMissing(t *testing.T) {
	_, err := GetAppFromContext(context.Background())
	assert.Error(t, err)
}
