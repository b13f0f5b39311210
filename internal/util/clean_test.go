package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanFileContent(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"bom stripped", append([]byte{0xEF, 0xBB, 0xBF}, "hello"...), "hello"},
		{"smart quotes", []byte("\u201CGreen\u201D bonds\u2019 rise"), "\"Green\" bonds' rise"},
		{"dashes and ellipsis", []byte("a\u2013b\u2014c\u2026"), "a-b--c..."},
		{"nbsp", []byte("carbon\u00a0markets"), "carbon markets"},
		{"invalid utf8 repaired", []byte{'a', 0xff, 'b'}, "a\uFFFDb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanFileContent(tt.in, "test")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsLikelyBinary(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "a.txt")
	bin := filepath.Join(dir, "a.bin")
	require.NoError(t, os.WriteFile(text, []byte("plain article"), 0o644))
	require.NoError(t, os.WriteFile(bin, []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}, 0o644))

	isBin, err := IsLikelyBinary(text)
	require.NoError(t, err)
	assert.False(t, isBin)

	isBin, err = IsLikelyBinary(bin)
	require.NoError(t, err)
	assert.True(t, isBin)

	_, err = IsLikelyBinary(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
