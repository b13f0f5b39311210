package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultPromptDir is the subdirectory within the user's home directory.
const defaultPromptDir = ".config/bubble/prompts"

// LoadPromptContent resolves the path for a prompt template and reads its content.
// If configuredPath is absolute, it's used directly.
// If configuredPath is relative, it's treated as a filename within ~/.config/bubble/prompts/.
// An empty configuredPath returns an empty string so the caller falls back to its built-in prompt.
func LoadPromptContent(configuredPath string) (string, error) {
	if configuredPath == "" {
		return "", nil
	}

	finalPath := configuredPath
	if !filepath.IsAbs(configuredPath) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		finalPath = filepath.Join(homeDir, defaultPromptDir, configuredPath)
	}

	promptBytes, err := os.ReadFile(finalPath)
	if err != nil {
		if os.IsNotExist(err) && !filepath.IsAbs(configuredPath) {
			return "", fmt.Errorf("prompt file not found at default location '%s'. Please create it or specify an absolute path in bubble.yaml: %w", finalPath, err)
		}
		return "", fmt.Errorf("failed to read prompt file '%s': %w", finalPath, err)
	}

	return string(promptBytes), nil
}
