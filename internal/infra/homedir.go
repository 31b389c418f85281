package infra

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveHomeDir returns the directory picocmd keeps its config in:
// PICOCMD_HOME when set, else ~/.picocmd, else a directory under the
// system temp dir.
func ResolveHomeDir() string {
	if envHome := strings.TrimSpace(os.Getenv("PICOCMD_HOME")); envHome != "" {
		return envHome
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return filepath.Join(os.TempDir(), ".picocmd")
	}
	return filepath.Join(home, ".picocmd")
}
