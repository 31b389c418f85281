package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sipeed/picocmd/internal/infra"
)

const (
	EnvPicoCmdConfig = "PICOCMD_CONFIG"
	EnvPicoCmdHome   = "PICOCMD_HOME"
)

type RuntimePaths struct {
	HomeDir    string
	ConfigPath string
}

// ResolveRuntimePaths prefers PICOCMD_CONFIG, then PICOCMD_HOME/config.json,
// then ~/.picocmd/config.json.
func ResolveRuntimePaths() RuntimePaths {
	if configPath := expandHome(strings.TrimSpace(os.Getenv(EnvPicoCmdConfig))); configPath != "" {
		return RuntimePaths{HomeDir: filepath.Dir(configPath), ConfigPath: configPath}
	}

	homeDir := expandHome(infra.ResolveHomeDir())
	return RuntimePaths{HomeDir: homeDir, ConfigPath: filepath.Join(homeDir, "config.json")}
}
