package internal

import (
	"fmt"
	"runtime"

	"github.com/sipeed/picocmd/cmd/picocmd/internal/owners"
	"github.com/sipeed/picocmd/pkg/commands"
	"github.com/sipeed/picocmd/pkg/config"
	"github.com/sipeed/picocmd/pkg/logger"
)

var (
	version   = "dev"
	gitCommit string
	buildTime string
	goVersion string
)

func GetConfigPath() string {
	return config.ResolveRuntimePaths().ConfigPath
}

// LoadConfig loads the config file and applies its logging settings.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(GetConfigPath())
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	logger.SetLevel(level)

	if cfg.Log.File != "" {
		if err := logger.EnableFileLogging(cfg.Log.File); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// NewExecutor registers the builtin and sample owners and returns the
// executor the CLI feeds lines into.
func NewExecutor(cfg *config.Config) commands.Executor {
	reg := commands.NewRegistry()
	reg.Register(&commands.BuiltinOwner{Registry: reg, Catalyst: cfg.Catalyst})
	reg.Register(&owners.Calc{})
	reg.Register(&owners.Text{})

	var exec commands.Executor = commands.NewDispatcher(reg, commands.WithCatalyst(cfg.Catalyst))
	if cfg.RateLimit.Enabled {
		exec = commands.NewThrottled(exec, cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
	}

	logger.InfoCF("cli", "Dispatcher ready", map[string]any{
		"catalyst": cfg.Catalyst,
		"commands": len(reg.Handlers()),
	})
	return exec
}

// FormatVersion returns the version string with optional git commit
func FormatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

// FormatBuildInfo returns build time and go version info
func FormatBuildInfo() (string, string) {
	build := buildTime
	goVer := goVersion
	if goVer == "" {
		goVer = runtime.Version()
	}
	return build, goVer
}
