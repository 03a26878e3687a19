package cmd

import (
	"fmt"

	"github.com/go-futura/futura/cmd/futura/internal/config"
	settings "github.com/go-futura/futura/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the effective settings",
		Long: `Show the effective widget settings for a project.

The project root is found by walking up from dir (default: the current
directory) to the nearest go.mod. Settings are read from futura.yaml,
futura.yml or futura.toml in the root, on top of the built-in defaults.`,
		Usage: "futura config [dir] [--toml]",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	dir := "."
	format := ".yaml"
	for _, arg := range args {
		switch arg {
		case "--toml":
			format = ".toml"
		default:
			dir = arg
		}
	}

	root, err := config.FindProjectRoot(dir)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	source := cfg.SettingsPath
	if source == "" {
		source = "defaults"
	}
	fmt.Fprintf(stdout, "Project: %s (%s)\n", cfg.AppName, cfg.ModulePath)
	fmt.Fprintf(stdout, "Settings: %s\n\n", source)

	data, err := settings.Encode(cfg.Settings, format)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
