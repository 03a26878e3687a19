// Package config resolves the futura settings file for a project.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	settings "github.com/go-futura/futura/pkg/config"
)

// Names lists the settings files looked up in a project root, in order.
var Names = []string{"futura.yaml", "futura.yml", "futura.toml"}

// Resolved contains resolved project values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	// SettingsPath is empty when the project has no settings file.
	SettingsPath string
	Settings     settings.Settings
}

// Resolve reads go.mod and the settings file (if present) in dir.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	path, err := findSettings(dir)
	if err != nil {
		return nil, err
	}

	s := settings.Default()
	if path != "" {
		s, err = settings.Load(path)
		if err != nil {
			return nil, err
		}
	}

	return &Resolved{
		Root:         dir,
		ModulePath:   modulePath,
		AppName:      defaultAppName(modulePath, dir),
		SettingsPath: path,
		Settings:     s,
	}, nil
}

// FindProjectRoot walks up from dir to find go.mod.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func findSettings(dir string) (string, error) {
	for _, name := range Names {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %s: %w", name, err)
		}
	}
	return "", nil
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "futura_app"
	}
	return base
}
