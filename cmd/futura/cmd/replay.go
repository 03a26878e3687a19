package cmd

import (
	"fmt"
	"image/png"
	"os"

	"go.uber.org/zap"

	"github.com/go-futura/futura/cmd/futura/internal/config"
	"github.com/go-futura/futura/cmd/futura/internal/script"
	settings "github.com/go-futura/futura/pkg/config"
	"github.com/go-futura/futura/pkg/graphics"
	"github.com/go-futura/futura/pkg/logging"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay a scripted entry session",
		Long: `Replay a scripted input session against a headless entry.

The script is YAML with the initial text and a list of steps. Each step is
one of: type (text), key (chord such as "ctrl+shift+left"), click ({x, y}),
drag (list of points), tick (frame count) or wait (duration). Every emitted
event is printed, followed by the final text, caret and selection.

When a PNG path is given the final frame is rasterized into it.

Settings come from the project's futura.yaml or futura.toml when run inside
a Go module, otherwise the built-in defaults are used.`,
		Usage: "futura replay <script.yaml> [out.png]",
		Run:   runReplay,
	})
}

func runReplay(args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("usage: futura replay <script.yaml> [out.png]")
	}
	log := logging.Named("replay")

	s, err := script.Load(args[0])
	if err != nil {
		return err
	}

	cfg := settings.Default()
	if root, err := config.FindProjectRoot("."); err == nil {
		resolved, err := config.Resolve(root)
		if err != nil {
			return err
		}
		cfg = resolved.Settings
		log.Debug("settings", zap.String("path", resolved.SettingsPath))
	}

	res := script.Run(s, cfg)
	defer res.Close()
	if err := res.Write(stdout); err != nil {
		return err
	}

	if len(args) == 2 {
		if err := writePNG(args[1], res); err != nil {
			return err
		}
		log.Info("wrote frame", zap.String("path", args[1]))
	}
	return nil
}

func writePNG(path string, res *script.Result) error {
	b := res.Entry.Bounds()
	canvas := graphics.NewRasterCanvas(int(b.Right)+1, int(b.Bottom)+1, graphics.ColorWhite, nil)
	res.Paint().Paint(canvas)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, canvas.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return f.Close()
}
