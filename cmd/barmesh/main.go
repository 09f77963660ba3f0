// barmesh builds a radial bar without a window and writes its mesh as
// Wavefront OBJ or YAML.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/radialbar/internal/assets"
	"github.com/Faultbox/radialbar/internal/config"
	"github.com/Faultbox/radialbar/internal/export"
	"github.com/Faultbox/radialbar/internal/logger"
	"github.com/Faultbox/radialbar/pkg/radialbar"
)

var (
	flagBar    = flag.String("bar", "", "Name of the configured bar to build (default: first bar)")
	flagValue  = flag.Float64("value", -1, "Set the bar value before export (negative keeps the configured value)")
	flagAdd    = flag.Float64("add", 0, "Add to the bar value before export (clamped)")
	flagFormat = flag.String("format", "obj", "Output format: obj or yaml")
	flagOut    = flag.String("out", "", "Output file (default: stdout)")
	flagSave   = flag.Bool("save-config", false, "Save the effective config to the user config dir")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Console logs go to stderr; stdout may carry the mesh.
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *flagSave {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Save config error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	bc, err := selectBar(cfg.Bars, *flagBar)
	if err != nil {
		return err
	}
	rc, err := bc.Radial()
	if err != nil {
		return err
	}

	store := assets.NewStore()
	bar, err := radialbar.New(rc, store, store, radialbar.WithLogger(logger.Named("bar")))
	if err != nil {
		return err
	}

	if *flagValue >= 0 {
		if _, err := bar.SetValue(float32(*flagValue)); err != nil {
			return err
		}
	}
	if *flagAdd != 0 {
		if _, err := bar.AddValue(float32(*flagAdd)); err != nil {
			return err
		}
	}

	mesh, err := store.Mesh(bar.MeshHandle())
	if err != nil {
		return err
	}

	logger.Info("exporting bar",
		zap.String("bar", bc.Name),
		zap.Float32("value", bar.Value()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.String("format", *flagFormat),
	)

	return writeMesh(*flagOut, export.Format(strings.ToLower(*flagFormat)), bc.Name, mesh)
}

// writeMesh encodes mesh to path, or to stdout when path is empty.
func writeMesh(path string, format export.Format, name string, mesh radialbar.MeshData) error {
	if path == "" {
		return encode(os.Stdout, format, name, mesh)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := encode(f, format, name, mesh); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func encode(w io.Writer, format export.Format, name string, mesh radialbar.MeshData) error {
	bw := bufio.NewWriter(w)
	if err := export.Write(bw, format, name, mesh); err != nil {
		return err
	}
	return bw.Flush()
}

// selectBar returns the configured bar called name, falling back to the
// built-in presets. An empty name selects the first configured bar.
func selectBar(bars []config.BarConfig, name string) (config.BarConfig, error) {
	if name == "" {
		if len(bars) == 0 {
			return config.BarConfig{}, fmt.Errorf("no bars configured")
		}
		return bars[0], nil
	}
	for _, b := range bars {
		if b.Name == name {
			return b, nil
		}
	}
	if b, ok := config.Presets()[name]; ok {
		return b, nil
	}
	return config.BarConfig{}, fmt.Errorf("bar %q not found", name)
}
