// Package main is the interactive radial bar demo.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/radialbar/internal/config"
	"github.com/Faultbox/radialbar/internal/demo"
	"github.com/Faultbox/radialbar/internal/engine/barmesh"
	"github.com/Faultbox/radialbar/internal/engine/debug"
	"github.com/Faultbox/radialbar/internal/engine/input"
	"github.com/Faultbox/radialbar/internal/engine/window"
	"github.com/Faultbox/radialbar/internal/logger"
	"github.com/Faultbox/radialbar/internal/scene"
)

const windowTitle = "Radial Bar"

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("demo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("demo closed normally")
}

func run(cfg *config.Config) error {
	background, err := config.ParseColor(cfg.Graphics.ClearColor)
	if err != nil {
		return err
	}

	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, logger.Named("window"))
	if err != nil {
		return err
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("OpenGL init failed: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	store, err := barmesh.NewStore(logger.Named("barmesh"))
	if err != nil {
		return err
	}
	defer store.Close()

	ctrl, err := demo.New(cfg, store, store, logger.Named("demo"))
	if err != nil {
		return err
	}

	// Viewport uses drawable pixels; the camera only needs the aspect ratio.
	dw, dh := win.GetDrawableSize()
	gl.Viewport(0, 0, int32(dw), int32(dh))
	camera := scene.NewOrthoCamera(dw, dh)

	shots := debug.NewScreenshots("screenshots", "radialbar", logger.Named("screenshot"))

	in := input.New()
	last := time.Now()
	lastStatus := ""

	for {
		if in.Update() {
			return nil
		}

		capture := false
		for _, e := range in.Events() {
			switch e.Type {
			case input.EventWindowResize:
				dw, dh = win.GetDrawableSize()
				gl.Viewport(0, 0, int32(dw), int32(dh))
				camera.Resize(dw, dh)

			case input.EventKeyDown:
				action := actionForKey(e.Key, e.Repeat)
				if action == demo.ActionScreenshot {
					capture = true
					continue
				}
				quit, err := ctrl.Handle(action)
				if quit {
					return nil
				}
				if err != nil {
					logger.Warn("bar update failed", zap.Error(err))
				}
			}
		}

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if err := ctrl.Frame(dt); err != nil {
			logger.Warn("bar drain failed", zap.Error(err))
		}

		title := windowTitle
		if ctrl.Overlay() {
			title = windowTitle + " - " + ctrl.Status()
		}
		if title != lastStatus {
			win.SetTitle(title)
			lastStatus = title
		}

		gl.ClearColor(background.R, background.G, background.B, background.A)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

		ctrl.Scene().Draw(store, camera.ViewProjection())

		if capture {
			if _, err := shots.Save(readPixels(dw, dh), dw, dh); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			}
		}

		win.SwapBuffers()
	}
}

// readPixels reads the back buffer as RGBA, bottom row first.
func readPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}
