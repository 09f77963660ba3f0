package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/radialbar/internal/demo"
)

// actionForKey maps a pressed key to a demo action.
// Only the value keys respond to key repeat.
func actionForKey(key sdl.Scancode, repeat bool) demo.Action {
	switch key {
	case sdl.SCANCODE_UP, sdl.SCANCODE_KP_PLUS, sdl.SCANCODE_EQUALS:
		return demo.ActionIncrease
	case sdl.SCANCODE_DOWN, sdl.SCANCODE_KP_MINUS, sdl.SCANCODE_MINUS:
		return demo.ActionDecrease
	}
	if repeat {
		return demo.ActionNone
	}

	switch key {
	case sdl.SCANCODE_SPACE:
		return demo.ActionToggleDrain
	case sdl.SCANCODE_R:
		return demo.ActionReset
	case sdl.SCANCODE_GRAVE:
		return demo.ActionToggleOverlay
	case sdl.SCANCODE_F12:
		return demo.ActionScreenshot
	case sdl.SCANCODE_ESCAPE:
		return demo.ActionQuit
	}
	return demo.ActionNone
}
