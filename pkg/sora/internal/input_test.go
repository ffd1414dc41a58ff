package internal

import (
	"testing"

	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/veandco/go-sdl2/sdl"
)

func TestMapInputEvent(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  InputEvent
		ok    bool
	}{
		{
			name:  "arrow key",
			event: &sdl.KeyboardEvent{Keysym: sdl.Keysym{Sym: sdl.K_LEFT}, State: sdl.PRESSED},
			want:  InputEvent{Button: constants.VirtualButtonLeft, Pressed: true},
			ok:    true,
		},
		{
			name:  "key repeat",
			event: &sdl.KeyboardEvent{Keysym: sdl.Keysym{Sym: sdl.K_SPACE}, State: sdl.PRESSED, Repeat: 1},
			want:  InputEvent{Button: constants.VirtualButtonA, Pressed: true, Repeat: true},
			ok:    true,
		},
		{
			name:  "escape release",
			event: &sdl.KeyboardEvent{Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}, State: sdl.RELEASED},
			want:  InputEvent{Button: constants.VirtualButtonB},
			ok:    true,
		},
		{
			name:  "controller shoulder",
			event: &sdl.ControllerButtonEvent{Button: uint8(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER), State: sdl.PRESSED},
			want:  InputEvent{Button: constants.VirtualButtonR1, Pressed: true},
			ok:    true,
		},
		{
			name:  "unmapped key",
			event: &sdl.KeyboardEvent{Keysym: sdl.Keysym{Sym: sdl.K_z}, State: sdl.PRESSED},
		},
		{
			name:  "quit",
			event: &sdl.QuitEvent{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapInputEvent(tt.event)
			if ok != tt.ok || got != tt.want {
				t.Errorf("MapInputEvent = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
