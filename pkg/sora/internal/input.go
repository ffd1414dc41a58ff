package internal

import (
	"sync"

	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// InputEvent is a button transition after keyboard and controller mapping.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

var keyboardMapping = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_a:         constants.VirtualButtonA,
	sdl.K_SPACE:     constants.VirtualButtonA,
	sdl.K_b:         constants.VirtualButtonB,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_x:         constants.VirtualButtonX,
	sdl.K_y:         constants.VirtualButtonY,
	sdl.K_l:         constants.VirtualButtonL1,
	sdl.K_r:         constants.VirtualButtonR1,
	sdl.K_RETURN:    constants.VirtualButtonStart,
	sdl.K_TAB:       constants.VirtualButtonSelect,
	sdl.K_h:         constants.VirtualButtonMenu,
}

var controllerMapping = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonX,
	sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonY,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
}

var (
	controllersMu sync.Mutex
	controllers   = map[sdl.JoystickID]*sdl.GameController{}
)

// MapInputEvent translates keyboard and controller button events. Other
// events, and keys without a mapping, report false. Controller hotplug
// events are consumed here to keep the controller set current.
func MapInputEvent(event sdl.Event) (InputEvent, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button, ok := keyboardMapping[e.Keysym.Sym]
		if !ok {
			return InputEvent{}, false
		}
		return InputEvent{Button: button, Pressed: e.State == sdl.PRESSED, Repeat: e.Repeat != 0}, true

	case *sdl.ControllerButtonEvent:
		button, ok := controllerMapping[sdl.GameControllerButton(e.Button)]
		if !ok {
			return InputEvent{}, false
		}
		return InputEvent{Button: button, Pressed: e.State == sdl.PRESSED}, true

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			closeController(e.Which)
		}
	}
	return InputEvent{}, false
}

func openAttachedControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if sdl.IsGameController(i) {
			openController(i)
		}
	}
}

func openController(index int) {
	ctrl := sdl.GameControllerOpen(index)
	if ctrl == nil {
		GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}

	id := ctrl.Joystick().InstanceID()
	controllersMu.Lock()
	defer controllersMu.Unlock()
	if _, exists := controllers[id]; exists {
		ctrl.Close()
		return
	}
	controllers[id] = ctrl
	GetInternalLogger().Debug("Game controller connected", "name", ctrl.Name(), "id", id)
}

func closeController(id sdl.JoystickID) {
	controllersMu.Lock()
	defer controllersMu.Unlock()
	if ctrl, ok := controllers[id]; ok {
		ctrl.Close()
		delete(controllers, id)
		GetInternalLogger().Debug("Game controller disconnected", "id", id)
	}
}

// firstController returns any connected controller, or nil.
func firstController() *sdl.GameController {
	controllersMu.Lock()
	defer controllersMu.Unlock()
	for _, ctrl := range controllers {
		return ctrl
	}
	return nil
}

func CloseAllControllers() {
	controllersMu.Lock()
	defer controllersMu.Unlock()
	for id, ctrl := range controllers {
		ctrl.Close()
		delete(controllers, id)
	}
}
