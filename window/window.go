// SPDX-License-Identifier: GPL-2.0-or-later
package window

import (
	"log"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	window      *sdl.Window
	context     sdl.GLContext
	skipUpdates bool
)

func Get() *sdl.Window {
	return window
}

func Size() (int, int) {
	w, h := window.GetSize()
	return int(w), int(h)
}

func Shutdown() {
	sdl.GLDeleteContext(context)
	context = nil
	window.Destroy()
	window = nil
}

func Fullscreen() bool {
	return window.GetFlags()&sdl.WINDOW_FULLSCREEN != 0
}

func VSync() bool {
	i, _ := sdl.GLGetSwapInterval()
	return i == 1
}

func InputFocus() bool {
	return window.GetFlags()&(sdl.WINDOW_MOUSE_FOCUS|sdl.WINDOW_INPUT_FOCUS) != 0
}

func Minimized() bool {
	return window.GetFlags()&sdl.WINDOW_SHOWN == 0
}

// SetMode creates the window and GL context on first call and resizes on
// later calls. The stencil shadow passes need a stencil buffer, so an
// 8 bit stencil is requested unconditionally.
func SetMode(width, height int32, fullscreen, vsync bool) error {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 6)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	if window == nil {
		flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_HIDDEN)
		w, err := sdl.CreateWindow("GoArena",
			sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
			width, height, flags)
		if err != nil {
			sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 16)
			w, err = sdl.CreateWindow("GoArena",
				sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
				width, height, flags)
			if err != nil {
				return errors.Wrap(err, "create window")
			}
		}
		window = w
	}
	if Fullscreen() {
		if err := window.SetFullscreen(0); err != nil {
			return errors.Wrap(err, "leave fullscreen")
		}
	}
	window.SetSize(width, height)
	window.SetPosition(sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED)
	if fullscreen {
		if err := window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP); err != nil {
			return errors.Wrap(err, "enter fullscreen")
		}
	}

	window.Show()

	if context == nil {
		var err error
		context, err = window.GLCreateContext()
		if err != nil {
			return errors.Wrap(err, "create GL context")
		}
		if err := gl.Init(); err != nil {
			return errors.Wrap(err, "init gl")
		}
		gl.DebugMessageCallback(debugCb, unsafe.Pointer(nil))
	}
	if vsync {
		sdl.GLSetSwapInterval(1)
	} else {
		sdl.GLSetSwapInterval(0)
	}
	return nil
}

func debugCb(
	source uint32,
	gltype uint32,
	id uint32,
	severity uint32,
	length int32,
	message string,
	userParam unsafe.Pointer) {
	if severity == gl.DEBUG_SEVERITY_HIGH {
		log.Panicf("[GL_DEBUG] source %d gltype %d id %d severity %d length %d: %s", source, gltype, id, severity, length, message)
	} else {
		log.Printf("[GL_DEBUG] source %d gltype %d id %d severity %d length %d: %s", source, gltype, id, severity, length, message)
	}
}

func SetSkipUpdates(skip bool) {
	skipUpdates = skip
}

func EndRendering() {
	if skipUpdates {
		return
	}
	window.GLSwap()
}
