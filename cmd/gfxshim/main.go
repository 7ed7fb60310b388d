// Command gfxshim exposes the binding as a C shared library for
// foreign-function callers:
//
//	go build -tags sdl -buildmode=c-shared -o libgfxshim.so ./cmd/gfxshim
//
// Every export takes and returns primitive C types. Handles are uint64_t and
// 0 is null. Status codes are 0 on success and -1 on failure.
package main

/*
#include <stdint.h>
#include <stdbool.h>
*/
import "C"

import (
	"log/slog"
	"os"
	"unsafe"

	"github.com/kjkrol/goshim/pkg/binding"
	"github.com/kjkrol/goshim/pkg/gfx"
)

// LogEnv turns on debug logging to stderr when set to "debug".
const LogEnv = "GOSHIM_LOG"

var session = binding.NewSession(gfx.Config{Logger: newLogger()})

func newLogger() *slog.Logger {
	if os.Getenv(LogEnv) != "debug" {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func handle(h C.uint64_t) binding.Handle { return binding.Handle(h) }

//export gfxshim_init
func gfxshim_init() C.int { return C.int(session.Init()) }

//export gfxshim_quit
func gfxshim_quit() { session.Quit() }

//export gfxshim_create_window
func gfxshim_create_window(title *C.char, width, height C.int) C.uint64_t {
	return C.uint64_t(session.CreateWindow(C.GoString(title), int(width), int(height)))
}

//export gfxshim_create_renderer
func gfxshim_create_renderer(window C.uint64_t, index C.int) C.uint64_t {
	return C.uint64_t(session.CreateRenderer(handle(window), int(index)))
}

//export gfxshim_load_bitmap
func gfxshim_load_bitmap(renderer C.uint64_t, path *C.char) C.uint64_t {
	return C.uint64_t(session.LoadBitmap(handle(renderer), C.GoString(path)))
}

//export gfxshim_load_bitmap_keyed
func gfxshim_load_bitmap_keyed(renderer C.uint64_t, path *C.char) C.uint64_t {
	return C.uint64_t(session.LoadBitmapKeyed(handle(renderer), C.GoString(path)))
}

//export gfxshim_load_bitmap_colorkey
func gfxshim_load_bitmap_colorkey(renderer C.uint64_t, path *C.char, r, g, b C.int) C.uint64_t {
	return C.uint64_t(session.LoadBitmapColorKey(handle(renderer), C.GoString(path), int(r), int(g), int(b)))
}

//export gfxshim_render_copy
func gfxshim_render_copy(renderer, texture C.uint64_t) C.int {
	return C.int(session.RenderCopy(handle(renderer), handle(texture)))
}

//export gfxshim_render_copy_rect
func gfxshim_render_copy_rect(renderer, texture C.uint64_t, x, y, w, h C.int) C.int {
	return C.int(session.RenderCopyRect(handle(renderer), handle(texture), int(x), int(y), int(w), int(h)))
}

//export gfxshim_set_draw_color
func gfxshim_set_draw_color(renderer C.uint64_t, r, g, b, a C.int) C.int {
	return C.int(session.SetDrawColor(handle(renderer), int(r), int(g), int(b), int(a)))
}

//export gfxshim_render_clear
func gfxshim_render_clear(renderer C.uint64_t) C.int {
	return C.int(session.RenderClear(handle(renderer)))
}

//export gfxshim_render_present
func gfxshim_render_present(renderer C.uint64_t) C.int {
	return C.int(session.RenderPresent(handle(renderer)))
}

//export gfxshim_destroy_texture
func gfxshim_destroy_texture(texture C.uint64_t) C.int {
	return C.int(session.DestroyTexture(handle(texture)))
}

//export gfxshim_destroy_renderer
func gfxshim_destroy_renderer(renderer C.uint64_t) C.int {
	return C.int(session.DestroyRenderer(handle(renderer)))
}

//export gfxshim_destroy_window
func gfxshim_destroy_window(window C.uint64_t) C.int {
	return C.int(session.DestroyWindow(handle(window)))
}

//export gfxshim_poll_event
func gfxshim_poll_event() C.bool { return C.bool(session.PollEvent()) }

//export gfxshim_push_quit
func gfxshim_push_quit() C.int { return C.int(session.PushQuit()) }

//export gfxshim_push_mouse_motion
func gfxshim_push_mouse_motion(x, y, xrel, yrel C.int32_t) C.int {
	return C.int(session.PushMouseMotion(int32(x), int32(y), int32(xrel), int32(yrel)))
}

//export gfxshim_push_mouse_button
func gfxshim_push_mouse_button(down C.bool, button C.uint8_t, x, y C.int32_t) C.int {
	return C.int(session.PushMouseButton(bool(down), uint8(button), int32(x), int32(y)))
}

//export gfxshim_handle_events
func gfxshim_handle_events() C.int { return C.int(session.HandleEvents()) }

//export gfxshim_running
func gfxshim_running() C.bool { return C.bool(session.Running()) }

//export gfxshim_mouse_state_x
func gfxshim_mouse_state_x() C.int32_t { return C.int32_t(session.MouseStateX()) }

//export gfxshim_mouse_state_y
func gfxshim_mouse_state_y() C.int32_t { return C.int32_t(session.MouseStateY()) }

//export gfxshim_mouse_down
func gfxshim_mouse_down() C.bool { return C.bool(session.MouseDown()) }

//export gfxshim_show_cursor
func gfxshim_show_cursor(show C.bool) C.int { return C.int(session.ShowCursor(bool(show))) }

//export gfxshim_cursor_visible
func gfxshim_cursor_visible() C.bool { return C.bool(session.CursorVisible()) }

//export gfxshim_is_last_event_quit
func gfxshim_is_last_event_quit() C.bool { return C.bool(session.IsLastEventQuit()) }

//export gfxshim_last_event_type
func gfxshim_last_event_type() C.uint32_t { return C.uint32_t(session.LastEventType()) }

//export gfxshim_mouse_x
func gfxshim_mouse_x() C.int32_t { return C.int32_t(session.MouseX()) }

//export gfxshim_mouse_y
func gfxshim_mouse_y() C.int32_t { return C.int32_t(session.MouseY()) }

//export gfxshim_mouse_xrel
func gfxshim_mouse_xrel() C.int32_t { return C.int32_t(session.MouseXrel()) }

//export gfxshim_mouse_yrel
func gfxshim_mouse_yrel() C.int32_t { return C.int32_t(session.MouseYrel()) }

//export gfxshim_is_null
func gfxshim_is_null(h C.uint64_t) C.bool { return C.bool(binding.IsNull(handle(h))) }

//export gfxshim_last_error_kind
func gfxshim_last_error_kind() C.int { return C.int(session.LastErrorKind()) }

// gfxshim_last_error copies the last error message, NUL terminated and
// truncated to fit, into buf. It returns the full message length.
//
//export gfxshim_last_error
func gfxshim_last_error(buf *C.char, size C.int) C.int {
	msg := session.LastError()
	if buf != nil && size > 0 {
		dst := unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(size))
		n := copy(dst[:len(dst)-1], msg)
		dst[n] = 0
	}
	return C.int(len(msg))
}

func main() {}
