package binding_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/kjkrol/goshim/pkg/binding"
	"github.com/kjkrol/goshim/pkg/gfx"
)

func newSession(t *testing.T) *binding.Session {
	t.Helper()
	s := binding.NewSession(gfx.Config{Driver: gfx.DriverSoftware})
	if status := s.Init(); status != binding.StatusOK {
		t.Fatalf("Init = %d: %s", status, s.LastError())
	}
	t.Cleanup(s.Quit)
	return s
}

func newRenderer(t *testing.T, s *binding.Session, w, h int) (binding.Handle, binding.Handle) {
	t.Helper()
	win := s.CreateWindow("t", w, h)
	if binding.IsNull(win) {
		t.Fatalf("CreateWindow: %s", s.LastError())
	}
	r := s.CreateRenderer(win, -1)
	if binding.IsNull(r) {
		t.Fatalf("CreateRenderer: %s", s.LastError())
	}
	return win, r
}

func writeBMP(t *testing.T, w, h int, c color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	path := filepath.Join(t.TempDir(), "img.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := bmp.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCreateWindowAfterInit(t *testing.T) {
	s := newSession(t)
	if h := s.CreateWindow("t", 640, 480); binding.IsNull(h) {
		t.Fatalf("expected a window handle: %s", s.LastError())
	}
}

func TestCreateWindowBeforeInit(t *testing.T) {
	s := binding.NewSession(gfx.Config{Driver: gfx.DriverSoftware})
	if h := s.CreateWindow("t", 640, 480); !binding.IsNull(h) {
		t.Fatal("window without Init should be null")
	}
	if gfx.ErrorKind(s.LastErrorKind()) != gfx.KindInit {
		t.Fatalf("kind = %d", s.LastErrorKind())
	}
}

func TestCreateWindowZeroSizePassesThrough(t *testing.T) {
	s := newSession(t)
	if h := s.CreateWindow("zero", 0, 0); binding.IsNull(h) {
		t.Fatalf("driver accepts 0x0 windows: %s", s.LastError())
	}
	if h := s.CreateWindow("huge", 1<<20, 10); !binding.IsNull(h) {
		t.Fatal("driver rejects oversized windows")
	}
}

func TestLoadBitmapMissingPath(t *testing.T) {
	s := newSession(t)
	_, r := newRenderer(t, s, 16, 16)

	if tex := s.LoadBitmap(r, filepath.Join(t.TempDir(), "missing.bmp")); !binding.IsNull(tex) {
		t.Fatal("missing file must give a null texture")
	}
	if s.LastError() == "" {
		t.Fatal("failure should leave a diagnostic")
	}
	if gfx.ErrorKind(s.LastErrorKind()) != gfx.KindCreate {
		t.Fatalf("kind = %d", s.LastErrorKind())
	}
	if status := s.RenderClear(r); status != binding.StatusOK {
		t.Fatalf("renderer should be unaffected: %s", s.LastError())
	}
}

func TestQuitEventSlot(t *testing.T) {
	s := newSession(t)
	if s.IsLastEventQuit() || s.LastEventType() != 0 {
		t.Fatal("slot should start zeroed")
	}
	if status := s.PushQuit(); status != binding.StatusOK {
		t.Fatalf("PushQuit: %s", s.LastError())
	}
	if !s.PollEvent() {
		t.Fatal("expected an event")
	}
	if !s.IsLastEventQuit() || s.LastEventType() != uint32(gfx.QuitEvent) {
		t.Fatalf("expected quit, type 0x%x", s.LastEventType())
	}
	if s.PollEvent() {
		t.Fatal("queue should be drained")
	}
	if !s.IsLastEventQuit() {
		t.Fatal("slot keeps the last event after draining")
	}
}

func TestMouseMotionAccessors(t *testing.T) {
	s := newSession(t)
	s.PushMouseMotion(12, 34, -3, 4)
	if !s.PollEvent() {
		t.Fatal("expected an event")
	}
	if s.LastEventType() != uint32(gfx.MouseMotion) {
		t.Fatalf("type 0x%x", s.LastEventType())
	}
	if s.MouseX() != 12 || s.MouseY() != 34 || s.MouseXrel() != -3 || s.MouseYrel() != 4 {
		t.Fatalf("mouse fields %d %d %d %d", s.MouseX(), s.MouseY(), s.MouseXrel(), s.MouseYrel())
	}
	if s.IsLastEventQuit() {
		t.Fatal("motion is not quit")
	}
}

func TestRenderCopyRect(t *testing.T) {
	s := newSession(t)
	_, r := newRenderer(t, s, 200, 100)
	tex := s.LoadBitmap(r, writeBMP(t, 3, 3, color.RGBA{R: 200, G: 100, B: 50, A: 255}))
	if binding.IsNull(tex) {
		t.Fatal(s.LastError())
	}
	if status := s.RenderCopyRect(r, tex, 10, 10, 100, 50); status != binding.StatusOK {
		t.Fatalf("RenderCopyRect: %s", s.LastError())
	}
	if status := s.RenderPresent(r); status != binding.StatusOK {
		t.Fatalf("RenderPresent: %s", s.LastError())
	}
}

func TestKeyedLoads(t *testing.T) {
	s := newSession(t)
	_, r := newRenderer(t, s, 4, 4)
	path := writeBMP(t, 2, 2, color.RGBA{R: 255, B: 255, A: 255})
	if tex := s.LoadBitmapKeyed(r, path); binding.IsNull(tex) {
		t.Fatalf("LoadBitmapKeyed: %s", s.LastError())
	}
	if tex := s.LoadBitmapColorKey(r, path, 0, 255, 0); binding.IsNull(tex) {
		t.Fatalf("LoadBitmapColorKey: %s", s.LastError())
	}
}

func TestNullAndStaleHandles(t *testing.T) {
	s := newSession(t)
	win, r := newRenderer(t, s, 8, 8)
	tex := s.LoadBitmap(r, writeBMP(t, 1, 1, color.RGBA{A: 255}))

	cases := []struct {
		name string
		call func() int
	}{
		{"copy null renderer", func() int { return s.RenderCopy(binding.Null, tex) }},
		{"copy null texture", func() int { return s.RenderCopy(r, binding.Null) }},
		{"copy rect null", func() int { return s.RenderCopyRect(binding.Null, binding.Null, 0, 0, 1, 1) }},
		{"texture as renderer", func() int { return s.RenderClear(tex) }},
		{"present unknown", func() int { return s.RenderPresent(999) }},
		{"destroy null", func() int { return s.DestroyTexture(binding.Null) }},
		{"destroy window as texture", func() int { return s.DestroyTexture(win) }},
		{"destroy renderer as texture", func() int { return s.DestroyTexture(r) }},
		{"destroy texture as window", func() int { return s.DestroyWindow(tex) }},
		{"destroy renderer as window", func() int { return s.DestroyWindow(r) }},
		{"destroy texture as renderer", func() int { return s.DestroyRenderer(tex) }},
		{"destroy window as renderer", func() int { return s.DestroyRenderer(win) }},
	}
	for _, tc := range cases {
		if got := tc.call(); got != binding.StatusError {
			t.Errorf("%s = %d, want %d", tc.name, got, binding.StatusError)
		}
	}
	if status := s.RenderCopy(r, tex); status != binding.StatusOK {
		t.Fatalf("wrong-kind destroys must leave objects alive: %s", s.LastError())
	}
	if gfx.ErrorKind(s.LastErrorKind()) != gfx.KindInvalid {
		t.Fatalf("kind = %d", s.LastErrorKind())
	}
	if h := s.CreateRenderer(binding.Null, -1); !binding.IsNull(h) {
		t.Error("renderer on null window should be null")
	}
	if h := s.LoadBitmap(binding.Null, "x.bmp"); !binding.IsNull(h) {
		t.Error("texture on null renderer should be null")
	}

	if status := s.DestroyWindow(win); status != binding.StatusOK {
		t.Fatalf("DestroyWindow: %s", s.LastError())
	}
	if got := s.RenderCopy(r, tex); got != binding.StatusError {
		t.Fatal("children of a destroyed window must be unusable")
	}
	if got := s.DestroyRenderer(r); got != binding.StatusError {
		t.Fatal("renderer handle should be gone")
	}
}

func TestQuitIsRepeatable(t *testing.T) {
	s := binding.NewSession(gfx.Config{Driver: gfx.DriverSoftware})
	if s.Init() != binding.StatusOK || s.Init() != binding.StatusOK {
		t.Fatal(s.LastError())
	}
	win := s.CreateWindow("t", 4, 4)
	s.Quit()
	s.Quit()
	if s.PollEvent() {
		t.Fatal("no events after Quit")
	}
	if s.CreateRenderer(win, -1) != binding.Null {
		t.Fatal("handles do not survive Quit")
	}
	if s.Init() != binding.StatusOK {
		t.Fatal("session can be initialized again")
	}
	s.Quit()
}

func TestInitUnknownDriver(t *testing.T) {
	s := binding.NewSession(gfx.Config{Driver: "nope"})
	if s.Init() == binding.StatusOK {
		t.Fatal("unknown driver must fail")
	}
	if gfx.ErrorKind(s.LastErrorKind()) != gfx.KindInit {
		t.Fatalf("kind = %d", s.LastErrorKind())
	}
}

func TestColorComponentsOutOfRange(t *testing.T) {
	s := newSession(t)
	_, r := newRenderer(t, s, 4, 4)
	path := writeBMP(t, 1, 1, color.RGBA{A: 255})

	if tex := s.LoadBitmapColorKey(r, path, 256, 0, 255); !binding.IsNull(tex) {
		t.Fatal("colorkey component 256 must fail")
	}
	if gfx.ErrorKind(s.LastErrorKind()) != gfx.KindInvalid {
		t.Fatalf("kind = %d", s.LastErrorKind())
	}
	for _, c := range [][4]int{{-1, 0, 0, 255}, {0, 0, 0, 256}} {
		if status := s.SetDrawColor(r, c[0], c[1], c[2], c[3]); status != binding.StatusError {
			t.Fatalf("SetDrawColor%v = %d", c, status)
		}
	}
	if status := s.SetDrawColor(r, 255, 255, 255, 255); status != binding.StatusOK {
		t.Fatalf("in-range colour: %s", s.LastError())
	}
}

func TestHandleEventsAndMouseState(t *testing.T) {
	s := newSession(t)
	if !s.Running() {
		t.Fatal("initialized session is running")
	}
	s.PushMouseMotion(5, 6, 1, 1)
	s.PushMouseButton(true, 1, 7, 8)
	if n := s.HandleEvents(); n != 2 {
		t.Fatalf("HandleEvents consumed %d", n)
	}
	if s.MouseStateX() != 7 || s.MouseStateY() != 8 || !s.MouseDown() {
		t.Fatalf("mouse state %d %d %v", s.MouseStateX(), s.MouseStateY(), s.MouseDown())
	}
	if s.LastEventType() != uint32(gfx.MouseButtonDown) {
		t.Fatalf("slot holds the last drained event, type 0x%x", s.LastEventType())
	}

	s.PushMouseButton(false, 1, 7, 8)
	s.PushQuit()
	s.HandleEvents()
	if s.Running() || s.MouseDown() || !s.IsLastEventQuit() {
		t.Fatal("quit should stop the session and release the button")
	}

	s.Quit()
	if s.Running() || s.HandleEvents() != 0 {
		t.Fatal("a closed session is not running")
	}
}

func TestShowCursor(t *testing.T) {
	s := binding.NewSession(gfx.Config{Driver: gfx.DriverSoftware})
	if status := s.ShowCursor(false); status != binding.StatusError {
		t.Fatal("ShowCursor before Init must fail")
	}
	s = newSession(t)
	if !s.CursorVisible() {
		t.Fatal("cursor starts visible")
	}
	if status := s.ShowCursor(false); status != binding.StatusOK {
		t.Fatal(s.LastError())
	}
	if s.CursorVisible() {
		t.Fatal("cursor should be hidden")
	}
}
