//go:build !sdl

package platform

import "github.com/pkg/errors"

var ErrSDLUnavailable = errors.New("SDL driver not available; rebuild with -tags sdl and install the SDL2 development libraries")

func defaultDriver() Driver { return NewSoftwareDriver() }

func newSDLDriver() (Driver, error) { return nil, ErrSDLUnavailable }
