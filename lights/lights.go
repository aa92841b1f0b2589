// Package lights is an addressable LED strip painted in one colour at a time.
package lights

import "image/color"

// Writer pushes a frame to the LEDs. ws2812.Device satisfies it.
type Writer interface {
	WriteColors(buf []color.RGBA) error
}

type Strip struct {
	w      Writer
	pixels []color.RGBA
}

func New(w Writer, n int) *Strip {
	return &Strip{w: w, pixels: make([]color.RGBA, n)}
}

// Fill sets every pixel to c. Nothing changes on the LEDs until Show.
func (s *Strip) Fill(c color.RGBA) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

func (s *Strip) Clear() {
	s.Fill(color.RGBA{})
}

func (s *Strip) Show() error {
	return s.w.WriteColors(s.pixels)
}
