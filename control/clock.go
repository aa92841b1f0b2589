package control

import "time"

type systemClock struct {
	start time.Time
}

// SystemClock counts milliseconds since it was created, wrapping at 2^32.
func SystemClock() Clock {
	return systemClock{start: time.Now()}
}

func (c systemClock) Millis() uint32 {
	return uint32(time.Since(c.start) / time.Millisecond)
}
