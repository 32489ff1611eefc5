package ecs

import (
	"math"
	"time"
)

// UpdateFrame is handed to every system during one Scheduler tick.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
		Storage:   storage,
	}
}

// Delta returns DeltaTime as a Duration rounded to the nanosecond, for ticking Timers.
func (f *UpdateFrame) Delta() time.Duration {
	return time.Duration(math.Round(f.DeltaTime * float64(time.Second)))
}
