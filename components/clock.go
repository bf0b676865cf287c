package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData accumulates game time. Each rendered frame adds the fixed frame
// delay to Elapsed.
type ClockData struct {
	Elapsed time.Duration
	Frames  uint64
}

var Clock = donburi.NewComponentType[ClockData]()
