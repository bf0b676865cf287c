package components

import "github.com/yohamta/donburi"

// LoopState is the frame loop's state. Exiting is terminal.
type LoopState int

const (
	LoopRunning LoopState = iota
	LoopExiting
)

func (s LoopState) String() string {
	switch s {
	case LoopRunning:
		return "running"
	case LoopExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

type LoopData struct {
	State LoopState
}

var Loop = donburi.NewComponentType[LoopData]()
