package gamemode

import "fmt"

// Phase is the top level state of the game.
type Phase int

const (
	PhaseInit    Phase = iota // waiting for the first click
	PhaseTitle                // title screen, pulsing caticorn
	PhasePlaying              // candies out
	PhaseEnd                  // walk to the center
	PhasePoop                 // shrink back down
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhaseTitle:
		return "Title"
	case PhasePlaying:
		return "Playing"
	case PhaseEnd:
		return "End"
	case PhasePoop:
		return "Poop"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}
