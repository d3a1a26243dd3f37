package types

import (
	"fmt"
	"strings"
)

// Direction is both the travel direction of a car and the hall button a rider pressed.
// Its value is the floor delta of one move.
type Direction int

const (
	DirDown Direction = -1
	DirIdle Direction = 0
	DirUp   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirIdle:
		return "IDLE"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts "up", "down" and "idle" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "idle", "stop", "":
		return DirIdle, nil
	}
	return DirIdle, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Call is a hall button press. It is a value and is never modified after ingestion.
type Call struct {
	Origin      int
	Dir         Direction
	Destination int
	RequestedAt int // tick the button was pressed
	ID          int // ingestion sequence number, unique within a run
}

// Matches reports whether two calls come from the same hall button.
func (c Call) Matches(other Call) bool {
	return c.Origin == other.Origin && c.Dir == other.Dir
}

func (c Call) String() string {
	return fmt.Sprintf("%d%s->%d@%d", c.Origin, c.Dir, c.Destination, c.RequestedAt)
}
