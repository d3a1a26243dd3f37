package config

import (
	"fmt"

	"scanvator/src/types"
)

const (
	NumFloors       = 10
	BottomFloor     = 1
	NumCars         = 2
	SimTicks        = 25
	StarvationTicks = 10
)

// VisitMode selects when a car records a floor in its visited log.
type VisitMode int

const (
	VisitEveryFloor VisitMode = iota // every floor the car is at when a tick starts
	VisitStops                       // only floors where passengers exit or enter
)

func (m VisitMode) String() string {
	switch m {
	case VisitEveryFloor:
		return "every-floor"
	case VisitStops:
		return "stops"
	}
	return fmt.Sprintf("VisitMode(%d)", int(m))
}

func ParseVisitMode(s string) (VisitMode, error) {
	switch s {
	case "", "every-floor":
		return VisitEveryFloor, nil
	case "stops":
		return VisitStops, nil
	}
	return VisitEveryFloor, fmt.Errorf("%w: unknown visit mode %q", types.ErrInvalidConfig, s)
}

// Building is the closed floor range cars may occupy.
type Building struct {
	Bottom int
	Top    int
}

func (b Building) Contains(floor int) bool {
	return floor >= b.Bottom && floor <= b.Top
}

// Clamp limits floor to the building.
func (b Building) Clamp(floor int) int {
	return min(max(floor, b.Bottom), b.Top)
}

// Config holds the construction-time parameters of one simulation run.
type Config struct {
	Building Building
	// StartFloors has one entry per car, in roster order. Its length is the number of cars.
	StartFloors []int
	Visits      VisitMode
	// StarvationTicks is how long a call may wait in the dispatch queue before any car
	// counts as suitable for it. Zero disables aging.
	StarvationTicks int
}

// Default returns the building constants with every car parked at the bottom floor.
func Default() Config {
	start := make([]int, NumCars)
	for i := range start {
		start[i] = BottomFloor
	}
	return Config{
		Building:        Building{Bottom: BottomFloor, Top: BottomFloor + NumFloors - 1},
		StartFloors:     start,
		Visits:          VisitEveryFloor,
		StarvationTicks: StarvationTicks,
	}
}

// SingleCar returns the default building with one car at the given floor.
func SingleCar(start int) Config {
	cfg := Default()
	cfg.StartFloors = []int{start}
	return cfg
}

func (c Config) NumCars() int {
	return len(c.StartFloors)
}

func (c Config) Validate() error {
	if c.Building.Top < c.Building.Bottom {
		return fmt.Errorf("%w: top floor %d below bottom floor %d",
			types.ErrInvalidConfig, c.Building.Top, c.Building.Bottom)
	}
	if len(c.StartFloors) == 0 {
		return fmt.Errorf("%w: no cars", types.ErrInvalidConfig)
	}
	for id, f := range c.StartFloors {
		if !c.Building.Contains(f) {
			return fmt.Errorf("%w: car %d starts at floor %d outside [%d, %d]",
				types.ErrInvalidConfig, id, f, c.Building.Bottom, c.Building.Top)
		}
	}
	if c.StarvationTicks < 0 {
		return fmt.Errorf("%w: negative starvation bound %d", types.ErrInvalidConfig, c.StarvationTicks)
	}
	return nil
}
