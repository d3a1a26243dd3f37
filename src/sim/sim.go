// Package sim drives the cars tick by tick: it ingests hall calls, runs the dispatcher
// when there is more than one car, then lets every car take its step.
package sim

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"scanvator/src/config"
	"scanvator/src/dispatcher"
	"scanvator/src/elev"
	"scanvator/src/types"
)

// Schedule maps a tick to the hall calls pressed at that tick.
// Only Origin, Dir and Destination of each call are used; RequestedAt and ID are stamped on injection.
type Schedule map[int][]types.Call

// Stats summarizes how long riders waited during a run.
type Stats struct {
	Tick          int
	Queued        int // calls still waiting for a car
	OldestWait    int
	MaxPickupWait int
	dispatcher.Stats
}

// System is one simulation run: the car roster, the dispatcher and the tick counter.
type System struct {
	cfg        config.Config
	cars       []*elev.Car
	dispatcher *dispatcher.Dispatcher // nil with a single car
	sink       types.EventSink
	tick       int
	lastID     int
}

func New(cfg config.Config, sink types.EventSink) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = types.Discard
	}
	s := &System{cfg: cfg, sink: sink}
	for id, floor := range cfg.StartFloors {
		s.cars = append(s.cars, elev.NewCar(id, floor, cfg, sink))
	}
	if len(s.cars) > 1 {
		s.dispatcher = dispatcher.New(s.cars, cfg, sink)
	}
	log.Debug().
		Int("cars", len(s.cars)).
		Int("bottom", cfg.Building.Bottom).
		Int("top", cfg.Building.Top).
		Stringer("visits", cfg.Visits).
		Msg("System initialized")
	return s, nil
}

// PressHallButton validates and ingests one hall call at the current tick.
// A call whose origin equals its destination is accepted and resolves the tick the car arrives.
func (s *System) PressHallButton(origin int, dir types.Direction, destination int) (types.Call, error) {
	call := types.Call{Origin: origin, Dir: dir, Destination: destination, RequestedAt: s.tick}
	if err := s.validate(call); err != nil {
		log.Warn().Err(err).Stringer("call", call).Msg("Rejected hall call")
		return types.Call{}, err
	}
	s.lastID++
	call.ID = s.lastID

	s.sink.Emit(types.Event{Type: types.EventCallReceived, Tick: s.tick, CarID: types.NoCar, Floor: origin, Dir: dir, Call: call})
	if s.dispatcher == nil {
		s.cars[0].AddCall(call)
	} else {
		s.dispatcher.Enqueue(call, s.tick)
	}
	return call, nil
}

func (s *System) validate(call types.Call) error {
	b := s.cfg.Building
	if !b.Contains(call.Origin) {
		return fmt.Errorf("%w: origin %d outside [%d, %d]", types.ErrInvalidFloorRequest, call.Origin, b.Bottom, b.Top)
	}
	if !b.Contains(call.Destination) {
		return fmt.Errorf("%w: destination %d outside [%d, %d]", types.ErrInvalidFloorRequest, call.Destination, b.Bottom, b.Top)
	}
	if call.Dir != types.DirUp && call.Dir != types.DirDown {
		return fmt.Errorf("%w: hall call must be UP or DOWN, got %s", types.ErrInvalidDirection, call.Dir)
	}
	return nil
}

// Inject presses every call scheduled for the current tick. Invalid calls are
// rejected and reported together; the valid ones still go in.
func (s *System) Inject(calls []types.Call) error {
	var errs []error
	for _, c := range calls {
		if _, err := s.PressHallButton(c.Origin, c.Dir, c.Destination); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Step advances the system by one tick. The dispatcher pass completes before any car moves.
func (s *System) Step() {
	if s.dispatcher != nil {
		s.dispatcher.Step(s.tick)
	}
	for _, car := range s.cars {
		car.Tick(s.tick)
	}
	s.tick++
}

// Run injects schedule[tick] and steps, for the given number of ticks from the current tick.
func (s *System) Run(schedule Schedule, ticks int) error {
	var errs []error
	for range ticks {
		if err := s.Inject(schedule[s.tick]); err != nil {
			errs = append(errs, fmt.Errorf("tick %d: %w", s.tick, err))
		}
		s.Step()
	}
	return errors.Join(errs...)
}

// Reset puts every car back at its start floor, or at the given floors when supplied,
// and clears the queue and the tick counter.
func (s *System) Reset(startFloors ...int) error {
	if len(startFloors) > 0 {
		cfg := s.cfg
		cfg.StartFloors = startFloors
		if len(startFloors) != len(s.cars) {
			return fmt.Errorf("%w: %d start floors for %d cars", types.ErrInvalidConfig, len(startFloors), len(s.cars))
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		s.cfg = cfg
	}
	for i, car := range s.cars {
		car.Reset(s.cfg.StartFloors[i])
	}
	if s.dispatcher != nil {
		s.dispatcher.Reset()
	}
	s.tick = 0
	s.lastID = 0
	return nil
}

func (s *System) Tick() int {
	return s.tick
}

func (s *System) Config() config.Config {
	return s.cfg
}

// Cars returns a snapshot of every car, in roster order.
func (s *System) Cars() []elev.CarState {
	states := make([]elev.CarState, len(s.cars))
	for i, car := range s.cars {
		states[i] = car.State()
	}
	return states
}

// Visited returns the visited log of car id, or nil for an unknown id.
func (s *System) Visited(id int) []int {
	if id < 0 || id >= len(s.cars) {
		return nil
	}
	return s.cars[id].Visited()
}

// Queued returns the calls not yet assigned to a car.
func (s *System) Queued() []types.Call {
	if s.dispatcher == nil {
		return nil
	}
	return s.dispatcher.Pending()
}

func (s *System) Stats() Stats {
	stats := Stats{Tick: s.tick}
	for _, car := range s.cars {
		stats.MaxPickupWait = max(stats.MaxPickupWait, car.MaxPickupWait())
	}
	if s.dispatcher != nil {
		stats.Stats = s.dispatcher.Stats()
		stats.Queued = len(s.dispatcher.Pending())
		stats.OldestWait = s.dispatcher.OldestWait(s.tick)
	}
	return stats
}
