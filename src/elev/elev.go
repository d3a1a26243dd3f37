package elev

import (
	"github.com/rs/zerolog/log"
	"github.com/tiendc/go-deepcopy"

	"scanvator/src/config"
	"scanvator/src/types"
)

// Car owns one CarState and runs its per-tick logic.
type Car struct {
	state    CarState
	building config.Building
	visits   config.VisitMode
	sink     types.EventSink

	visited       []int
	tick          int
	maxPickupWait int
}

// NewCar creates an idle car at floor. The caller validates floor against the building.
func NewCar(id, floor int, cfg config.Config, sink types.EventSink) *Car {
	if sink == nil {
		sink = types.Discard
	}
	car := &Car{
		state:    CarState{ID: id, Floor: floor, Dir: types.DirIdle},
		building: cfg.Building,
		visits:   cfg.Visits,
		sink:     sink,
	}
	log.Debug().Int("car", id).Int("floor", floor).Msg("Car initialized")
	return car
}

func (car *Car) ID() int {
	return car.state.ID
}

func (car *Car) Floor() int {
	return car.state.Floor
}

func (car *Car) Dir() types.Direction {
	return car.state.Dir
}

func (car *Car) TotalRequests() int {
	return car.state.TotalRequests()
}

func (car *Car) HasMatchingCall(call types.Call) bool {
	return car.state.HasMatchingCall(call)
}

// SuitableFor reports whether the car is idle, or already travelling in the call direction
// and will pass the call origin before it reverses.
func (car *Car) SuitableFor(call types.Call) bool {
	switch car.state.Dir {
	case types.DirIdle:
		return true
	case call.Dir:
		if call.Dir == types.DirUp {
			return car.state.Floor <= call.Origin
		}
		return car.state.Floor >= call.Origin
	}
	return false
}

// State returns a deep copy of the car state.
func (car *Car) State() CarState {
	var snapshot CarState
	if err := deepcopy.Copy(&snapshot, &car.state); err != nil {
		panic(err)
	}
	return snapshot
}

// Visited returns the floors recorded so far, consecutive repeats removed.
func (car *Car) Visited() []int {
	return append([]int(nil), car.visited...)
}

// MaxPickupWait is the longest time, in ticks, a boarded rider waited after pressing the hall button.
func (car *Car) MaxPickupWait() int {
	return car.maxPickupWait
}

// Reset parks the car idle at floor and forgets every request and visit.
func (car *Car) Reset(floor int) {
	car.state = CarState{ID: car.state.ID, Floor: floor, Dir: types.DirIdle}
	car.visited = nil
	car.tick = 0
	car.maxPickupWait = 0
}

// AddCall puts a hall call in the pending set without touching the direction.
func (car *Car) AddCall(call types.Call) {
	car.state.insertPending(call)
}

// Assign gives the car a hall call from the dispatcher.
// An idle car picks a direction right away so later assignments in the same pass see it moving.
func (car *Car) Assign(call types.Call) {
	car.AddCall(call)
	log.Debug().Int("car", car.state.ID).Stringer("call", call).Msg("Car assigned call")
	if car.state.Dir == types.DirIdle {
		car.setDir(ChooseDirection(car.state, car.building))
	}
}

// Tick runs one step:
//   - records the visited floor
//   - lets riders out, lets waiting riders in, then lets out riders whose destination is this floor
//   - recomputes the direction and moves at most one floor
func (car *Car) Tick(tick int) {
	car.tick = tick
	if car.visits == config.VisitEveryFloor {
		car.recordVisit()
	}

	car.letPassengersExit()
	car.letPassengersEnter()
	car.letPassengersExit()

	car.setDir(ChooseDirection(car.state, car.building))
	car.emit(types.Event{Type: types.EventStatus, Floor: car.state.Floor})

	if car.state.Dir != types.DirIdle {
		car.move()
	}
}

func (car *Car) letPassengersExit() {
	if !car.state.CarCalls.Remove(car.state.Floor) {
		return
	}
	if car.visits == config.VisitStops {
		car.recordVisit()
	}
	car.emit(types.Event{Type: types.EventPassengerExit, Floor: car.state.Floor})
}

func (car *Car) letPassengersEnter() {
	remaining := car.state.Pending[:0]
	var boarded []types.Call
	for _, call := range car.state.Pending {
		if call.Origin == car.state.Floor {
			boarded = append(boarded, call)
		} else {
			remaining = append(remaining, call)
		}
	}
	car.state.Pending = remaining

	for _, call := range boarded {
		if car.visits == config.VisitStops {
			car.recordVisit()
		}
		car.maxPickupWait = max(car.maxPickupWait, car.tick-call.RequestedAt)
		car.emit(types.Event{Type: types.EventPassengerEnter, Floor: car.state.Floor, Call: call})
		car.pressCarCall(call)
	}
}

func (car *Car) pressCarCall(call types.Call) {
	if !car.state.CarCalls.Add(call.Destination) {
		return
	}
	car.emit(types.Event{Type: types.EventCarCallPressed, Floor: call.Destination, Call: call})
}

func (car *Car) move() {
	car.state.Floor = car.building.Clamp(car.state.Floor + int(car.state.Dir))
}

func (car *Car) setDir(dir types.Direction) {
	if dir != car.state.Dir {
		log.Debug().
			Int("car", car.state.ID).
			Int("floor", car.state.Floor).
			Stringer("from", car.state.Dir).
			Stringer("to", dir).
			Msg("Direction change")
	}
	car.state.Dir = dir
}

func (car *Car) recordVisit() {
	n := len(car.visited)
	if n == 0 || car.visited[n-1] != car.state.Floor {
		car.visited = append(car.visited, car.state.Floor)
	}
}

func (car *Car) emit(ev types.Event) {
	ev.Tick = car.tick
	ev.CarID = car.state.ID
	ev.Dir = car.state.Dir
	car.sink.Emit(ev)
}
