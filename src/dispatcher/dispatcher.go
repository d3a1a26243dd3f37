package dispatcher

import (
	"github.com/rs/zerolog/log"

	"scanvator/src/config"
	"scanvator/src/elev"
	"scanvator/src/types"
)

// Dispatcher owns the unassigned-call queue and routes each call to at most one car.
type Dispatcher struct {
	cars            []*elev.Car // roster order is the tie-break order
	queue           []queuedCall
	starvationTicks int
	sink            types.EventSink
	stats           Stats
}

func New(cars []*elev.Car, cfg config.Config, sink types.EventSink) *Dispatcher {
	if sink == nil {
		sink = types.Discard
	}
	return &Dispatcher{
		cars:            cars,
		starvationTicks: cfg.StarvationTicks,
		sink:            sink,
	}
}

// Enqueue adds a call to the dispatch queue. It is assigned on the next Step.
func (d *Dispatcher) Enqueue(call types.Call, tick int) {
	i := len(d.queue)
	for i > 0 && d.queue[i-1].call.RequestedAt > call.RequestedAt {
		i--
	}
	d.queue = append(d.queue, queuedCall{})
	copy(d.queue[i+1:], d.queue[i:])
	d.queue[i] = queuedCall{call: call}

	d.sink.Emit(types.Event{Type: types.EventCallQueued, Tick: tick, CarID: types.NoCar, Floor: call.Origin, Dir: call.Dir, Call: call})
}

// Step runs one assignment pass over the queue, oldest call first.
// Calls that find no car stay queued, in order, for the next tick.
func (d *Dispatcher) Step(tick int) {
	remaining := d.queue[:0]
	for _, q := range d.queue {
		if !q.aged && d.isAged(q.call, tick) {
			q.aged = true
			d.stats.Aged++
			log.Debug().Stringer("call", q.call).Int("waited", tick-q.call.RequestedAt).Msg("Call aged, relaxing suitability")
			d.sink.Emit(types.Event{Type: types.EventCallAged, Tick: tick, CarID: types.NoCar, Floor: q.call.Origin, Dir: q.call.Dir, Call: q.call})
		}

		carID, ok := d.FindAssignee(q.call, tick)
		if !ok {
			remaining = append(remaining, q)
			continue
		}

		car := d.cars[carID]
		car.Assign(q.call)
		wait := tick - q.call.RequestedAt
		d.stats.Assigned++
		d.stats.MaxAssignWait = max(d.stats.MaxAssignWait, wait)
		d.sink.Emit(types.Event{Type: types.EventCallAssigned, Tick: tick, CarID: carID, Floor: q.call.Origin, Dir: car.Dir(), Call: q.call})
	}
	d.queue = remaining
}

// FindAssignee picks the car for call without changing any state.
//  1. A car already holding a call from the same hall button takes it.
//  2. Otherwise, among suitable cars, the one with the fewest requests; ties go to the lower id.
//
// A call that has waited for the starvation bound treats every car as suitable.
func (d *Dispatcher) FindAssignee(call types.Call, tick int) (int, bool) {
	for i, car := range d.cars {
		if car.HasMatchingCall(call) {
			return i, true
		}
	}

	aged := d.isAged(call, tick)
	assignee := -1
	fewest := 0
	for i, car := range d.cars {
		if !aged && !car.SuitableFor(call) {
			continue
		}
		if n := car.TotalRequests(); assignee == -1 || n < fewest {
			assignee = i
			fewest = n
		}
	}
	if assignee == -1 {
		return 0, false
	}
	return assignee, true
}

func (d *Dispatcher) isAged(call types.Call, tick int) bool {
	return d.starvationTicks > 0 && tick-call.RequestedAt >= d.starvationTicks
}

// Pending returns the queued calls, oldest first.
func (d *Dispatcher) Pending() []types.Call {
	calls := make([]types.Call, len(d.queue))
	for i, q := range d.queue {
		calls[i] = q.call
	}
	return calls
}

// OldestWait is how long the oldest queued call has been waiting at tick, or 0 when the queue is empty.
func (d *Dispatcher) OldestWait(tick int) int {
	if len(d.queue) == 0 {
		return 0
	}
	return tick - d.queue[0].call.RequestedAt
}

func (d *Dispatcher) Stats() Stats {
	return d.stats
}

// Reset empties the queue and clears the stats. The roster is kept.
func (d *Dispatcher) Reset() {
	d.queue = nil
	d.stats = Stats{}
}
