// State types are defined in elev package so the policy and the car share them.
package elev

import "scanvator/src/types"

// CarState is the mutable state of one car.
type CarState struct {
	ID    int
	Floor int
	Dir   types.Direction
	// Pending holds assigned hall calls not yet picked up, ordered by RequestedAt then arrival.
	Pending  []types.Call
	CarCalls CarCallSet
}

// TotalRequests is the load measure used by the dispatcher.
func (s CarState) TotalRequests() int {
	return len(s.Pending) + s.CarCalls.Len()
}

func (s CarState) HasRequests() bool {
	return s.TotalRequests() > 0
}

// RequestsAbove reports whether any pending call origin or car call lies strictly above the car.
func (s CarState) RequestsAbove() bool {
	return s.anyRequest(func(floor int) bool { return floor > s.Floor })
}

// RequestsBelow reports whether any pending call origin or car call lies strictly below the car.
func (s CarState) RequestsBelow() bool {
	return s.anyRequest(func(floor int) bool { return floor < s.Floor })
}

func (s CarState) anyRequest(match func(floor int) bool) bool {
	for _, call := range s.Pending {
		if match(call.Origin) {
			return true
		}
	}
	for _, floor := range s.CarCalls.Floors {
		if match(floor) {
			return true
		}
	}
	return false
}

// HasMatchingCall reports whether a call from the same hall button is already pending.
func (s CarState) HasMatchingCall(call types.Call) bool {
	for _, p := range s.Pending {
		if p.Matches(call) {
			return true
		}
	}
	return false
}

// insertPending keeps Pending ordered by RequestedAt; equal ticks keep arrival order.
func (s *CarState) insertPending(call types.Call) {
	i := len(s.Pending)
	for i > 0 && s.Pending[i-1].RequestedAt > call.RequestedAt {
		i--
	}
	s.Pending = append(s.Pending, types.Call{})
	copy(s.Pending[i+1:], s.Pending[i:])
	s.Pending[i] = call
}
