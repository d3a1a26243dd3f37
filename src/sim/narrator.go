package sim

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scanvator/src/types"
)

// LogSink narrates the event feed through a zerolog logger.
// Status events are logged at debug level, everything else at info.
type LogSink struct {
	Logger *zerolog.Logger // nil uses the global logger
}

func (l LogSink) Emit(ev types.Event) {
	logger := l.Logger
	if logger == nil {
		logger = &log.Logger
	}

	e := logger.Info()
	if ev.Type == types.EventStatus {
		e = logger.Debug()
	}
	e = e.Str("event", string(ev.Type)).Int("tick", ev.Tick)
	if ev.CarID != types.NoCar {
		e = e.Int("car", ev.CarID)
	}
	e = e.Int("floor", ev.Floor).Stringer("dir", ev.Dir)
	if ev.Call != (types.Call{}) {
		e = e.Stringer("call", ev.Call)
	}
	e.Msg(describe(ev))
}

func describe(ev types.Event) string {
	switch ev.Type {
	case types.EventCallReceived:
		return "Floor button pressed"
	case types.EventCallQueued:
		return "Call waiting for a car"
	case types.EventCallAssigned:
		return "Call assigned"
	case types.EventCallAged:
		return "Call waited too long, any car may take it"
	case types.EventCarCallPressed:
		return "Car button pressed"
	case types.EventPassengerExit:
		return "Passenger(s) exiting"
	case types.EventPassengerEnter:
		return "Passenger(s) entering"
	case types.EventStatus:
		return "Status"
	}
	return string(ev.Type)
}
