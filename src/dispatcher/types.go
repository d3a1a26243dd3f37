package dispatcher

import "scanvator/src/types"

type queuedCall struct {
	call types.Call
	aged bool // call-aged already emitted
}

// Stats tracks how long calls sit in the dispatch queue.
type Stats struct {
	Assigned      int
	Aged          int
	MaxAssignWait int // ticks between RequestedAt and assignment
}
