package elev

import (
	"scanvator/src/config"
	"scanvator/src/types"
	"scanvator/src/utils"
)

// ChooseDirection is the SCAN policy. It is called after boarding and alighting at the current floor.
//  1. A car with any request at the top floor goes down, at the bottom floor goes up.
//  2. A moving car keeps its direction while requests remain ahead of it.
//  3. Otherwise head for the earliest pending hall call, then the nearest car call, else idle.
//     A hall call waiting at the current floor keeps an idle car idle until it boards.
func ChooseDirection(state CarState, building config.Building) types.Direction {
	if state.HasRequests() {
		switch state.Floor {
		case building.Top:
			return types.DirDown
		case building.Bottom:
			return types.DirUp
		}
	}

	switch state.Dir {
	case types.DirUp:
		if state.RequestsAbove() {
			return types.DirUp
		}
	case types.DirDown:
		if state.RequestsBelow() {
			return types.DirDown
		}
	}

	return chooseDirIdle(state)
}

func chooseDirIdle(state CarState) types.Direction {
	if len(state.Pending) > 0 {
		return utils.DirectionTo(state.Floor, state.Pending[0].Origin)
	}
	if next, ok := state.CarCalls.Nearest(state.Floor); ok {
		return utils.DirectionTo(state.Floor, next)
	}
	return types.DirIdle
}
