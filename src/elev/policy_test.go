package elev

import (
	"testing"

	"scanvator/src/config"
	"scanvator/src/types"
)

var building = config.Building{Bottom: 1, Top: 10}

func call(origin int, dir types.Direction, dest, tick int) types.Call {
	return types.Call{Origin: origin, Dir: dir, Destination: dest, RequestedAt: tick}
}

func TestChooseDirection(t *testing.T) {
	cases := []struct {
		name  string
		state CarState
		want  types.Direction
	}{
		{
			name:  "idle without requests",
			state: CarState{Floor: 5, Dir: types.DirIdle},
			want:  types.DirIdle,
		},
		{
			name:  "idle at top without requests stays idle",
			state: CarState{Floor: 10, Dir: types.DirIdle},
			want:  types.DirIdle,
		},
		{
			name:  "top floor forces down even while scanning up",
			state: CarState{Floor: 10, Dir: types.DirUp, CarCalls: CarCallSet{Floors: []int{3}}},
			want:  types.DirDown,
		},
		{
			name:  "bottom floor forces up even while scanning down",
			state: CarState{Floor: 1, Dir: types.DirDown, Pending: []types.Call{call(4, types.DirDown, 2, 0)}},
			want:  types.DirUp,
		},
		{
			name: "continue up while a car call is above",
			state: CarState{Floor: 5, Dir: types.DirUp,
				Pending:  []types.Call{call(2, types.DirUp, 3, 0)},
				CarCalls: CarCallSet{Floors: []int{8}}},
			want: types.DirUp,
		},
		{
			name:  "continue up while a hall call is above",
			state: CarState{Floor: 5, Dir: types.DirUp, Pending: []types.Call{call(7, types.DirDown, 1, 0)}},
			want:  types.DirUp,
		},
		{
			name:  "continue down while a request is below",
			state: CarState{Floor: 5, Dir: types.DirDown, CarCalls: CarCallSet{Floors: []int{9, 2}}},
			want:  types.DirDown,
		},
		{
			name:  "reverse when nothing is left ahead",
			state: CarState{Floor: 8, Dir: types.DirUp, CarCalls: CarCallSet{Floors: []int{2}}},
			want:  types.DirDown,
		},
		{
			name:  "scan up that runs out with nothing pending goes idle",
			state: CarState{Floor: 8, Dir: types.DirUp},
			want:  types.DirIdle,
		},
		{
			name: "idle heads for the earliest hall call",
			state: CarState{Floor: 5, Dir: types.DirIdle,
				Pending:  []types.Call{call(8, types.DirDown, 2, 0), call(3, types.DirUp, 4, 1)},
				CarCalls: CarCallSet{Floors: []int{4}}},
			want: types.DirUp,
		},
		{
			name:  "hall call at the current floor keeps an idle car idle",
			state: CarState{Floor: 5, Dir: types.DirIdle, Pending: []types.Call{call(5, types.DirUp, 8, 0)}},
			want:  types.DirIdle,
		},
		{
			name:  "idle heads for the nearest car call",
			state: CarState{Floor: 5, Dir: types.DirIdle, CarCalls: CarCallSet{Floors: []int{9, 3}}},
			want:  types.DirDown,
		},
		{
			name:  "equal distance goes to the car call pressed first",
			state: CarState{Floor: 5, Dir: types.DirIdle, CarCalls: CarCallSet{Floors: []int{6, 4}}},
			want:  types.DirUp,
		},
		{
			name:  "equal distance goes to the car call pressed first, reversed",
			state: CarState{Floor: 5, Dir: types.DirIdle, CarCalls: CarCallSet{Floors: []int{4, 6}}},
			want:  types.DirDown,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ChooseDirection(tc.state, building); got != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestChooseDirectionIsPure(t *testing.T) {
	state := CarState{Floor: 5, Dir: types.DirUp, CarCalls: CarCallSet{Floors: []int{2, 9}}}
	first := ChooseDirection(state, building)
	for range 10 {
		if got := ChooseDirection(state, building); got != first {
			t.Fatalf("Policy not deterministic: %s then %s", first, got)
		}
	}
	if state.Dir != types.DirUp || len(state.CarCalls.Floors) != 2 {
		t.Errorf("Policy modified its input: %+v", state)
	}
}
