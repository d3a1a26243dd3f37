package elev

import "scanvator/src/utils"

// CarCallSet holds the destination floors pressed inside a car, in press order.
// A floor appears at most once.
type CarCallSet struct {
	Floors []int
}

// Add presses floor. Pressing a floor that is already lit has no effect and returns false.
func (s *CarCallSet) Add(floor int) bool {
	if s.Contains(floor) {
		return false
	}
	s.Floors = append(s.Floors, floor)
	return true
}

// Remove clears floor and reports whether it was set.
func (s *CarCallSet) Remove(floor int) bool {
	for i, f := range s.Floors {
		if f == floor {
			s.Floors = append(s.Floors[:i], s.Floors[i+1:]...)
			return true
		}
	}
	return false
}

func (s CarCallSet) Contains(floor int) bool {
	for _, f := range s.Floors {
		if f == floor {
			return true
		}
	}
	return false
}

func (s CarCallSet) Len() int {
	return len(s.Floors)
}

// Nearest returns the pressed floor closest to from. On equal distance the floor pressed first wins.
func (s CarCallSet) Nearest(from int) (int, bool) {
	if len(s.Floors) == 0 {
		return 0, false
	}
	best := s.Floors[0]
	for _, f := range s.Floors[1:] {
		if utils.Abs(f-from) < utils.Abs(best-from) {
			best = f
		}
	}
	return best, true
}
