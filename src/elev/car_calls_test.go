package elev

import (
	"slices"
	"testing"
)

func TestCarCallSetNoDuplicates(t *testing.T) {
	var s CarCallSet
	if !s.Add(4) {
		t.Error("First press of 4 should register")
	}
	if s.Add(4) {
		t.Error("Second press of 4 should have no effect")
	}
	s.Add(2)
	if !slices.Equal(s.Floors, []int{4, 2}) {
		t.Errorf("Expected press order [4 2], got %v", s.Floors)
	}
}

func TestCarCallSetRemove(t *testing.T) {
	s := CarCallSet{Floors: []int{7, 3, 9}}
	if !s.Remove(3) {
		t.Error("Expected 3 to be removed")
	}
	if s.Remove(3) {
		t.Error("Removing 3 twice should report false")
	}
	if !slices.Equal(s.Floors, []int{7, 9}) {
		t.Errorf("Expected [7 9], got %v", s.Floors)
	}
}

func TestCarCallSetNearest(t *testing.T) {
	var empty CarCallSet
	if _, ok := empty.Nearest(5); ok {
		t.Error("Empty set has no nearest floor")
	}
	s := CarCallSet{Floors: []int{9, 2, 7}}
	if f, _ := s.Nearest(5); f != 7 {
		t.Errorf("Expected 7, got %d", f)
	}
	tie := CarCallSet{Floors: []int{8, 2}}
	if f, _ := tie.Nearest(5); f != 8 {
		t.Errorf("Expected first pressed floor 8 on a tie, got %d", f)
	}
}
