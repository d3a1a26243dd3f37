package utils

import (
	"testing"

	"scanvator/src/types"
)

func TestDirectionTo(t *testing.T) {
	if d := DirectionTo(3, 7); d != types.DirUp {
		t.Errorf("Expected UP, got %s", d)
	}
	if d := DirectionTo(7, 3); d != types.DirDown {
		t.Errorf("Expected DOWN, got %s", d)
	}
	if d := DirectionTo(4, 4); d != types.DirIdle {
		t.Errorf("Expected IDLE, got %s", d)
	}
}

func TestFormatFloors(t *testing.T) {
	if s := FormatFloors([]int{1, 3, 10}); s != "1 -> 3 -> 10" {
		t.Errorf("Unexpected format %q", s)
	}
	if s := FormatFloors(nil); s != "-" {
		t.Errorf("Expected placeholder for empty sequence, got %q", s)
	}
}
