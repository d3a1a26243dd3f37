package utils

import (
	"strconv"
	"strings"

	"scanvator/src/types"
)

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DirectionTo returns the direction a car at from must travel to reach to.
func DirectionTo(from, to int) types.Direction {
	switch {
	case to > from:
		return types.DirUp
	case to < from:
		return types.DirDown
	}
	return types.DirIdle
}

// FormatFloors renders a floor sequence as "1 -> 3 -> 10".
func FormatFloors(floors []int) string {
	if len(floors) == 0 {
		return "-"
	}
	parts := make([]string, len(floors))
	for i, f := range floors {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, " -> ")
}
