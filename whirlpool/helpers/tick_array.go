package helpers

import (
	"fmt"

	"github.com/Tyman14888/whirlpools/whirlpool/shared"
)

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// TickArrayStartIndex returns the first tick index of the array holding tickIndex.
func TickArrayStartIndex(tickIndex int32, tickSpacing uint16) int32 {
	ticksInArray := int32(tickSpacing) * shared.TickArraySize
	return floorDiv(tickIndex, ticksInArray) * ticksInArray
}

// TickOffset returns the slot of tickIndex inside the array starting at startIndex.
func TickOffset(tickIndex, startIndex int32, tickSpacing uint16) (int, error) {
	offset := floorDiv(tickIndex-startIndex, int32(tickSpacing))
	if tickIndex < startIndex || offset >= shared.TickArraySize {
		return 0, fmt.Errorf("%w: tick %d, array start %d, spacing %d", shared.ErrTickNotInArray, tickIndex, startIndex, tickSpacing)
	}
	return int(offset), nil
}

// TickFromArray looks tickIndex up in array.
func TickFromArray(array *shared.TickArray, tickIndex int32, tickSpacing uint16) (shared.Tick, error) {
	offset, err := TickOffset(tickIndex, array.StartTickIndex, tickSpacing)
	if err != nil {
		return shared.Tick{}, err
	}
	return array.Ticks[offset], nil
}
