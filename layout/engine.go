// Package layout turns a cyclic shift schedule into per-day timeline blocks.
//
// ComputeCycleLayout is a pure function: it performs no I/O, keeps no state, and
// returns structurally equal output for equal input, so it is safe to call from
// many goroutines at once. Caching results is left to the caller.
package layout

import (
	"fmt"

	"github.com/blogem/shift-cycles/models"
)

const (
	partSameDay  = 0
	partOverflow = 1
)

// ComputeCycleLayout lays out every slot of the schedule onto its cycle days.
//
// A slot whose start is before its end yields one normal block on its own day.
// Otherwise the slot crosses midnight: it yields a normal block running to the end
// of its own day and an overflow block from midnight on the next cycle day, where the
// day after the last one is day 1. Zero-length pieces are dropped, so a slot with
// start == end covers a full 24 hours.
//
// Slots with unresolvable or malformed times, or with a day outside the cycle,
// contribute nothing. The result always has CycleLengthDays buckets; a schedule
// with a cycle shorter than one day violates NewShiftSchedule's contract and
// yields nil.
func ComputeCycleLayout(schedule *models.ShiftSchedule) models.DayBuckets {
	if schedule == nil || schedule.CycleLengthDays < 1 {
		return nil
	}

	cycleLength := schedule.CycleLengthDays
	buckets := make(models.DayBuckets, cycleLength)
	for i := range buckets {
		buckets[i] = []models.VisualBlock{}
	}

	for i := range schedule.Slots {
		for _, block := range slotBlocks(&schedule.Slots[i], cycleLength) {
			idx := block.DayInCycle.Index()
			buckets[idx] = append(buckets[idx], block)
		}
	}

	return buckets
}

// slotBlocks splits a single slot into its visual blocks
func slotBlocks(slot *models.ScheduleSlot, cycleLength int) []models.VisualBlock {
	if !slot.DayInCycle.Within(cycleLength) {
		return nil
	}

	start, end, ok := resolveTimes(slot)
	if !ok {
		return nil
	}

	if start < end {
		return []models.VisualBlock{
			newBlock(slot, slot.DayInCycle, start, end, models.BlockNormal, partSameDay),
		}
	}

	blocks := make([]models.VisualBlock, 0, 2)
	if start < models.EndOfDay {
		blocks = append(blocks, newBlock(slot, slot.DayInCycle, start, models.EndOfDay, models.BlockNormal, partSameDay))
	}
	if end > models.StartOfDay {
		next := slot.DayInCycle.Next(cycleLength)
		blocks = append(blocks, newBlock(slot, next, models.StartOfDay, end, models.BlockOverflow, partOverflow))
	}
	return blocks
}

// resolveTimes parses the slot's effective bounds; ok is false when either side
// is missing or malformed
func resolveTimes(slot *models.ScheduleSlot) (start, end models.TimeOfDay, ok bool) {
	rawStart, rawEnd := slot.EffectiveBounds()
	if rawStart == nil || rawEnd == nil {
		return 0, 0, false
	}

	start, err := models.ParseTimeOfDay(*rawStart)
	if err != nil {
		return 0, 0, false
	}
	end, err = models.ParseTimeOfDay(*rawEnd)
	if err != nil {
		return 0, 0, false
	}

	return start, end, true
}

func newBlock(slot *models.ScheduleSlot, day models.CycleDay, start, end models.TimeOfDay,
	class models.BlockClassification, part int) models.VisualBlock {
	return models.VisualBlock{
		ID:             BlockID(slot.ID, part),
		DayInCycle:     day,
		StartMinute:    start,
		EndMinute:      end,
		Classification: class,
		SlotID:         slot.ID,
		PatternKind:    slot.Kind(),
	}
}

// BlockID returns the deterministic block identifier for a slot's split part:
// 0 for the same-day piece, 1 for the overflow piece
func BlockID(slotID string, part int) string {
	return fmt.Sprintf("%s:%d", slotID, part)
}
