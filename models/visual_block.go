package models

// BlockClassification marks whether a block is a slot's own-day piece or its wrapped remainder
type BlockClassification string

const (
	BlockNormal   BlockClassification = "normal"
	BlockOverflow BlockClassification = "overflow"
)

// VisualBlock is a resolved [StartMinute, EndMinute) interval on one cycle day.
// StartMinute < EndMinute always holds for blocks produced by the layout engine.
type VisualBlock struct {
	ID             string              `json:"id" yaml:"id"`
	DayInCycle     CycleDay            `json:"day_in_cycle" yaml:"day_in_cycle"`
	StartMinute    TimeOfDay           `json:"start_minute" yaml:"start_minute"`
	EndMinute      TimeOfDay           `json:"end_minute" yaml:"end_minute"`
	Classification BlockClassification `json:"classification" yaml:"classification"`
	SlotID         string              `json:"slot_id" yaml:"slot_id"`
	PatternKind    PatternKind         `json:"pattern_kind,omitempty" yaml:"pattern_kind,omitempty"`
}

// Duration returns the block's length in minutes
func (b VisualBlock) Duration() int {
	return int(b.EndMinute - b.StartMinute)
}

// OffsetPercent returns the block's left offset on a 24-hour timeline
func (b VisualBlock) OffsetPercent() float64 {
	return float64(b.StartMinute) / MinutesPerDay * 100
}

// WidthPercent returns the block's width on a 24-hour timeline
func (b VisualBlock) WidthPercent() float64 {
	return float64(b.EndMinute-b.StartMinute) / MinutesPerDay * 100
}

// DayBuckets holds one block list per cycle day; index i is day i+1
type DayBuckets [][]VisualBlock

// Day returns the blocks for a cycle day, or nil when the day is outside the buckets
func (d DayBuckets) Day(day CycleDay) []VisualBlock {
	if !day.Within(len(d)) {
		return nil
	}
	return d[day.Index()]
}

// Clone returns a copy whose day slices share no backing arrays with d
func (d DayBuckets) Clone() DayBuckets {
	if d == nil {
		return nil
	}
	out := make(DayBuckets, len(d))
	for i, blocks := range d {
		out[i] = append(make([]VisualBlock, 0, len(blocks)), blocks...)
	}
	return out
}
