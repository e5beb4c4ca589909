package models

import "time"

type RootCtx struct {
	LogLevel                 string
	LargeEntryThreshold      string
	LargeEntryThresholdBytes uint64
}

// WheelEntry is one file record inside a wheel archive.
type WheelEntry struct {
	Filename       string
	Size           uint64
	CompressedSize uint64
	Modified       time.Time
}

// CompressionRatio returns the percentage of space saved by compression,
// defined as 0 when the entry is empty.
func (e WheelEntry) CompressionRatio() float64 {
	if e.Size == 0 {
		return 0
	}
	return (1 - float64(e.CompressedSize)/float64(e.Size)) * 100
}

// WheelReport holds the entries of one archive, sorted by filename, plus
// aggregate totals computed over the full entry set.
type WheelReport struct {
	Entries         []WheelEntry
	TotalSize       uint64
	TotalCompressed uint64
}

// OverallRatio is computed from the totals, not averaged per entry.
func (r WheelReport) OverallRatio() float64 {
	if r.TotalSize == 0 {
		return 0
	}
	return (1 - float64(r.TotalCompressed)/float64(r.TotalSize)) * 100
}

// ClassInfo lists the exported methods of one named type, in declaration order.
type ClassInfo struct {
	Name    string
	Methods []string
}

// ModuleReport partitions a package's exported names by role. Every exported
// name appears in exactly one of the three lists.
type ModuleReport struct {
	TotalAttributes int
	Classes         []string
	Functions       []string
	Constants       []string
	Details         []ClassInfo
}
