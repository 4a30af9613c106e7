// Package mood tracks discrete daily mood selections and renders trend
// analytics over them. It is independent from the conversation engine.
package mood

import (
	"strings"
	"time"
)

// Level is one of the five selectable mood values.
type Level string

const (
	LevelGreat    Level = "great"
	LevelGood     Level = "good"
	LevelOkay     Level = "okay"
	LevelBad      Level = "bad"
	LevelTerrible Level = "terrible"
)

// Levels lists every valid level from best to worst.
var Levels = []Level{LevelGreat, LevelGood, LevelOkay, LevelBad, LevelTerrible}

// Entry is one recorded mood sample.
type Entry struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"-"`
	Mood       Level     `json:"mood"`
	Note       string    `json:"note,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Normalize validates a raw mood string.
func Normalize(input string) (Level, bool) {
	level := Level(strings.ToLower(strings.TrimSpace(input)))
	for _, known := range Levels {
		if level == known {
			return level, true
		}
	}
	return "", false
}

// Value maps a level onto the 1..5 numeric scale used for averaging.
// Unknown levels yield 0.
func Value(level Level) int {
	switch level {
	case LevelGreat:
		return 5
	case LevelGood:
		return 4
	case LevelOkay:
		return 3
	case LevelBad:
		return 2
	case LevelTerrible:
		return 1
	default:
		return 0
	}
}

// FromValue maps an average back to the nearest level.
func FromValue(value float64) Level {
	switch {
	case value >= 4.5:
		return LevelGreat
	case value >= 3.5:
		return LevelGood
	case value >= 2.5:
		return LevelOkay
	case value >= 1.5:
		return LevelBad
	default:
		return LevelTerrible
	}
}
