package mood

import "time"

// DailyPoint is the average mood for one calendar day. AvgMood is nil for
// days without samples so charts can render gaps.
type DailyPoint struct {
	Date    string   `json:"date"`
	AvgMood *float64 `json:"avg_mood"`
	Count   int      `json:"count"`
}

// LevelCount is one slice of the mood distribution.
type LevelCount struct {
	Mood  Level `json:"mood"`
	Count int   `json:"count"`
}

// TimeSlotStat aggregates moods recorded within one part of the day.
type TimeSlotStat struct {
	TimeSlot string   `json:"time_slot"`
	AvgMood  *float64 `json:"avg_mood"`
	Count    int      `json:"count"`
}

// Analytics is the full trend view rendered by the mood widget.
type Analytics struct {
	Last7Days         []DailyPoint   `json:"last_7_days"`
	Last30Days        []DailyPoint   `json:"last_30_days"`
	MoodDistribution  []LevelCount   `json:"mood_distribution"`
	TimeOfDayPatterns []TimeSlotStat `json:"time_of_day_patterns"`
}

var timeSlotOrder = []string{"morning", "afternoon", "evening", "night"}

// Compute builds the analytics view for a set of entries at a given moment.
func Compute(entries []Entry, now time.Time) Analytics {
	return Analytics{
		Last7Days:         dailySeries(entries, 7, now),
		Last30Days:        dailySeries(entries, 30, now),
		MoodDistribution:  distribution(entries),
		TimeOfDayPatterns: timeOfDayPatterns(entries),
	}
}

// dailySeries emits one point per day for the trailing window, oldest first,
// including days with no samples.
func dailySeries(entries []Entry, days int, now time.Time) []DailyPoint {
	start := now.AddDate(0, 0, -days)

	byDate := make(map[string][]int)
	for _, entry := range entries {
		if entry.RecordedAt.Before(start) {
			continue
		}
		date := entry.RecordedAt.UTC().Format("2006-01-02")
		byDate[date] = append(byDate[date], Value(entry.Mood))
	}

	series := make([]DailyPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).UTC().Format("2006-01-02")
		values := byDate[date]
		point := DailyPoint{Date: date, Count: len(values)}
		if len(values) > 0 {
			sum := 0
			for _, v := range values {
				sum += v
			}
			avg := float64(sum) / float64(len(values))
			point.AvgMood = &avg
		}
		series = append(series, point)
	}
	return series
}

func distribution(entries []Entry) []LevelCount {
	counts := make(map[Level]int, len(Levels))
	for _, entry := range entries {
		if Value(entry.Mood) > 0 {
			counts[entry.Mood]++
		}
	}

	result := make([]LevelCount, 0, len(Levels))
	for _, level := range Levels {
		result = append(result, LevelCount{Mood: level, Count: counts[level]})
	}
	return result
}

// timeOfDayPatterns buckets samples into morning (05-11), afternoon (12-16),
// evening (17-20) and night (everything else), using local sample hours.
func timeOfDayPatterns(entries []Entry) []TimeSlotStat {
	type bucket struct {
		count int
		sum   int
	}
	buckets := make(map[string]*bucket, len(timeSlotOrder))
	for _, slot := range timeSlotOrder {
		buckets[slot] = &bucket{}
	}

	for _, entry := range entries {
		value := Value(entry.Mood)
		if value == 0 {
			continue
		}
		slot := slotForHour(entry.RecordedAt.Hour())
		buckets[slot].count++
		buckets[slot].sum += value
	}

	result := make([]TimeSlotStat, 0, len(timeSlotOrder))
	for _, slot := range timeSlotOrder {
		b := buckets[slot]
		stat := TimeSlotStat{TimeSlot: slot, Count: b.count}
		if b.count > 0 {
			avg := float64(b.sum) / float64(b.count)
			stat.AvgMood = &avg
		}
		result = append(result, stat)
	}
	return result
}

func slotForHour(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 21:
		return "evening"
	default:
		return "night"
	}
}
