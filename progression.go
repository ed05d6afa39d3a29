package tetris

import (
	"math"
	"time"
)

const (
	LinesPerLevel = 10
	BaseStep      = time.Second
	SpeedFactor   = 0.75
)

// LineScore is the score for clearing rows lines at once on level (0-based).
func LineScore(level, rows int) int {
	if rows < 1 {
		return 0
	}
	return (level + 1) * (1 << uint(rows)) * 50
}

func LevelFor(lines int) int {
	return lines / LinesPerLevel
}

// StepInterval is the gravity period on level: BaseStep * SpeedFactor^level,
// never less than a nanosecond.
func StepInterval(level int) time.Duration {
	d := time.Duration(float64(BaseStep) * math.Pow(SpeedFactor, float64(level)))
	if d < 1 {
		d = 1
	}
	return d
}
