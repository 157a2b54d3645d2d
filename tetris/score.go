package tetris

import "time"

const (
	initialFallInterval = 1000 * time.Millisecond
	fallIntervalStep    = 100 * time.Millisecond
	minFallInterval     = 100 * time.Millisecond

	// points per row traveled on a hard drop, added on top of any
	// line-clear score.
	hardDropPointsPerRow = 2

	linesPerLevel = 10
)

var lineScores = [5]int{0, 100, 300, 500, 800}

// Score returns the points for clearing the given number of lines at
// the given level. Out-of-range inputs score nothing.
func Score(lines, level int) int {
	if lines < 0 || lines >= len(lineScores) || level <= 0 {
		return 0
	}
	return lineScores[lines] * level
}

// LevelForLines maps the total number of cleared lines to the level:
// one level every ten lines, starting at level 1.
func LevelForLines(total int) int {
	if total < 0 {
		total = 0
	}
	return total/linesPerLevel + 1
}

// FallIntervalFor returns how long a piece rests on each row at the
// given level. The interval shrinks 100ms per level and floors out at
// 100ms from level 10 on; levels below 1 keep extrapolating upward.
func FallIntervalFor(level int) time.Duration {
	interval := initialFallInterval - time.Duration(level-1)*fallIntervalStep
	if interval < minFallInterval {
		return minFallInterval
	}
	return interval
}
