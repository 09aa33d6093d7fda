package tetris

import "time"

// LinesPerLevel is how many cleared lines advance the level by one.
const LinesPerLevel = 10

var linePoints = [...]int{0, 40, 100, 300, 1200}

// LinePoints returns the points for clearing rows rows at once on level. Row
// counts outside 1..4 are worth nothing.
func LinePoints(rows, level int) int {
	if rows < 1 || rows >= len(linePoints) {
		return 0
	}
	return linePoints[rows] * (level + 1)
}

// Score is the cleared-line count and points of a game. It is a value; Add
// returns the next state.
type Score struct {
	Lines  int `yaml:"lines"`
	Points int `yaml:"points"`
}

// Level is derived from the cleared lines.
func (s Score) Level() int {
	return s.Lines / LinesPerLevel
}

// Add returns the score after clearing rows rows at once. Points use the level
// before the clear. Row counts outside 1..4 leave the score unchanged.
func (s Score) Add(rows int) Score {
	points := LinePoints(rows, s.Level())
	if points == 0 {
		return s
	}
	return Score{Lines: s.Lines + rows, Points: s.Points + points}
}

// Gravity maps levels to fall intervals.
type Gravity struct {
	frame  time.Duration
	frames []int
}

// NewGravity builds a curve from frames-per-cell per level. The last entry
// holds for every higher level.
func NewGravity(framesPerSecond int, frames []int) Gravity {
	return Gravity{
		frame:  time.Second / time.Duration(framesPerSecond),
		frames: append([]int(nil), frames...),
	}
}

// FallInterval returns how long the active piece waits before falling one
// row on level.
func (g Gravity) FallInterval(level int) time.Duration {
	if level < 0 {
		level = 0
	}
	if level >= len(g.frames) {
		level = len(g.frames) - 1
	}
	return time.Duration(g.frames[level]) * g.frame
}
