package mapping

// Level is an intensity bucket, 0 (no activity) through MaxLevel.
type Level int

const MaxLevel Level = 4

// Color is an opaque "#rrggbb" color.
type Color string

// Palette maps each Level to its color, lightest first.
var Palette = [MaxLevel + 1]Color{
	"#f0f0f0",
	"#c6e48b",
	"#7bc96f",
	"#239a3b",
	"#196127",
}

var levelLabels = [MaxLevel + 1]string{
	"No contributions",
	"Low contributions",
	"Medium-low contributions",
	"Medium-high contributions",
	"High contributions",
}

// LevelFromCount buckets a day's count. Negative counts are treated as 0 and
// anything at or above MaxLevel saturates.
func LevelFromCount(count int) Level {
	if count <= 0 {
		return 0
	}
	if count >= int(MaxLevel) {
		return MaxLevel
	}
	return Level(count)
}

func (l Level) Color() Color {
	return Palette[clampLevel(l)]
}

// Label is the legend text for the bucket.
func (l Level) Label() string {
	return levelLabels[clampLevel(l)]
}

func clampLevel(l Level) Level {
	if l < 0 {
		return 0
	}
	if l > MaxLevel {
		return MaxLevel
	}
	return l
}

// ColorFor returns the cell color for a day's count. It is defined for every int.
func ColorFor(count int) Color {
	return LevelFromCount(count).Color()
}
