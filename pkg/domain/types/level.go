package types

import "fmt"

// Level is the three step scale shared by risk likelihood, risk impact,
// risk tiers and migration effort.
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// AllLevels returns all valid levels, lowest first
func AllLevels() []Level {
	return []Level{
		LevelLow,
		LevelMedium,
		LevelHigh,
	}
}

// IsValid checks if the level is valid
func (l Level) IsValid() bool {
	switch l {
	case LevelLow,
		LevelMedium,
		LevelHigh:
		return true
	default:
		return false
	}
}

// Score maps the level onto 1..3. Unknown levels score as Low.
func (l Level) Score() int {
	switch l {
	case LevelMedium:
		return 2
	case LevelHigh:
		return 3
	default:
		return 1
	}
}

// String returns the string representation of the level
func (l Level) String() string {
	return string(l)
}

// ParseLevel parses a string into a Level
func ParseLevel(s string) (Level, error) {
	level := Level(s)
	if !level.IsValid() {
		return "", fmt.Errorf("invalid level: %s", s)
	}
	return level, nil
}
