package worksheet

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is a learner proficiency level. Higher levels get longer,
// more open-ended exercises.
type Level int

const (
	LevelBeginner Level = iota + 1
	LevelElementary
	LevelIntermediate
	LevelAdvanced
)

// AllLevels returns the levels in ascending order.
func AllLevels() []Level {
	return []Level{LevelBeginner, LevelElementary, LevelIntermediate, LevelAdvanced}
}

// Valid reports whether l is one of the four known levels.
func (l Level) Valid() bool {
	return l >= LevelBeginner && l <= LevelAdvanced
}

// String returns the short tag, e.g. "L2".
func (l Level) String() string {
	return "L" + strconv.Itoa(int(l))
}

// Name returns the human-readable level name.
func (l Level) Name() string {
	switch l {
	case LevelBeginner:
		return "Beginner"
	case LevelElementary:
		return "Elementary"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	default:
		return "Unknown"
	}
}

// ParseLevel accepts "2", "L2" or a level name such as "elementary".
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "l")

	if n, err := strconv.Atoi(s); err == nil {
		if l := Level(n); l.Valid() {
			return l, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrUnknownLevel, n)
	}

	for _, l := range AllLevels() {
		if strings.ToLower(l.Name()) == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
