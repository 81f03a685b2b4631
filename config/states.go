package config

// MoodID is the character's mood. There are exactly two.
type MoodID int

const (
	MoodIdle MoodID = iota
	MoodTalking
)

func (m MoodID) String() string {
	switch m {
	case MoodIdle:
		return "idle"
	case MoodTalking:
		return "talking"
	default:
		return "unknown"
	}
}
