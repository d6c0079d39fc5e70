package config

// Layout constants.
const (
	// ContentWidth is the preferred width of a screen's body.
	ContentWidth = 56

	// MinContentWidth is the narrowest body we render.
	MinContentWidth = 30

	// CircleMinRadius and CircleMaxRadius bound the breathing circle, in rows.
	CircleMinRadius = 2
	CircleMaxRadius = 6

	// ProgressBarWidth is the music progress bar width.
	ProgressBarWidth = 40
)

// Display limits.
const (
	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."

	// MaxFeedbackLength caps the progress screen feedback box.
	MaxFeedbackLength = 500
)

// Spring tuning for the breathing circle.
const (
	SpringFrequency = 4.0
	SpringDamping   = 0.8
)
