package config

import "time"

// Timer cadence.
const (
	// FrameInterval drives the breathing animation.
	FrameInterval = time.Second / 30
	// PollInterval drives music progress updates.
	PollInterval = time.Second
	// FeedbackThanksFor is how long the feedback thank-you line stays up.
	FeedbackThanksFor = 5 * time.Second
)

// Mood tracking.
const (
	MaxMoodEntries     = 20
	RecentMoodEntries  = 5
	DefaultStressLevel = 5
	MinStressLevel     = 0
	MaxStressLevel     = 10

	// Stress above these levels routes the user to a calming screen.
	BreathingStressThreshold = 7
	MusicStressThreshold     = 4
)

// Music playback.
const (
	DefaultVolume = 70
	VolumeStep    = 5

	// CalmingTrackID loops behind a breathing session when calming sounds
	// are on. CalmingCategory is the fallback when the catalog lacks it.
	CalmingTrackID  = "ocean-1"
	CalmingCategory = "ocean"
)

// Persistence keys.
const (
	UserDataKey       = "serenity_user_data"
	LastGoalsResetKey = "last_goals_reset_date"
)

// Settings keys.
const (
	SettingPattern = "breathing_pattern"
	SettingVolume  = "music_volume"
	SettingTheme   = "theme"

	// SettingCalmingSounds holds "true" or "false".
	SettingCalmingSounds = "calming_sounds"
)

// Database/application settings.
const (
	AppName        = "serenity"
	DBFileName     = "serenity.db"
	LogFileName    = "serenity.log"
	ConfigFileName = "config.yaml"
)
