package config

// LogConfig controls where CLI log output goes. An empty File leaves the
// env-gated default logger untouched.
type LogConfig struct {
	// File is the rotating log file path.
	File string
	// Level is one of debug, info, warn, error.
	Level string
	// MaxSizeMB is the size a log file may reach before rotation.
	MaxSizeMB int
	// MaxBackups is the number of rotated files to keep.
	MaxBackups int
	// MaxAgeDays is the age limit for rotated files.
	MaxAgeDays int
}

// default settings for logging
var DefaultLogConfig = LogConfig{
	Level:      "info",
	MaxSizeMB:  10,
	MaxBackups: 3,
	MaxAgeDays: 28,
}
