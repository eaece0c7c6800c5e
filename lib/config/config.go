package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/go-trimesh/go-trimesh/lib/util"
	"github.com/go-trimesh/go-trimesh/lib/util/logger"
)

var (
	CfgFile string
	log     = logger.GetLogger()
)

const GOTRIMESH_BASE_DIR = ".go-trimesh"

// TrimeshConfig is the full CLI configuration.
type TrimeshConfig struct {
	// ReportPath is where the YAML validation report is written; empty
	// disables the report file.
	ReportPath string
	Lint       *LintConfig
	Log        *LogConfig
}

// TrimeshConfigProperties is the global configuration, updated by
// InitConfig.
var TrimeshConfigProperties = &TrimeshConfig{
	Lint: &DefaultLintConfig,
	Log:  &DefaultLogConfig,
}

func InitConfig() {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		// Set up viper to use the default config path $HOME/.go-trimesh/
		viper.AddConfigPath(BuildTrimeshDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Load defaults
	setDefaults()

	// handle config file creating it if needed
	handleConfigFile()

	// Update TrimeshConfigProperties
	UpdateTrimeshConfig()
}

func setDefaults() {
	viper.SetDefault("report_path", "")

	// Lint defaults
	viper.SetDefault("lint.check_degenerate", DefaultLintConfig.CheckDegenerate)
	viper.SetDefault("lint.check_backfacing", DefaultLintConfig.CheckBackfacing)
	viper.SetDefault("lint.check_bowties", DefaultLintConfig.CheckBowties)
	viper.SetDefault("lint.build_adjacency", DefaultLintConfig.BuildAdjacency)

	// Logging defaults
	viper.SetDefault("log.file", DefaultLogConfig.File)
	viper.SetDefault("log.level", DefaultLogConfig.Level)
	viper.SetDefault("log.max_size_mb", DefaultLogConfig.MaxSizeMB)
	viper.SetDefault("log.max_backups", DefaultLogConfig.MaxBackups)
	viper.SetDefault("log.max_age_days", DefaultLogConfig.MaxAgeDays)
}

// NewTrimeshConfigFromViper creates a new TrimeshConfig from current viper
// settings. This is the preferred way to get config instead of using the
// global TrimeshConfigProperties.
func NewTrimeshConfigFromViper() *TrimeshConfig {
	return &TrimeshConfig{
		ReportPath: viper.GetString("report_path"),
		Lint: &LintConfig{
			CheckDegenerate: viper.GetBool("lint.check_degenerate"),
			CheckBackfacing: viper.GetBool("lint.check_backfacing"),
			CheckBowties:    viper.GetBool("lint.check_bowties"),
			BuildAdjacency:  viper.GetBool("lint.build_adjacency"),
		},
		Log: &LogConfig{
			File:       viper.GetString("log.file"),
			Level:      viper.GetString("log.level"),
			MaxSizeMB:  viper.GetInt("log.max_size_mb"),
			MaxBackups: viper.GetInt("log.max_backups"),
			MaxAgeDays: viper.GetInt("log.max_age_days"),
		},
	}
}

// UpdateTrimeshConfig updates the global TrimeshConfigProperties from viper
// settings.
func UpdateTrimeshConfig() {
	cfg := NewTrimeshConfigFromViper()
	TrimeshConfigProperties.ReportPath = cfg.ReportPath
	TrimeshConfigProperties.Lint = cfg.Lint
	TrimeshConfigProperties.Log = cfg.Log
}

func createDefaultConfig(defaultConfigDir string) {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	// Ensure directory exists
	if err := os.MkdirAll(defaultConfigDir, 0o755); err != nil {
		log.Fatalf("Could not create config directory: %s", err)
	}

	// Write current config file
	if err := viper.WriteConfigAs(defaultConfigFile); err != nil {
		log.Fatalf("Could not write default config file: %s", err)
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
}

func handleConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if CfgFile != "" {
				log.Fatalf("Config file %s is not found: %s", CfgFile, err)
			} else {
				createDefaultConfig(BuildTrimeshDirPath())
			}
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func BuildTrimeshDirPath() string {
	return filepath.Join(util.UserHome(), GOTRIMESH_BASE_DIR)
}
