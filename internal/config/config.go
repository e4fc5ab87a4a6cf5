// Package config loads ratel settings from command-line flags, environment
// variables, a .env file and the persisted music-folder state file.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"

	"github.com/simonhull/ratel/internal/id3v1"
)

// DefaultMusicDir is used when no folder is configured or persisted.
const DefaultMusicDir = "Music"

// DefaultStateFile holds the persisted music folder.
const DefaultStateFile = "folderName.txt"

// Config holds the application configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Library LibraryConfig
	Watch   WatchConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// LibraryConfig holds music library configuration.
type LibraryConfig struct {
	MusicDir  string // Folder scanned for playable files
	StateFile string // Text file persisting MusicDir between runs
	Charset   string // IANA name of the single-byte tag charset
	Workers   int    // Concurrent tag reads during a scan
}

// WatchConfig holds folder watching configuration.
type WatchConfig struct {
	SettleDelay time.Duration // Quiet period before a change triggers a rescan
}

// Load builds the configuration from args (without the program name) with
// precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Persisted state file (music folder only).
// 5. Default values (lowest priority).
//
// Usage and flag errors are written to output. It returns the arguments
// left after flag parsing.
func Load(args []string, output io.Writer) (*Config, []string, error) {
	fs := flag.NewFlagSet("ratel", flag.ContinueOnError)
	fs.SetOutput(output)

	env := fs.String("env", "", "Environment (development, production)")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	musicDir := fs.String("music-dir", "", "Music folder to scan (default: persisted folder, then ./Music)")
	stateFile := fs.String("state-file", "", "File persisting the music folder (default: folderName.txt)")
	charset := fs.String("charset", "", "Tag charset, any single-byte IANA name (default: windows-1252)")
	workers := fs.String("workers", "", "Concurrent tag reads (default: number of CPUs)")
	settle := fs.String("settle", "", "Watch settle delay (default: 250ms)")
	envFile := fs.String("env-file", ".env", "Path to .env file")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "RATEL_ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "RATEL_LOG_LEVEL", "info"),
		},
		Library: LibraryConfig{
			MusicDir:  getConfigValue(*musicDir, "RATEL_MUSIC_DIR", ""),
			StateFile: getConfigValue(*stateFile, "RATEL_STATE_FILE", DefaultStateFile),
			Charset:   getConfigValue(*charset, "RATEL_CHARSET", "windows-1252"),
			Workers:   getIntConfigValue(*workers, "RATEL_WORKERS", runtime.NumCPU()),
		},
	}

	settleStr := getConfigValue(*settle, "RATEL_SETTLE", "250ms")
	settleDelay, err := time.ParseDuration(settleStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid settle delay %q: %w", settleStr, err)
	}
	cfg.Watch.SettleDelay = settleDelay

	if err := cfg.resolveMusicDir(); err != nil {
		return nil, nil, fmt.Errorf("invalid music folder: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, fs.Args(), nil
}

// Validate checks that all config values are present and valid.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %q (must be development or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Library.MusicDir == "" {
		return errors.New("music folder cannot be empty after resolution")
	}

	if _, err := id3v1.LookupCharset(c.Library.Charset); err != nil {
		return err
	}

	if c.Library.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Library.Workers)
	}

	if c.Watch.SettleDelay < 0 {
		return fmt.Errorf("settle delay must not be negative, got %s", c.Watch.SettleDelay)
	}

	return nil
}

// CharsetMap returns the configured charset. Call Validate first.
func (c *Config) CharsetMap() *charmap.Charmap {
	cm, err := id3v1.LookupCharset(c.Library.Charset)
	if err != nil {
		return id3v1.DefaultCharset
	}
	return cm
}

// resolveMusicDir falls back to the state file and then the default folder,
// and makes the result absolute.
func (c *Config) resolveMusicDir() error {
	if c.Library.MusicDir == "" {
		saved, err := LoadFolder(c.Library.StateFile)
		if err != nil {
			return err
		}
		c.Library.MusicDir = saved
	}

	expanded, err := expandPath(c.Library.MusicDir, DefaultMusicDir)
	if err != nil {
		return err
	}
	c.Library.MusicDir = expanded
	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty, defaultPath is expanded instead.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		path = defaultPath
	}
	if path == "" {
		return "", nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getIntConfigValue returns an int from flag, env var, or default.
// Unparseable values are kept as 0 so that Validate reports them.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(strings.TrimSpace(strValue))
	if err != nil {
		return 0
	}
	return result
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
