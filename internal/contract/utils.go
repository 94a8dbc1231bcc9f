package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Score band label constants. Bands follow the ladder scale (0-10).
const (
	ThrivingValue   = "Thriving"   // Top of the ladder
	ContentValue    = "Content"    // Comfortably above the global middle
	MiddlingValue   = "Middling"   // Around the global middle
	StrugglingValue = "Struggling" // Bottom of the ladder
)

// Color variables for console output.
var (
	ThrivingColor   = color.New(color.FgGreen, color.Bold) // thrivingColor marks the leaderboard top.
	ContentColor    = color.New(color.FgCyan)              // contentColor marks solid scores.
	MiddlingColor   = color.New(color.FgYellow)            // middlingColor marks middle-of-the-pack scores.
	StrugglingColor = color.New(color.FgRed, color.Bold)   // strugglingColor marks the lowest band.
)

// GetPlainLabel returns a plain text band label for a ladder score.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 7.0:
		return ThrivingValue
	case score >= 6.0:
		return ContentValue
	case score >= 4.5:
		return MiddlingValue
	default:
		return StrugglingValue
	}
}

// GetColorLabel returns a colored band label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case ThrivingValue:
		return ThrivingColor.Sprint(text)
	case ContentValue:
		return ContentColor.Sprint(text)
	case MiddlingValue:
		return MiddlingColor.Sprint(text)
	default: // "Struggling"
		return StrugglingColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRunDBFilePath returns the path to the SQLite DB file for run tracking.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".ladderboard_runs.db"
	}
	return filepath.Join(homeDir, ".ladderboard_runs.db")
}

// TruncateName truncates a country or region name to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for the ellipsis.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
