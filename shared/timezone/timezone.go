package timezone

import (
	"fitstudio/config"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultOffset = "+05:30"

	secondsPerHour   = 3600
	secondsPerMinute = 60
)

var (
	mu          sync.RWMutex
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	value := cfg.App.Timezone
	if value == "" {
		log.Warn().Str("timezone", DefaultOffset).Msg("No timezone configured, using default offset")

		value = DefaultOffset
	}

	loc, err := LoadLocation(value)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", value).
			Msg("Failed to load timezone, falling back to the default offset")

		loc, _ = LoadLocation(DefaultOffset)
	}

	SetLocation(loc)

	log.Info().
		Str("timezone", value).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// LoadLocation resolves a fixed offset such as "+05:30" or an IANA name.
func LoadLocation(value string) (*time.Location, error) {
	value = strings.TrimSpace(value)
	offset := strings.TrimPrefix(strings.TrimPrefix(value, "UTC"), "GMT")

	if offset != "" && (offset[0] == '+' || offset[0] == '-') {
		seconds, err := parseOffset(offset)
		if err != nil {
			return nil, err
		}

		return time.FixedZone("UTC"+offset, seconds), nil
	}

	loc, err := time.LoadLocation(value)
	if err != nil {
		return nil, fmt.Errorf("loading location %q: %w", value, err)
	}

	return loc, nil
}

func parseOffset(offset string) (int, error) {
	sign := 1
	if offset[0] == '-' {
		sign = -1
	}

	digits := strings.ReplaceAll(offset[1:], ":", "")
	if len(digits) != 4 {
		return 0, fmt.Errorf("invalid offset %q: expected [+-]HH:MM", offset)
	}

	hours, err := strconv.Atoi(digits[:2])
	if err != nil {
		return 0, fmt.Errorf("invalid offset hours %q: %w", offset, err)
	}

	minutes, err := strconv.Atoi(digits[2:])
	if err != nil {
		return 0, fmt.Errorf("invalid offset minutes %q: %w", offset, err)
	}

	if hours > 14 || minutes >= 60 {
		return 0, fmt.Errorf("invalid offset %q: out of range", offset)
	}

	return sign * (hours*secondsPerHour + minutes*secondsPerMinute), nil
}

// SetLocation replaces the application location.
func SetLocation(loc *time.Location) {
	mu.Lock()
	defer mu.Unlock()

	appLocation = loc
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	mu.RLock()
	defer mu.RUnlock()

	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")

		return time.UTC
	}

	return appLocation
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// ToUTC converts a time to UTC
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// Date builds the UTC instant of a wall-clock time in the application timezone.
func Date(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, GetLocation()).UTC()
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
