package timezone

import "time"

const DefaultTimezone = "Asia/Kolkata"

const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// StartOfDay parses a YYYY-MM-DD civil date as midnight in tz.
func StartOfDay(date, tz string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, Location(tz))
}

// EndOfDay returns the first instant after the given civil date in tz.
func EndOfDay(date, tz string) (time.Time, error) {
	start, err := StartOfDay(date, tz)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, 1), nil
}
