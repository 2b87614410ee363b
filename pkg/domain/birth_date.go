package domain

import (
	"fmt"
	"time"

	dErrors "workshop/pkg/domain-errors"
	"workshop/pkg/platform/validation"
)

const birthDateLayout = "2006-01-02"

// BirthDate is a calendar date that is not in the future and no more than
// MaxAgeYears completed years ago at construction time.
type BirthDate struct {
	value time.Time
}

// NewBirthDate checks date against today's date on the system clock.
func NewBirthDate(date time.Time) (BirthDate, error) {
	return NewBirthDateAt(date, time.Now())
}

// NewBirthDateAt checks date against the calendar day of now.
// Only the year, month and day of date are kept.
func NewBirthDateAt(date, now time.Time) (BirthDate, error) {
	if date.IsZero() {
		return BirthDate{}, dErrors.NewNullArgument("birth_date")
	}
	day := civilDate(date)
	today := civilDate(now)

	if day.After(today) {
		return BirthDate{}, dErrors.NewInvalidArgument("birth_date", "birth_date cannot be in the future")
	}
	if CompletedYears(day, today) > validation.MaxAgeYears {
		return BirthDate{}, dErrors.NewInvalidArgument("birth_date",
			fmt.Sprintf("birth_date cannot be older than %d years", validation.MaxAgeYears))
	}
	return BirthDate{value: day}, nil
}

// ParseBirthDate reads the yyyy-mm-dd form produced by String.
func ParseBirthDate(s string) (BirthDate, error) {
	return ParseBirthDateAt(s, time.Now())
}

// ParseBirthDateAt is ParseBirthDate with an explicit reference time.
func ParseBirthDateAt(s string, now time.Time) (BirthDate, error) {
	if s == "" {
		return BirthDate{}, dErrors.NewNullArgument("birth_date")
	}
	date, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return BirthDate{}, &dErrors.Error{
			Code:    dErrors.CodeInvalidArgument,
			Param:   "birth_date",
			Message: "birth_date must be a date in yyyy-mm-dd form",
			Err:     err,
		}
	}
	return NewBirthDateAt(date, now)
}

// Value returns the date as midnight UTC.
func (b BirthDate) Value() time.Time { return b.value }

// Age returns the completed years of age on the calendar day of now.
func (b BirthDate) Age(now time.Time) int { return CompletedYears(b.value, civilDate(now)) }

func (b BirthDate) IsZero() bool { return b.value.IsZero() }

func (b BirthDate) String() string { return b.value.Format(birthDateLayout) }

// civilDate drops the time of day and location, keeping the calendar day as
// seen in t's own location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
