package validators

import (
	"time"

	"moim/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
)

// IsWallClock accepts timezone-naive datetimes like 2025-01-06T09:00:00.
func IsWallClock(fl validator.FieldLevel) bool {
	_, err := time.ParseInLocation(utils.WallClockLayout, fl.Field().String(), time.UTC)
	return err == nil
}

// IsDateOnly accepts calendar dates like 2025-01-06.
func IsDateOnly(fl validator.FieldLevel) bool {
	_, err := time.ParseInLocation(utils.DateOnlyLayout, fl.Field().String(), time.UTC)
	return err == nil
}

// IsRRule accepts recurrence expressions the interpreter can parse,
// e.g. FREQ=WEEKLY;INTERVAL=2.
func IsRRule(fl validator.FieldLevel) bool {
	_, err := rrule.StrToROption(fl.Field().String())
	return err == nil
}
