package utils

import (
	"reflect"
	"strings"
	"time"
)

// Wall-clock layouts used at the API boundary. Values carry no timezone;
// internally everything is constructed in UTC and the offset never means
// anything.
const (
	WallClockLayout = "2006-01-02T15:04:05"
	DateOnlyLayout  = "2006-01-02"
)

func ParseWallClock(s string) (time.Time, error) {
	return time.ParseInLocation(WallClockLayout, s, time.UTC)
}

func FormatWallClock(t time.Time) string {
	return t.UTC().Format(WallClockLayout)
}

func ParseDateOnly(s string) (time.Time, error) {
	return time.ParseInLocation(DateOnlyLayout, s, time.UTC)
}

func FormatDateOnly(t time.Time) string {
	return t.UTC().Format(DateOnlyLayout)
}

// DateOf truncates a wall-clock instant to its calendar date (midnight).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Ptr:
			if field.IsNil() {
				continue
			}
			switch field.Elem().Kind() {
			case reflect.String:
				field.Elem().SetString(sanitizeString(field.Elem().String()))
			case reflect.Struct:
				Sanitize(field.Interface())
			}

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
