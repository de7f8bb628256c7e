package model

import "time"

// DateOnly обрезает время до календарной даты в UTC.
// Все даты занятий и праздников сравниваются в этой нормализации.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
