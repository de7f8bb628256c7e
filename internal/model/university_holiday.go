package model

import "time"

// UniversityHoliday праздничный день, исключаемый из генерации занятий.
// Для ежегодных праздников значим только месяц и день даты, год хранится
// как артефакт и при сопоставлении игнорируется.
type UniversityHoliday struct {
	ID       int64     `json:"id"`
	Name     *string   `json:"name"`
	IsAnnual bool      `json:"is_annual"`
	Date     time.Time `json:"date"`
}
