package service

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound шаблон с таким ID не существует
	ErrTemplateNotFound = errors.New("recurring lesson template not found")

	// ErrHolidayNotFound праздник с таким ID не существует
	ErrHolidayNotFound = errors.New("holiday not found")

	// ErrUnresolvableRange конец диапазона генерации определить нельзя:
	// у шаблона нет end_date, а семестр расписания не найден
	ErrUnresolvableRange = errors.New("generation end date cannot be resolved")
)

// ValidationError нарушение ограничения входных данных, отклоняется
// до обращения к базе
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func validationErr(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
