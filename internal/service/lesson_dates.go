package service

import (
	"time"

	"github.com/Nikitossik/schedule-planner/internal/model"
)

// HolidayDatesInRange возвращает множество дат в диапазоне [from, to],
// на которые занятия не генерируются. Ежегодные праздники разворачиваются
// в конкретную дату для каждого года диапазона.
func HolidayDatesInRange(from, to time.Time, holidays []*model.UniversityHoliday) map[time.Time]struct{} {
	from = model.DateOnly(from)
	to = model.DateOnly(to)

	excluded := make(map[time.Time]struct{})
	for _, holiday := range holidays {
		date := model.DateOnly(holiday.Date)

		if !holiday.IsAnnual {
			if !date.Before(from) && !date.After(to) {
				excluded[date] = struct{}{}
			}
			continue
		}

		// Год хранимой даты ежегодного праздника значения не имеет
		for year := from.Year(); year <= to.Year(); year++ {
			candidate, ok := annualOccurrence(year, date)
			if !ok {
				continue
			}
			if !candidate.Before(from) && !candidate.After(to) {
				excluded[candidate] = struct{}{}
			}
		}
	}

	return excluded
}

// annualOccurrence возвращает дату ежегодного праздника в заданном году.
// time.Date нормализует 29 февраля невисокосного года в 1 марта,
// такой год пропускается.
func annualOccurrence(year int, date time.Time) (time.Time, bool) {
	candidate := time.Date(year, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Month() != date.Month() || candidate.Day() != date.Day() {
		return time.Time{}, false
	}
	return candidate, true
}

// LessonDates возвращает отсортированный список дат занятий в диапазоне
// [from, to]: дата попадает в список, если её день недели входит в days
// и её нет в excluded. Для from > to список пуст - диапазон шаблона
// уже исчерпан, это не ошибка. Функция детерминированная: одинаковые
// аргументы всегда дают одинаковый результат.
func LessonDates(days model.WeekdaySet, from, to time.Time, excluded map[time.Time]struct{}) []time.Time {
	from = model.DateOnly(from)
	to = model.DateOnly(to)

	var dates []time.Time
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		if !days.ContainsDate(date) {
			continue
		}
		if _, skip := excluded[date]; skip {
			continue
		}
		dates = append(dates, date)
	}

	return dates
}
