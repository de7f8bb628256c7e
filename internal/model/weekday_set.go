package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// WeekdaySet набор дней недели в ISO-нумерации: 0 = понедельник, 6 = воскресенье.
// Хранится отсортированным и без дубликатов.
type WeekdaySet []int

// NewWeekdaySet создаёт набор из списка дней, проверяя диапазон значений
func NewWeekdaySet(days []int) (WeekdaySet, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("weekday set is empty")
	}

	seen := make(map[int]bool, len(days))
	set := make(WeekdaySet, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("weekday %d out of range 0..6", d)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		set = append(set, d)
	}

	sort.Ints(set)
	return set, nil
}

// ParseWeekdaySet разбирает транспортную кодировку: JSON-массив номеров дней,
// например "[0,2,4]". Старый клиент передаёт массив строкой, поэтому кодировку
// разбираем явно, а не подстрочным поиском.
func ParseWeekdaySet(encoded string) (WeekdaySet, error) {
	var days []int
	if err := json.Unmarshal([]byte(encoded), &days); err != nil {
		return nil, fmt.Errorf("parse weekday set %q: %w", encoded, err)
	}
	return NewWeekdaySet(days)
}

// Contains проверяет наличие дня в наборе
func (s WeekdaySet) Contains(day int) bool {
	for _, d := range s {
		if d == day {
			return true
		}
	}
	return false
}

// ContainsDate проверяет, попадает ли дата на один из дней набора
func (s WeekdaySet) ContainsDate(date time.Time) bool {
	return s.Contains(ISOWeekday(date))
}

// ISOWeekday возвращает день недели даты в ISO-нумерации (0 = понедельник).
// time.Weekday считает с воскресенья, поэтому сдвигаем.
func ISOWeekday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// UnmarshalJSON принимает как массив чисел, так и массив, завёрнутый в строку
// (формат старого клиента: "[1,3,5]")
func (s *WeekdaySet) UnmarshalJSON(data []byte) error {
	var days []int
	if err := json.Unmarshal(data, &days); err != nil {
		var encoded string
		if serr := json.Unmarshal(data, &encoded); serr != nil {
			return fmt.Errorf("weekday set: expected array of ints or encoded string")
		}
		set, perr := ParseWeekdaySet(encoded)
		if perr != nil {
			return perr
		}
		*s = set
		return nil
	}

	set, err := NewWeekdaySet(days)
	if err != nil {
		return err
	}
	*s = set
	return nil
}

func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal([]int(s))
}
