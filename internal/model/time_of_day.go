package model

import (
	"encoding/json"
	"fmt"
)

// TimeOfDay время в пределах суток, хранится как минуты от полуночи.
// Одинаково для всех занятий шаблона, поэтому часовой пояс не нужен.
type TimeOfDay int

// NewTimeOfDay создаёт время из часов и минут
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d out of range 0..23", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute %d out of range 0..59", minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay разбирает строку "HH:MM" или "HH:MM:SS" (секунды отбрасываются)
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	var hour, minute, second int

	n, err := fmt.Sscanf(value, "%d:%d:%d", &hour, &minute, &second)
	if err != nil || n < 2 {
		n, err = fmt.Sscanf(value, "%d:%d", &hour, &minute)
		if err != nil || n != 2 {
			return 0, fmt.Errorf("parse time of day %q: expected HH:MM", value)
		}
	}

	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Minutes возвращает минуты от полуночи
func (t TimeOfDay) Minutes() int { return int(t) }

// Before сравнивает два времени суток
func (t TimeOfDay) Before(other TimeOfDay) bool { return t < other }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("time of day: expected string")
	}
	parsed, err := ParseTimeOfDay(value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
