package service

import (
	"testing"
	"time"

	"github.com/Nikitossik/schedule-planner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func namePtr(s string) *string { return &s }

func TestLessonDates_WeeklyPattern(t *testing.T) {
	days, err := model.NewWeekdaySet([]int{0, 2, 4}) // пн, ср, пт
	require.NoError(t, err)

	dates := LessonDates(days, date(2025, time.September, 1), date(2025, time.September, 7), nil)

	assert.Equal(t, []time.Time{
		date(2025, time.September, 1),
		date(2025, time.September, 3),
		date(2025, time.September, 5),
	}, dates)
}

func TestLessonDates_ExcludesHolidays(t *testing.T) {
	days, err := model.NewWeekdaySet([]int{0, 2, 4})
	require.NoError(t, err)

	excluded := map[time.Time]struct{}{
		date(2025, time.September, 3): {},
	}

	dates := LessonDates(days, date(2025, time.September, 1), date(2025, time.September, 7), excluded)

	assert.Equal(t, []time.Time{
		date(2025, time.September, 1),
		date(2025, time.September, 5),
	}, dates)
}

func TestLessonDates_EmptyWhenRangeExhausted(t *testing.T) {
	days, err := model.NewWeekdaySet([]int{0, 1, 2, 3, 4})
	require.NoError(t, err)

	dates := LessonDates(days, date(2025, time.June, 10), date(2025, time.June, 1), nil)

	assert.Empty(t, dates)
}

func TestLessonDates_Deterministic(t *testing.T) {
	days, err := model.NewWeekdaySet([]int{1, 3})
	require.NoError(t, err)

	from, to := date(2025, time.February, 1), date(2025, time.May, 31)
	excluded := map[time.Time]struct{}{
		date(2025, time.March, 4): {},
	}

	first := LessonDates(days, from, to, excluded)
	second := LessonDates(days, from, to, excluded)

	assert.Equal(t, first, second)
}

func TestLessonDates_WeekdayFidelity(t *testing.T) {
	days, err := model.NewWeekdaySet([]int{0, 5, 6})
	require.NoError(t, err)

	excluded := map[time.Time]struct{}{
		date(2025, time.September, 6): {},
		date(2025, time.October, 13): {},
	}

	dates := LessonDates(days, date(2025, time.September, 1), date(2025, time.November, 30), excluded)

	require.NotEmpty(t, dates)
	for i, d := range dates {
		assert.True(t, days.ContainsDate(d), "date %v has unexpected weekday", d)
		assert.NotContains(t, excluded, d)
		if i > 0 {
			assert.True(t, dates[i-1].Before(d), "dates must be strictly ascending")
		}
	}
}

func TestLessonDates_MultiYearRange(t *testing.T) {
	days, err := model.NewWeekdaySet([]int{0}) // только понедельники
	require.NoError(t, err)

	// 2024-01-01 и 2025-12-29 - понедельники, между ними ровно 104 недели
	dates := LessonDates(days, date(2024, time.January, 1), date(2025, time.December, 29), nil)

	require.Len(t, dates, 105)
	assert.Equal(t, date(2024, time.January, 1), dates[0])
	assert.Equal(t, date(2025, time.December, 29), dates[len(dates)-1])
}

func TestHolidayDatesInRange_NonAnnual(t *testing.T) {
	holidays := []*model.UniversityHoliday{
		{ID: 1, Name: namePtr("Inside"), Date: date(2025, time.September, 3)},
		{ID: 2, Name: namePtr("Before"), Date: date(2025, time.August, 31)},
		{ID: 3, Name: namePtr("After"), Date: date(2025, time.September, 8)},
	}

	excluded := HolidayDatesInRange(date(2025, time.September, 1), date(2025, time.September, 7), holidays)

	assert.Equal(t, map[time.Time]struct{}{
		date(2025, time.September, 3): {},
	}, excluded)
}

func TestHolidayDatesInRange_AnnualExpansion(t *testing.T) {
	holidays := []*model.UniversityHoliday{
		{ID: 1, Name: namePtr("May Day"), IsAnnual: true, Date: date(2000, time.May, 1)},
	}

	excluded := HolidayDatesInRange(date(2024, time.April, 1), date(2026, time.June, 1), holidays)

	assert.Equal(t, map[time.Time]struct{}{
		date(2024, time.May, 1): {},
		date(2025, time.May, 1): {},
		date(2026, time.May, 1): {},
	}, excluded)
}

func TestHolidayDatesInRange_AnnualOutsideRangeBounds(t *testing.T) {
	holidays := []*model.UniversityHoliday{
		{ID: 1, IsAnnual: true, Date: date(2000, time.January, 10)},
	}

	// Январские даты 2024 и 2025 годов не попадают в сам диапазон
	excluded := HolidayDatesInRange(date(2024, time.February, 1), date(2024, time.December, 31), holidays)

	assert.Empty(t, excluded)
}

func TestHolidayDatesInRange_LeapDaySkipsNonLeapYears(t *testing.T) {
	holidays := []*model.UniversityHoliday{
		{ID: 1, IsAnnual: true, Date: date(2000, time.February, 29)},
	}

	excluded := HolidayDatesInRange(date(2023, time.January, 1), date(2023, time.December, 31), holidays)
	assert.Empty(t, excluded)

	excluded = HolidayDatesInRange(date(2023, time.January, 1), date(2024, time.December, 31), holidays)
	assert.Equal(t, map[time.Time]struct{}{
		date(2024, time.February, 29): {},
	}, excluded)
}

func TestHolidayDatesInRange_EmptyHolidayList(t *testing.T) {
	excluded := HolidayDatesInRange(date(2025, time.January, 1), date(2025, time.December, 31), nil)
	assert.Empty(t, excluded)
}
