package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeekdaySet(t *testing.T) {
	set, err := NewWeekdaySet([]int{4, 0, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, WeekdaySet{0, 2, 4}, set)
}

func TestNewWeekdaySet_Empty(t *testing.T) {
	_, err := NewWeekdaySet(nil)
	assert.Error(t, err)
}

func TestNewWeekdaySet_OutOfRange(t *testing.T) {
	_, err := NewWeekdaySet([]int{0, 7})
	assert.Error(t, err)

	_, err = NewWeekdaySet([]int{-1})
	assert.Error(t, err)
}

func TestParseWeekdaySet(t *testing.T) {
	set, err := ParseWeekdaySet("[1,3,5]")
	require.NoError(t, err)
	assert.Equal(t, WeekdaySet{1, 3, 5}, set)

	_, err = ParseWeekdaySet("1,3,5")
	assert.Error(t, err)

	_, err = ParseWeekdaySet("[]")
	assert.Error(t, err)
}

func TestWeekdaySet_ContainsDate(t *testing.T) {
	set, err := NewWeekdaySet([]int{0, 6}) // понедельник и воскресенье
	require.NoError(t, err)

	monday := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.September, 7, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, set.ContainsDate(monday))
	assert.True(t, set.ContainsDate(sunday))
	assert.False(t, set.ContainsDate(tuesday))
}

func TestISOWeekday(t *testing.T) {
	// 2025-09-01 - понедельник
	for offset := 0; offset < 7; offset++ {
		d := time.Date(2025, time.September, 1+offset, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, offset, ISOWeekday(d))
	}
}

func TestWeekdaySet_UnmarshalJSON(t *testing.T) {
	var set WeekdaySet
	require.NoError(t, json.Unmarshal([]byte(`[5,1,3]`), &set))
	assert.Equal(t, WeekdaySet{1, 3, 5}, set)

	// Формат старого клиента: массив, завёрнутый в строку
	var encoded WeekdaySet
	require.NoError(t, json.Unmarshal([]byte(`"[1,3,5]"`), &encoded))
	assert.Equal(t, WeekdaySet{1, 3, 5}, encoded)

	var bad WeekdaySet
	assert.Error(t, json.Unmarshal([]byte(`"not a set"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`[7]`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &bad))
}

func TestWeekdaySet_MarshalJSON(t *testing.T) {
	set, err := NewWeekdaySet([]int{2, 0})
	require.NoError(t, err)

	data, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `[0,2]`, string(data))
}
