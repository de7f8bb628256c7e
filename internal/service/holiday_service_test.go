package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Nikitossik/schedule-planner/internal/service"
	"github.com/Nikitossik/schedule-planner/internal/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupHolidayService(t *testing.T) *service.HolidayService {
	t.Helper()
	return service.NewHolidayService(storetest.New(), zap.NewNop())
}

func strPtr(s string) *string { return &s }

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func TestHolidayService_CreateAndGet(t *testing.T) {
	svc := setupHolidayService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateHolidayInput{
		Name:     strPtr("День знаний"),
		IsAnnual: true,
		Date:     time.Date(2025, time.September, 1, 15, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	// Дата нормализуется до полуночи UTC
	assert.Equal(t, date(2025, time.September, 1), created.Date)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.IsAnnual)
	require.NotNil(t, got.Name)
	assert.Equal(t, "День знаний", *got.Name)
}

func TestHolidayService_CreateRequiresDate(t *testing.T) {
	svc := setupHolidayService(t)

	_, err := svc.Create(context.Background(), service.CreateHolidayInput{})

	var validationErr *service.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "date", validationErr.Field)
}

func TestHolidayService_GetByIDNotFound(t *testing.T) {
	svc := setupHolidayService(t)

	_, err := svc.GetByID(context.Background(), 777)
	assert.ErrorIs(t, err, service.ErrHolidayNotFound)
}

func TestHolidayService_List(t *testing.T) {
	svc := setupHolidayService(t)
	ctx := context.Background()

	seed := []service.CreateHolidayInput{
		{Name: strPtr("Новый год"), IsAnnual: true, Date: date(2000, time.January, 1)},
		{Name: strPtr("Рождество"), IsAnnual: true, Date: date(2000, time.January, 7)},
		{Name: strPtr("Карантин"), IsAnnual: false, Date: date(2025, time.March, 10)},
	}
	for _, in := range seed {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	t.Run("no bounds returns everything", func(t *testing.T) {
		holidays, err := svc.List(ctx, nil, nil)
		require.NoError(t, err)
		assert.Len(t, holidays, 3)
	})

	t.Run("non-annual bounded by exact date", func(t *testing.T) {
		holidays, err := svc.List(ctx, datePtr(2025, time.March, 1), datePtr(2025, time.March, 31))
		require.NoError(t, err)
		require.Len(t, holidays, 1)
		assert.Equal(t, "Карантин", *holidays[0].Name)
	})

	t.Run("annual matches any year in range", func(t *testing.T) {
		holidays, err := svc.List(ctx, datePtr(2030, time.January, 1), datePtr(2030, time.January, 7))
		require.NoError(t, err)
		assert.Len(t, holidays, 2)
	})

	t.Run("annual crossing year boundary", func(t *testing.T) {
		// Диапазон захватывает смену года: 1 января попадает,
		// хотя месяц нижней границы больше месяца праздника
		holidays, err := svc.List(ctx, datePtr(2024, time.December, 20), datePtr(2025, time.January, 3))
		require.NoError(t, err)
		require.Len(t, holidays, 1)
		assert.Equal(t, "Новый год", *holidays[0].Name)
	})

	t.Run("only lower bound compares month and day", func(t *testing.T) {
		holidays, err := svc.List(ctx, datePtr(2025, time.January, 5), nil)
		require.NoError(t, err)
		// Новый год (1 января) раньше 5 января, Рождество и Карантин позже
		assert.Len(t, holidays, 2)
	})

	t.Run("only upper bound compares month and day", func(t *testing.T) {
		holidays, err := svc.List(ctx, nil, datePtr(2025, time.January, 5))
		require.NoError(t, err)
		// Ежегодный Новый год проходит, Рождество (7 января) и
		// разовый Карантин (март) - нет
		require.Len(t, holidays, 1)
		assert.Equal(t, "Новый год", *holidays[0].Name)
	})
}

func TestHolidayService_Update(t *testing.T) {
	svc := setupHolidayService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateHolidayInput{
		Name: strPtr("Каникулы"),
		Date: date(2025, time.November, 3),
	})
	require.NoError(t, err)

	annual := true
	newDate := date(2025, time.November, 4)
	updated, err := svc.Update(ctx, created.ID, service.UpdateHolidayInput{
		IsAnnual: &annual,
		Date:     &newDate,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsAnnual)
	assert.Equal(t, newDate, updated.Date)
	// Имя не трогали
	require.NotNil(t, updated.Name)
	assert.Equal(t, "Каникулы", *updated.Name)

	_, err = svc.Update(ctx, 777, service.UpdateHolidayInput{IsAnnual: &annual})
	assert.ErrorIs(t, err, service.ErrHolidayNotFound)
}

func TestHolidayService_Delete(t *testing.T) {
	svc := setupHolidayService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateHolidayInput{Date: date(2025, time.May, 1)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrHolidayNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), service.ErrHolidayNotFound)
}

// List не влияет на уже сгенерированные занятия - праздники применяются
// только в момент генерации
func TestHolidayService_NotAppliedRetroactively(t *testing.T) {
	store := storetest.New()
	store.SetSemesterEnd(1, date(2025, time.December, 31))
	holidaySvc := service.NewHolidayService(store, zap.NewNop())
	templateSvc := service.NewTemplateService(store, func() time.Time { return date(2025, time.August, 1) }, zap.NewNop())
	ctx := context.Background()

	template, err := templateSvc.Create(ctx, baseInput(t))
	require.NoError(t, err)

	count, err := templateSvc.LessonsCount(ctx, template.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)

	_, err = holidaySvc.Create(ctx, service.CreateHolidayInput{Date: date(2025, time.September, 3)})
	require.NoError(t, err)

	count, err = templateSvc.LessonsCount(ctx, template.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
