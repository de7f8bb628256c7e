package service

import (
	"context"
	"time"

	"github.com/Nikitossik/schedule-planner/internal/model"
	"github.com/Nikitossik/schedule-planner/internal/repository"
	"go.uber.org/zap"
)

// HolidayService управляет праздничными днями. Движок генерации читает
// праздники как есть, праздник добавленный параллельно с генерацией в неё
// может не попасть - это допустимо.
type HolidayService struct {
	store  repository.Store
	logger *zap.Logger
}

// NewHolidayService создаёт сервис
func NewHolidayService(store repository.Store, logger *zap.Logger) *HolidayService {
	return &HolidayService{store: store, logger: logger}
}

// CreateHolidayInput данные нового праздника
type CreateHolidayInput struct {
	Name     *string
	IsAnnual bool
	Date     time.Time
}

// UpdateHolidayInput частичное обновление праздника
type UpdateHolidayInput struct {
	Name     *string
	IsAnnual *bool
	Date     *time.Time
}

// Create создаёт праздник
func (s *HolidayService) Create(ctx context.Context, in CreateHolidayInput) (*model.UniversityHoliday, error) {
	if in.Date.IsZero() {
		return nil, validationErr("date", "is required")
	}

	holiday := &model.UniversityHoliday{
		Name:     in.Name,
		IsAnnual: in.IsAnnual,
		Date:     model.DateOnly(in.Date),
	}

	if err := s.store.Holidays().Create(ctx, holiday); err != nil {
		return nil, err
	}

	s.logger.Info("Holiday created",
		zap.Int64("holiday_id", holiday.ID),
		zap.Bool("is_annual", holiday.IsAnnual))

	return holiday, nil
}

// GetByID получает праздник по ID
func (s *HolidayService) GetByID(ctx context.Context, id int64) (*model.UniversityHoliday, error) {
	holiday, err := s.store.Holidays().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if holiday == nil {
		return nil, ErrHolidayNotFound
	}
	return holiday, nil
}

// List возвращает праздники, попадающие в диапазон [from, to]. Обе границы
// опциональны. Ежегодный праздник попадает в диапазон, если его месяц и день
// выпадают на диапазон в любом из годов.
func (s *HolidayService) List(ctx context.Context, from, to *time.Time) ([]*model.UniversityHoliday, error) {
	holidays, err := s.store.Holidays().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if from == nil && to == nil {
		return holidays, nil
	}

	filtered := make([]*model.UniversityHoliday, 0, len(holidays))
	for _, holiday := range holidays {
		if holidayInRange(holiday, from, to) {
			filtered = append(filtered, holiday)
		}
	}

	return filtered, nil
}

// Update применяет частичное обновление праздника
func (s *HolidayService) Update(ctx context.Context, id int64, in UpdateHolidayInput) (*model.UniversityHoliday, error) {
	holiday, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		holiday.Name = in.Name
	}
	if in.IsAnnual != nil {
		holiday.IsAnnual = *in.IsAnnual
	}
	if in.Date != nil {
		if in.Date.IsZero() {
			return nil, validationErr("date", "is required")
		}
		holiday.Date = model.DateOnly(*in.Date)
	}

	if err := s.store.Holidays().Update(ctx, holiday); err != nil {
		return nil, err
	}

	s.logger.Info("Holiday updated", zap.Int64("holiday_id", id))
	return holiday, nil
}

// Delete удаляет праздник. Уже сгенерированные занятия при этом
// не пересчитываются.
func (s *HolidayService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.store.Holidays().Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Holiday deleted", zap.Int64("holiday_id", id))
	return nil
}

// holidayInRange проверяет попадание праздника в диапазон дат
func holidayInRange(holiday *model.UniversityHoliday, from, to *time.Time) bool {
	date := model.DateOnly(holiday.Date)

	if !holiday.IsAnnual {
		if from != nil && date.Before(model.DateOnly(*from)) {
			return false
		}
		if to != nil && date.After(model.DateOnly(*to)) {
			return false
		}
		return true
	}

	switch {
	case from != nil && to != nil:
		lo, hi := model.DateOnly(*from), model.DateOnly(*to)
		for year := lo.Year(); year <= hi.Year(); year++ {
			candidate, ok := annualOccurrence(year, date)
			if ok && !candidate.Before(lo) && !candidate.After(hi) {
				return true
			}
		}
		return false
	case from != nil:
		// Без верхней границы годовой праздник обязательно случится,
		// сравниваем только месяц и день внутри года нижней границы
		lo := model.DateOnly(*from)
		return date.Month() > lo.Month() ||
			(date.Month() == lo.Month() && date.Day() >= lo.Day())
	case to != nil:
		hi := model.DateOnly(*to)
		return date.Month() < hi.Month() ||
			(date.Month() == hi.Month() && date.Day() <= hi.Day())
	default:
		return true
	}
}
