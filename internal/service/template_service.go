package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Nikitossik/schedule-planner/internal/model"
	"github.com/Nikitossik/schedule-planner/internal/repository"
	"github.com/Nikitossik/schedule-planner/internal/repository/base"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TemplateService управляет жизненным циклом шаблонов регулярных занятий.
// Создание и правка шаблона синхронно перегенерируют занятия; запись шаблона
// и всех его занятий выполняется одной транзакцией.
type TemplateService struct {
	store  repository.Store
	now    func() time.Time
	logger *zap.Logger
}

// NewTemplateService создаёт сервис. now используется как источник текущей
// даты при отделении прошедших занятий от будущих; nil означает time.Now.
func NewTemplateService(store repository.Store, now func() time.Time, logger *zap.Logger) *TemplateService {
	if now == nil {
		now = time.Now
	}
	return &TemplateService{
		store:  store,
		now:    now,
		logger: logger,
	}
}

// CreateTemplateInput данные нового шаблона
type CreateTemplateInput struct {
	Name                *string
	ScheduleID          int64
	GroupID             int64
	SubjectAssignmentID int64
	RoomID              *int64
	LessonType          model.LessonType
	IsOnline            bool
	DaysOfWeek          model.WeekdaySet
	StartTime           model.TimeOfDay
	EndTime             model.TimeOfDay
	StartDate           time.Time
	EndDate             *time.Time
}

// UpdateTemplateInput частичное обновление шаблона: применяются только
// заполненные поля, остальные не меняются
type UpdateTemplateInput struct {
	Name       *string
	RoomID     *int64
	LessonType *model.LessonType
	IsOnline   *bool
	DaysOfWeek *model.WeekdaySet
	StartTime  *model.TimeOfDay
	EndTime    *model.TimeOfDay
	StartDate  *time.Time
	EndDate    *time.Time
}

// Create создаёт шаблон и генерирует занятия на весь его диапазон
func (s *TemplateService) Create(ctx context.Context, in CreateTemplateInput) (*model.RecurringLessonTemplate, error) {
	template := &model.RecurringLessonTemplate{
		Name:                in.Name,
		ScheduleID:          in.ScheduleID,
		GroupID:             in.GroupID,
		SubjectAssignmentID: in.SubjectAssignmentID,
		RoomID:              in.RoomID,
		LessonType:          in.LessonType,
		IsOnline:            in.IsOnline,
		DaysOfWeek:          in.DaysOfWeek,
		StartTime:           in.StartTime,
		EndTime:             in.EndTime,
		StartDate:           model.DateOnly(in.StartDate),
	}
	if in.EndDate != nil {
		endDate := model.DateOnly(*in.EndDate)
		template.EndDate = &endDate
	}

	if err := validateTemplate(template); err != nil {
		return nil, err
	}

	var generated int
	err := s.store.InTx(ctx, func(st repository.Store) error {
		if err := st.Templates().Create(ctx, template); err != nil {
			return err
		}

		count, err := s.generateLessons(ctx, st, template)
		if err != nil {
			return err
		}
		generated = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Recurring lesson template created",
		zap.Int64("template_id", template.ID),
		zap.Int64("schedule_id", template.ScheduleID),
		zap.Int("lessons_generated", generated))

	return template, nil
}

// Update применяет частичное обновление шаблона и перегенерирует занятия:
// занятия с датой не раньше сегодняшней удаляются и создаются заново по
// новым полям, прошедшие остаются историческими записями. Если start_date
// переносится в прошлое, занятия генерируются и на прошедшие даты -
// поведение унаследовано от исходной системы и сознательно не "чинится"
// обрезкой диапазона.
func (s *TemplateService) Update(ctx context.Context, id int64, in UpdateTemplateInput) (*model.RecurringLessonTemplate, error) {
	var (
		template  *model.RecurringLessonTemplate
		deleted   int64
		generated int
	)

	err := s.store.InTx(ctx, func(st repository.Store) error {
		var err error
		template, err = st.Templates().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if template == nil {
			return ErrTemplateNotFound
		}

		applyPatch(template, in)
		if err := validateTemplate(template); err != nil {
			return err
		}

		if err := st.Templates().Update(ctx, template); err != nil {
			return err
		}

		today := model.DateOnly(s.now())
		deleted, err = st.Lessons().DeleteByTemplateFrom(ctx, id, today)
		if err != nil {
			return err
		}

		generated, err = s.generateLessons(ctx, st, template)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Recurring lesson template updated",
		zap.Int64("template_id", id),
		zap.Int64("future_lessons_deleted", deleted),
		zap.Int("lessons_generated", generated))

	return template, nil
}

// Delete удаляет шаблон вместе с занятиями. Будущие занятия удаляются явно,
// остальные каскадом при удалении строки шаблона: занятие не может пережить
// свой шаблон, каскад в схеме - основной механизм этого инварианта.
func (s *TemplateService) Delete(ctx context.Context, id int64) error {
	err := s.store.InTx(ctx, func(st repository.Store) error {
		template, err := st.Templates().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if template == nil {
			return ErrTemplateNotFound
		}

		today := model.DateOnly(s.now())
		if _, err := st.Lessons().DeleteByTemplateFrom(ctx, id, today); err != nil {
			return err
		}

		return st.Templates().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Recurring lesson template deleted", zap.Int64("template_id", id))
	return nil
}

// GetByID получает шаблон по ID
func (s *TemplateService) GetByID(ctx context.Context, id int64) (*model.RecurringLessonTemplate, error) {
	template, err := s.store.Templates().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}
	return template, nil
}

// GetAll получает все шаблоны
func (s *TemplateService) GetAll(ctx context.Context) ([]*model.RecurringLessonTemplate, error) {
	return s.store.Templates().GetAll(ctx)
}

// LessonsByTemplate получает занятия шаблона в хронологическом порядке
func (s *TemplateService) LessonsByTemplate(ctx context.Context, id int64) ([]*model.Lesson, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.store.Lessons().GetByTemplateID(ctx, id)
}

// LessonsCount возвращает количество сгенерированных занятий шаблона
func (s *TemplateService) LessonsCount(ctx context.Context, id int64) (int64, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return 0, err
	}
	return s.store.Lessons().CountByTemplate(ctx, id)
}

// FutureLessonsCount возвращает количество занятий шаблона с датой
// не раньше сегодняшней
func (s *TemplateService) FutureLessonsCount(ctx context.Context, id int64) (int64, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return 0, err
	}
	return s.store.Lessons().CountByTemplateFrom(ctx, id, model.DateOnly(s.now()))
}

// generateLessons генерирует занятия по шаблону в рамках переданного Store.
// Возвращает количество созданных занятий.
func (s *TemplateService) generateLessons(ctx context.Context, st repository.Store, template *model.RecurringLessonTemplate) (int, error) {
	endDate, err := s.resolveEndDate(ctx, st, template)
	if err != nil {
		return 0, err
	}

	holidays, err := st.Holidays().GetAll(ctx)
	if err != nil {
		return 0, err
	}

	excluded := HolidayDatesInRange(template.StartDate, endDate, holidays)
	dates := LessonDates(template.DaysOfWeek, template.StartDate, endDate, excluded)
	if len(dates) == 0 {
		return 0, nil
	}

	// Все занятия одного запуска помечаются общим идентификатором генерации
	generationID := uuid.New()

	lessons := make([]*model.Lesson, 0, len(dates))
	for _, date := range dates {
		lessons = append(lessons, &model.Lesson{
			ScheduleID:          template.ScheduleID,
			GroupID:             template.GroupID,
			SubjectAssignmentID: template.SubjectAssignmentID,
			RoomID:              template.RoomID,
			LessonType:          template.LessonType,
			IsOnline:            template.IsOnline,
			Date:                date,
			StartTime:           template.StartTime,
			EndTime:             template.EndTime,
			RecurringTemplateID: template.ID,
			GenerationID:        generationID,
		})
	}

	if err := st.Lessons().CreateBatch(ctx, lessons); err != nil {
		return 0, err
	}

	return len(lessons), nil
}

// resolveEndDate возвращает эффективный конец диапазона генерации:
// явный end_date шаблона либо дату окончания семестра расписания
func (s *TemplateService) resolveEndDate(ctx context.Context, st repository.Store, template *model.RecurringLessonTemplate) (time.Time, error) {
	if template.EndDate != nil {
		return model.DateOnly(*template.EndDate), nil
	}

	endDate, err := st.Schedules().SemesterEndDate(ctx, template.ScheduleID)
	if err != nil {
		if base.IsNotFound(err) {
			return time.Time{}, fmt.Errorf("%w: schedule %d has no semester", ErrUnresolvableRange, template.ScheduleID)
		}
		return time.Time{}, err
	}

	return model.DateOnly(endDate), nil
}

// applyPatch переносит заполненные поля частичного обновления в шаблон
func applyPatch(template *model.RecurringLessonTemplate, in UpdateTemplateInput) {
	if in.Name != nil {
		template.Name = in.Name
	}
	if in.RoomID != nil {
		template.RoomID = in.RoomID
	}
	if in.LessonType != nil {
		template.LessonType = *in.LessonType
	}
	if in.IsOnline != nil {
		template.IsOnline = *in.IsOnline
	}
	if in.DaysOfWeek != nil {
		template.DaysOfWeek = *in.DaysOfWeek
	}
	if in.StartTime != nil {
		template.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		template.EndTime = *in.EndTime
	}
	if in.StartDate != nil {
		template.StartDate = model.DateOnly(*in.StartDate)
	}
	if in.EndDate != nil {
		endDate := model.DateOnly(*in.EndDate)
		template.EndDate = &endDate
	}
}

// validateTemplate проверяет инварианты шаблона до записи в базу
func validateTemplate(template *model.RecurringLessonTemplate) error {
	if len(template.DaysOfWeek) == 0 {
		return validationErr("days_of_week", "must not be empty")
	}
	for _, day := range template.DaysOfWeek {
		if day < 0 || day > 6 {
			return validationErr("days_of_week", "contains value out of range 0..6")
		}
	}
	if !template.LessonType.Valid() {
		return validationErr("lesson_type", "is unknown")
	}
	if !template.StartTime.Before(template.EndTime) {
		return validationErr("start_time", "must be before end_time")
	}
	if template.StartDate.IsZero() {
		return validationErr("start_date", "is required")
	}
	if template.EndDate != nil && template.EndDate.Before(template.StartDate) {
		return validationErr("end_date", "must not be before start_date")
	}
	return nil
}
