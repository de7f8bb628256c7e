package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Nikitossik/schedule-planner/internal/model"
	"github.com/Nikitossik/schedule-planner/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TemplateStore операции над шаблонами регулярных занятий
type TemplateStore interface {
	Create(ctx context.Context, template *model.RecurringLessonTemplate) error
	GetByID(ctx context.Context, id int64) (*model.RecurringLessonTemplate, error)
	GetAll(ctx context.Context) ([]*model.RecurringLessonTemplate, error)
	Update(ctx context.Context, template *model.RecurringLessonTemplate) error
	Delete(ctx context.Context, id int64) error
}

// LessonStore операции над сгенерированными занятиями
type LessonStore interface {
	CreateBatch(ctx context.Context, lessons []*model.Lesson) error
	GetByTemplateID(ctx context.Context, templateID int64) ([]*model.Lesson, error)
	DeleteByTemplateFrom(ctx context.Context, templateID int64, from time.Time) (int64, error)
	CountByTemplate(ctx context.Context, templateID int64) (int64, error)
	CountByTemplateFrom(ctx context.Context, templateID int64, from time.Time) (int64, error)
}

// HolidayStore операции над праздничными днями
type HolidayStore interface {
	Create(ctx context.Context, holiday *model.UniversityHoliday) error
	GetByID(ctx context.Context, id int64) (*model.UniversityHoliday, error)
	GetAll(ctx context.Context) ([]*model.UniversityHoliday, error)
	Update(ctx context.Context, holiday *model.UniversityHoliday) error
	Delete(ctx context.Context, id int64) error
}

// ScheduleStore доступ к данным расписаний и семестров
type ScheduleStore interface {
	SemesterEndDate(ctx context.Context, scheduleID int64) (time.Time, error)
}

// Store доступ ко всем репозиториям. InTx выдаёт Store, привязанный
// к одной транзакции: либо все записи внутри fn фиксируются, либо ни одна.
type Store interface {
	Templates() TemplateStore
	Lessons() LessonStore
	Holidays() HolidayStore
	Schedules() ScheduleStore
	InTx(ctx context.Context, fn func(Store) error) error
}

// SQLStore реализация Store поверх pgx-пула
type SQLStore struct {
	pool      *pgxpool.Pool
	templates *TemplateRepository
	lessons   *LessonRepository
	holidays  *HolidayRepository
	schedules *ScheduleRepository
}

// NewStore создаёт Store поверх пула соединений
func NewStore(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{
		pool:      pool,
		templates: NewTemplateRepository(pool),
		lessons:   NewLessonRepository(pool),
		holidays:  NewHolidayRepository(pool),
		schedules: NewScheduleRepository(pool),
	}
}

func (s *SQLStore) Templates() TemplateStore { return s.templates }
func (s *SQLStore) Lessons() LessonStore     { return s.lessons }
func (s *SQLStore) Holidays() HolidayStore   { return s.holidays }
func (s *SQLStore) Schedules() ScheduleStore { return s.schedules }

// InTx выполняет fn в одной транзакции
func (s *SQLStore) InTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(s.withDB(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// withDB возвращает Store, все репозитории которого работают через db
func (s *SQLStore) withDB(db base.DB) *SQLStore {
	return &SQLStore{
		pool:      s.pool,
		templates: s.templates.WithDB(db),
		lessons:   s.lessons.WithDB(db),
		holidays:  s.holidays.WithDB(db),
		schedules: s.schedules.WithDB(db),
	}
}
