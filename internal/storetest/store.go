// Package storetest содержит репозитории в памяти для тестов сервисов.
// Store повторяет контракт pgx-реализации, включая транзакционность InTx
// (откат при ошибке) и каскадное удаление занятий вместе с шаблоном.
package storetest

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Nikitossik/schedule-planner/internal/model"
	"github.com/Nikitossik/schedule-planner/internal/repository"
	"github.com/jackc/pgx/v5"
)

type data struct {
	nextTemplateID int64
	nextLessonID   int64
	nextHolidayID  int64

	templates    map[int64]*model.RecurringLessonTemplate
	lessons      map[int64]*model.Lesson
	holidays     map[int64]*model.UniversityHoliday
	semesterEnds map[int64]time.Time // schedule_id -> конец семестра
}

func newData() *data {
	return &data{
		templates:    make(map[int64]*model.RecurringLessonTemplate),
		lessons:      make(map[int64]*model.Lesson),
		holidays:     make(map[int64]*model.UniversityHoliday),
		semesterEnds: make(map[int64]time.Time),
	}
}

func (d *data) clone() *data {
	cp := newData()
	cp.nextTemplateID = d.nextTemplateID
	cp.nextLessonID = d.nextLessonID
	cp.nextHolidayID = d.nextHolidayID
	for id, t := range d.templates {
		v := *t
		cp.templates[id] = &v
	}
	for id, l := range d.lessons {
		v := *l
		cp.lessons[id] = &v
	}
	for id, h := range d.holidays {
		v := *h
		cp.holidays[id] = &v
	}
	for id, end := range d.semesterEnds {
		cp.semesterEnds[id] = end
	}
	return cp
}

// Store реализация repository.Store в памяти
type Store struct {
	d *data
}

var _ repository.Store = (*Store)(nil)

// New создаёт пустой Store
func New() *Store {
	return &Store{d: newData()}
}

// SetSemesterEnd задаёт дату окончания семестра для расписания
func (s *Store) SetSemesterEnd(scheduleID int64, end time.Time) {
	s.d.semesterEnds[scheduleID] = model.DateOnly(end)
}

func (s *Store) Templates() repository.TemplateStore { return (*templateStore)(s) }
func (s *Store) Lessons() repository.LessonStore     { return (*lessonStore)(s) }
func (s *Store) Holidays() repository.HolidayStore   { return (*holidayStore)(s) }
func (s *Store) Schedules() repository.ScheduleStore { return (*scheduleStore)(s) }

// InTx выполняет fn над копией данных: изменения видны снаружи только
// после успешного завершения fn
func (s *Store) InTx(ctx context.Context, fn func(repository.Store) error) error {
	tx := &Store{d: s.d.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	s.d = tx.d
	return nil
}

type templateStore Store

func (s *templateStore) Create(_ context.Context, template *model.RecurringLessonTemplate) error {
	s.d.nextTemplateID++
	template.ID = s.d.nextTemplateID
	template.CreatedAt = time.Now()
	template.UpdatedAt = template.CreatedAt
	cp := *template
	s.d.templates[template.ID] = &cp
	return nil
}

func (s *templateStore) GetByID(_ context.Context, id int64) (*model.RecurringLessonTemplate, error) {
	template, ok := s.d.templates[id]
	if !ok {
		return nil, nil
	}
	cp := *template
	return &cp, nil
}

func (s *templateStore) GetAll(_ context.Context) ([]*model.RecurringLessonTemplate, error) {
	templates := make([]*model.RecurringLessonTemplate, 0, len(s.d.templates))
	for _, t := range s.d.templates {
		cp := *t
		templates = append(templates, &cp)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].ID < templates[j].ID })
	return templates, nil
}

func (s *templateStore) Update(_ context.Context, template *model.RecurringLessonTemplate) error {
	if _, ok := s.d.templates[template.ID]; !ok {
		return fmt.Errorf("update recurring lesson template: %w", pgx.ErrNoRows)
	}
	template.UpdatedAt = time.Now()
	cp := *template
	s.d.templates[template.ID] = &cp
	return nil
}

func (s *templateStore) Delete(_ context.Context, id int64) error {
	delete(s.d.templates, id)
	// каскад как в схеме БД
	for lessonID, lesson := range s.d.lessons {
		if lesson.RecurringTemplateID == id {
			delete(s.d.lessons, lessonID)
		}
	}
	return nil
}

type lessonStore Store

func (s *lessonStore) CreateBatch(_ context.Context, lessons []*model.Lesson) error {
	for _, lesson := range lessons {
		s.d.nextLessonID++
		lesson.ID = s.d.nextLessonID
		lesson.CreatedAt = time.Now()
		cp := *lesson
		s.d.lessons[lesson.ID] = &cp
	}
	return nil
}

func (s *lessonStore) GetByTemplateID(_ context.Context, templateID int64) ([]*model.Lesson, error) {
	var lessons []*model.Lesson
	for _, lesson := range s.d.lessons {
		if lesson.RecurringTemplateID == templateID {
			cp := *lesson
			lessons = append(lessons, &cp)
		}
	}
	sort.Slice(lessons, func(i, j int) bool {
		if !lessons[i].Date.Equal(lessons[j].Date) {
			return lessons[i].Date.Before(lessons[j].Date)
		}
		return lessons[i].StartTime < lessons[j].StartTime
	})
	return lessons, nil
}

func (s *lessonStore) DeleteByTemplateFrom(_ context.Context, templateID int64, from time.Time) (int64, error) {
	var deleted int64
	for id, lesson := range s.d.lessons {
		if lesson.RecurringTemplateID == templateID && !lesson.Date.Before(from) {
			delete(s.d.lessons, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *lessonStore) CountByTemplate(_ context.Context, templateID int64) (int64, error) {
	var count int64
	for _, lesson := range s.d.lessons {
		if lesson.RecurringTemplateID == templateID {
			count++
		}
	}
	return count, nil
}

func (s *lessonStore) CountByTemplateFrom(_ context.Context, templateID int64, from time.Time) (int64, error) {
	var count int64
	for _, lesson := range s.d.lessons {
		if lesson.RecurringTemplateID == templateID && !lesson.Date.Before(from) {
			count++
		}
	}
	return count, nil
}

type holidayStore Store

func (s *holidayStore) Create(_ context.Context, holiday *model.UniversityHoliday) error {
	s.d.nextHolidayID++
	holiday.ID = s.d.nextHolidayID
	cp := *holiday
	s.d.holidays[holiday.ID] = &cp
	return nil
}

func (s *holidayStore) GetByID(_ context.Context, id int64) (*model.UniversityHoliday, error) {
	holiday, ok := s.d.holidays[id]
	if !ok {
		return nil, nil
	}
	cp := *holiday
	return &cp, nil
}

func (s *holidayStore) GetAll(_ context.Context) ([]*model.UniversityHoliday, error) {
	holidays := make([]*model.UniversityHoliday, 0, len(s.d.holidays))
	for _, h := range s.d.holidays {
		cp := *h
		holidays = append(holidays, &cp)
	}
	sort.Slice(holidays, func(i, j int) bool {
		if !holidays[i].Date.Equal(holidays[j].Date) {
			return holidays[i].Date.Before(holidays[j].Date)
		}
		return holidays[i].ID < holidays[j].ID
	})
	return holidays, nil
}

func (s *holidayStore) Update(_ context.Context, holiday *model.UniversityHoliday) error {
	if _, ok := s.d.holidays[holiday.ID]; !ok {
		return fmt.Errorf("update holiday: %w", pgx.ErrNoRows)
	}
	cp := *holiday
	s.d.holidays[holiday.ID] = &cp
	return nil
}

func (s *holidayStore) Delete(_ context.Context, id int64) error {
	delete(s.d.holidays, id)
	return nil
}

type scheduleStore Store

func (s *scheduleStore) SemesterEndDate(_ context.Context, scheduleID int64) (time.Time, error) {
	end, ok := s.d.semesterEnds[scheduleID]
	if !ok {
		return time.Time{}, fmt.Errorf("get semester end date for schedule %d: %w", scheduleID, pgx.ErrNoRows)
	}
	return end, nil
}
