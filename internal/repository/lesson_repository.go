package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Nikitossik/schedule-planner/internal/model"
	"github.com/Nikitossik/schedule-planner/internal/repository/base"
)

// LessonRepository управляет сгенерированными занятиями в базе данных
type LessonRepository struct {
	db base.DB
}

// NewLessonRepository создаёт новый репозиторий
func NewLessonRepository(db base.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// WithDB возвращает копию репозитория, привязанную к другому соединению
func (r *LessonRepository) WithDB(db base.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// CreateBatch создаёт занятия одного запуска генерации
func (r *LessonRepository) CreateBatch(ctx context.Context, lessons []*model.Lesson) error {
	query := `
		INSERT INTO lessons
			(schedule_id, group_id, subject_assignment_id, room_id, lesson_type, is_online,
			 date, start_min, end_min, recurring_template_id, generation_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	for _, lesson := range lessons {
		err := r.db.QueryRow(
			ctx,
			query,
			lesson.ScheduleID,
			lesson.GroupID,
			lesson.SubjectAssignmentID,
			lesson.RoomID,
			lesson.LessonType,
			lesson.IsOnline,
			lesson.Date,
			lesson.StartTime.Minutes(),
			lesson.EndTime.Minutes(),
			lesson.RecurringTemplateID,
			lesson.GenerationID,
		).Scan(&lesson.ID, &lesson.CreatedAt)

		if err != nil {
			return fmt.Errorf("create lesson: %w", err)
		}
	}

	return nil
}

// GetByTemplateID получает все занятия шаблона в хронологическом порядке
func (r *LessonRepository) GetByTemplateID(ctx context.Context, templateID int64) ([]*model.Lesson, error) {
	query := `
		SELECT id, schedule_id, group_id, subject_assignment_id, room_id, lesson_type, is_online,
			date, start_min, end_min, recurring_template_id, generation_id, created_at
		FROM lessons
		WHERE recurring_template_id = $1
		ORDER BY date, start_min
	`

	rows, err := r.db.Query(ctx, query, templateID)
	if err != nil {
		return nil, fmt.Errorf("get lessons by template: %w", err)
	}
	defer rows.Close()

	var lessons []*model.Lesson
	for rows.Next() {
		var (
			lesson   model.Lesson
			startMin int
			endMin   int
		)
		err := rows.Scan(
			&lesson.ID,
			&lesson.ScheduleID,
			&lesson.GroupID,
			&lesson.SubjectAssignmentID,
			&lesson.RoomID,
			&lesson.LessonType,
			&lesson.IsOnline,
			&lesson.Date,
			&startMin,
			&endMin,
			&lesson.RecurringTemplateID,
			&lesson.GenerationID,
			&lesson.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lesson.StartTime = model.TimeOfDay(startMin)
		lesson.EndTime = model.TimeOfDay(endMin)
		lessons = append(lessons, &lesson)
	}

	return lessons, rows.Err()
}

// DeleteByTemplateFrom удаляет занятия шаблона с датой не раньше from.
// Возвращает количество удалённых строк.
func (r *LessonRepository) DeleteByTemplateFrom(ctx context.Context, templateID int64, from time.Time) (int64, error) {
	query := `DELETE FROM lessons WHERE recurring_template_id = $1 AND date >= $2`

	tag, err := r.db.Exec(ctx, query, templateID, from)
	if err != nil {
		return 0, fmt.Errorf("delete lessons by template from date: %w", err)
	}

	return tag.RowsAffected(), nil
}

// CountByTemplate возвращает количество занятий шаблона
func (r *LessonRepository) CountByTemplate(ctx context.Context, templateID int64) (int64, error) {
	query := `SELECT count(*) FROM lessons WHERE recurring_template_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, templateID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count lessons by template: %w", err)
	}

	return count, nil
}

// CountByTemplateFrom возвращает количество занятий шаблона с датой не раньше from
func (r *LessonRepository) CountByTemplateFrom(ctx context.Context, templateID int64, from time.Time) (int64, error) {
	query := `SELECT count(*) FROM lessons WHERE recurring_template_id = $1 AND date >= $2`

	var count int64
	if err := r.db.QueryRow(ctx, query, templateID, from).Scan(&count); err != nil {
		return 0, fmt.Errorf("count future lessons by template: %w", err)
	}

	return count, nil
}
