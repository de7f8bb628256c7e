package repository

import (
	"context"
	"fmt"

	"github.com/Nikitossik/schedule-planner/internal/model"
	"github.com/Nikitossik/schedule-planner/internal/repository/base"
)

// TemplateRepository управляет шаблонами регулярных занятий в базе данных
type TemplateRepository struct {
	db base.DB
}

// NewTemplateRepository создаёт новый репозиторий
func NewTemplateRepository(db base.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// WithDB возвращает копию репозитория, привязанную к другому соединению
// (используется для выполнения запросов внутри транзакции)
func (r *TemplateRepository) WithDB(db base.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

const templateColumns = `id, name, schedule_id, group_id, subject_assignment_id, room_id,
		lesson_type, is_online, days_of_week, start_min, end_min, start_date, end_date,
		created_at, updated_at`

// Create создаёт новый шаблон регулярных занятий
func (r *TemplateRepository) Create(ctx context.Context, template *model.RecurringLessonTemplate) error {
	query := `
		INSERT INTO recurring_lesson_templates
			(name, schedule_id, group_id, subject_assignment_id, room_id,
			 lesson_type, is_online, days_of_week, start_min, end_min, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		template.Name,
		template.ScheduleID,
		template.GroupID,
		template.SubjectAssignmentID,
		template.RoomID,
		template.LessonType,
		template.IsOnline,
		daysToDB(template.DaysOfWeek),
		template.StartTime.Minutes(),
		template.EndTime.Minutes(),
		template.StartDate,
		template.EndDate,
	).Scan(&template.ID, &template.CreatedAt, &template.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create recurring lesson template: %w", err)
	}

	return nil
}

// GetByID получает шаблон по ID
func (r *TemplateRepository) GetByID(ctx context.Context, id int64) (*model.RecurringLessonTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM recurring_lesson_templates
		WHERE id = $1
	`

	template, err := scanTemplate(r.db.QueryRow(ctx, query, id))
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recurring lesson template by id: %w", err)
	}

	return template, nil
}

// GetAll получает все шаблоны
func (r *TemplateRepository) GetAll(ctx context.Context) ([]*model.RecurringLessonTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM recurring_lesson_templates
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get recurring lesson templates: %w", err)
	}
	defer rows.Close()

	var templates []*model.RecurringLessonTemplate
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recurring lesson template: %w", err)
		}
		templates = append(templates, template)
	}

	return templates, rows.Err()
}

// Update обновляет шаблон
func (r *TemplateRepository) Update(ctx context.Context, template *model.RecurringLessonTemplate) error {
	query := `
		UPDATE recurring_lesson_templates
		SET name = $2, room_id = $3, lesson_type = $4, is_online = $5, days_of_week = $6,
			start_min = $7, end_min = $8, start_date = $9, end_date = $10, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		template.ID,
		template.Name,
		template.RoomID,
		template.LessonType,
		template.IsOnline,
		daysToDB(template.DaysOfWeek),
		template.StartTime.Minutes(),
		template.EndTime.Minutes(),
		template.StartDate,
		template.EndDate,
	).Scan(&template.UpdatedAt)

	if err != nil {
		return fmt.Errorf("update recurring lesson template: %w", err)
	}

	return nil
}

// Delete удаляет шаблон. Занятия шаблона удаляются каскадом на уровне БД.
func (r *TemplateRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM recurring_lesson_templates WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete recurring lesson template: %w", err)
	}

	return nil
}

// scanTemplate читает строку шаблона из результата запроса
func scanTemplate(row interface{ Scan(dest ...any) error }) (*model.RecurringLessonTemplate, error) {
	var (
		template model.RecurringLessonTemplate
		days     []int16
		startMin int
		endMin   int
	)

	err := row.Scan(
		&template.ID,
		&template.Name,
		&template.ScheduleID,
		&template.GroupID,
		&template.SubjectAssignmentID,
		&template.RoomID,
		&template.LessonType,
		&template.IsOnline,
		&days,
		&startMin,
		&endMin,
		&template.StartDate,
		&template.EndDate,
		&template.CreatedAt,
		&template.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	template.DaysOfWeek = daysFromDB(days)
	template.StartTime = model.TimeOfDay(startMin)
	template.EndTime = model.TimeOfDay(endMin)
	return &template, nil
}

// daysToDB конвертирует набор дней недели в smallint[] для хранения
func daysToDB(days model.WeekdaySet) []int16 {
	out := make([]int16, len(days))
	for i, d := range days {
		out[i] = int16(d)
	}
	return out
}

func daysFromDB(days []int16) model.WeekdaySet {
	out := make(model.WeekdaySet, len(days))
	for i, d := range days {
		out[i] = int(d)
	}
	return out
}
