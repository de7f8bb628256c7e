package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Nikitossik/schedule-planner/internal/repository/base"
)

// ScheduleRepository читает данные расписаний и семестров.
// Сами расписания создаются административным контуром, здесь они нужны
// только чтобы вычислить конец диапазона генерации.
type ScheduleRepository struct {
	db base.DB
}

// NewScheduleRepository создаёт новый репозиторий
func NewScheduleRepository(db base.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// WithDB возвращает копию репозитория, привязанную к другому соединению
func (r *ScheduleRepository) WithDB(db base.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// SemesterEndDate возвращает дату окончания семестра, к которому привязано расписание
func (r *ScheduleRepository) SemesterEndDate(ctx context.Context, scheduleID int64) (time.Time, error) {
	query := `
		SELECT sem.end_date
		FROM schedules s
		JOIN semesters sem ON sem.id = s.semester_id
		WHERE s.id = $1
	`

	var endDate time.Time
	if err := r.db.QueryRow(ctx, query, scheduleID).Scan(&endDate); err != nil {
		return time.Time{}, fmt.Errorf("get semester end date for schedule %d: %w", scheduleID, err)
	}

	return endDate, nil
}
