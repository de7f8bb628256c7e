package repository

import (
	"context"
	"fmt"

	"github.com/Nikitossik/schedule-planner/internal/model"
	"github.com/Nikitossik/schedule-planner/internal/repository/base"
)

// HolidayRepository управляет праздничными днями в базе данных
type HolidayRepository struct {
	db base.DB
}

// NewHolidayRepository создаёт новый репозиторий
func NewHolidayRepository(db base.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// WithDB возвращает копию репозитория, привязанную к другому соединению
func (r *HolidayRepository) WithDB(db base.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// Create создаёт новый праздник
func (r *HolidayRepository) Create(ctx context.Context, holiday *model.UniversityHoliday) error {
	query := `
		INSERT INTO university_holidays (name, is_annual, date)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, holiday.Name, holiday.IsAnnual, holiday.Date).Scan(&holiday.ID)
	if err != nil {
		return fmt.Errorf("create holiday: %w", err)
	}

	return nil
}

// GetByID получает праздник по ID
func (r *HolidayRepository) GetByID(ctx context.Context, id int64) (*model.UniversityHoliday, error) {
	query := `
		SELECT id, name, is_annual, date
		FROM university_holidays
		WHERE id = $1
	`

	var holiday model.UniversityHoliday
	err := r.db.QueryRow(ctx, query, id).Scan(&holiday.ID, &holiday.Name, &holiday.IsAnnual, &holiday.Date)
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get holiday by id: %w", err)
	}

	return &holiday, nil
}

// GetAll получает все праздники
func (r *HolidayRepository) GetAll(ctx context.Context) ([]*model.UniversityHoliday, error) {
	query := `
		SELECT id, name, is_annual, date
		FROM university_holidays
		ORDER BY date, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get holidays: %w", err)
	}
	defer rows.Close()

	var holidays []*model.UniversityHoliday
	for rows.Next() {
		var holiday model.UniversityHoliday
		if err := rows.Scan(&holiday.ID, &holiday.Name, &holiday.IsAnnual, &holiday.Date); err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		holidays = append(holidays, &holiday)
	}

	return holidays, rows.Err()
}

// Update обновляет праздник
func (r *HolidayRepository) Update(ctx context.Context, holiday *model.UniversityHoliday) error {
	query := `
		UPDATE university_holidays
		SET name = $2, is_annual = $3, date = $4
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query, holiday.ID, holiday.Name, holiday.IsAnnual, holiday.Date)
	if err != nil {
		return fmt.Errorf("update holiday: %w", err)
	}

	return nil
}

// Delete удаляет праздник
func (r *HolidayRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM university_holidays WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}

	return nil
}
