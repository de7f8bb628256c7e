package model

import (
	"time"

	"github.com/google/uuid"
)

// Lesson конкретное занятие, сгенерированное по шаблону на одну дату.
// Поля занятия копируются из шаблона в момент генерации: прошедшие занятия
// остаются историческими записями и при правках шаблона не меняются.
type Lesson struct {
	ID                  int64      `json:"id"`
	ScheduleID          int64      `json:"schedule_id"`
	GroupID             int64      `json:"group_id"`
	SubjectAssignmentID int64      `json:"subject_assignment_id"`
	RoomID              *int64     `json:"room_id"` // nil - занятие онлайн
	LessonType          LessonType `json:"lesson_type"`
	IsOnline            bool       `json:"is_online"`
	Date                time.Time  `json:"date"`
	StartTime           TimeOfDay  `json:"start_time"`
	EndTime             TimeOfDay  `json:"end_time"`
	RecurringTemplateID int64      `json:"recurring_template_id"`
	GenerationID        uuid.UUID  `json:"generation_id"` // идентификатор запуска генерации
	CreatedAt           time.Time  `json:"created_at"`
}
