package model

import "time"

type LessonType string

const (
	LessonTypeLecture  LessonType = "lecture"
	LessonTypePractice LessonType = "practice"
	LessonTypeLab      LessonType = "lab"
	LessonTypeSeminar  LessonType = "seminar"
)

// Valid проверяет, что тип занятия входит в известный набор
func (t LessonType) Valid() bool {
	switch t {
	case LessonTypeLecture, LessonTypePractice, LessonTypeLab, LessonTypeSeminar:
		return true
	}
	return false
}

// RecurringLessonTemplate шаблон регулярных занятий. По шаблону генерируются
// конкретные записи Lesson на каждую подходящую дату диапазона.
type RecurringLessonTemplate struct {
	ID                  int64      `json:"id"`
	Name                *string    `json:"name"` // указатель - может быть nil
	ScheduleID          int64      `json:"schedule_id"`
	GroupID             int64      `json:"group_id"`
	SubjectAssignmentID int64      `json:"subject_assignment_id"`
	RoomID              *int64     `json:"room_id"` // nil - занятие онлайн
	LessonType          LessonType `json:"lesson_type"`
	IsOnline            bool       `json:"is_online"`
	DaysOfWeek          WeekdaySet `json:"days_of_week"` // 0 = понедельник, 6 = воскресенье
	StartTime           TimeOfDay  `json:"start_time"`
	EndTime             TimeOfDay  `json:"end_time"`
	StartDate           time.Time  `json:"start_date"`
	EndDate             *time.Time `json:"end_date"` // nil - до конца семестра
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
