package handlers

import (
	"fmt"
	"time"

	"github.com/Nikitossik/schedule-planner/internal/model"
	"github.com/Nikitossik/schedule-planner/internal/service"
)

const dateLayout = "2006-01-02"

// parseDate разбирает дату формата YYYY-MM-DD
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: expected YYYY-MM-DD", value)
	}
	return date, nil
}

type createTemplateRequest struct {
	Name                *string          `json:"name" validate:"omitempty,max=200"`
	ScheduleID          int64            `json:"schedule_id" validate:"required"`
	GroupID             int64            `json:"group_id" validate:"required"`
	SubjectAssignmentID int64            `json:"subject_assignment_id" validate:"required"`
	RoomID              *int64           `json:"room_id"`
	LessonType          model.LessonType `json:"lesson_type" validate:"required"`
	IsOnline            bool             `json:"is_online"`
	DaysOfWeek          model.WeekdaySet `json:"days_of_week" validate:"required"`
	StartTime           model.TimeOfDay  `json:"start_time"`
	EndTime             model.TimeOfDay  `json:"end_time"`
	StartDate           string           `json:"start_date" validate:"required"`
	EndDate             *string          `json:"end_date"`
}

func (r *createTemplateRequest) toInput() (service.CreateTemplateInput, error) {
	in := service.CreateTemplateInput{
		Name:                r.Name,
		ScheduleID:          r.ScheduleID,
		GroupID:             r.GroupID,
		SubjectAssignmentID: r.SubjectAssignmentID,
		RoomID:              r.RoomID,
		LessonType:          r.LessonType,
		IsOnline:            r.IsOnline,
		DaysOfWeek:          r.DaysOfWeek,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
	}

	startDate, err := parseDate(r.StartDate)
	if err != nil {
		return service.CreateTemplateInput{}, err
	}
	in.StartDate = startDate

	if r.EndDate != nil {
		endDate, err := parseDate(*r.EndDate)
		if err != nil {
			return service.CreateTemplateInput{}, err
		}
		in.EndDate = &endDate
	}

	return in, nil
}

type updateTemplateRequest struct {
	Name       *string           `json:"name" validate:"omitempty,max=200"`
	RoomID     *int64            `json:"room_id"`
	LessonType *model.LessonType `json:"lesson_type"`
	IsOnline   *bool             `json:"is_online"`
	DaysOfWeek *model.WeekdaySet `json:"days_of_week"`
	StartTime  *model.TimeOfDay  `json:"start_time"`
	EndTime    *model.TimeOfDay  `json:"end_time"`
	StartDate  *string           `json:"start_date"`
	EndDate    *string           `json:"end_date"`
}

func (r *updateTemplateRequest) toInput() (service.UpdateTemplateInput, error) {
	in := service.UpdateTemplateInput{
		Name:       r.Name,
		RoomID:     r.RoomID,
		LessonType: r.LessonType,
		IsOnline:   r.IsOnline,
		DaysOfWeek: r.DaysOfWeek,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}

	if r.StartDate != nil {
		startDate, err := parseDate(*r.StartDate)
		if err != nil {
			return service.UpdateTemplateInput{}, err
		}
		in.StartDate = &startDate
	}

	if r.EndDate != nil {
		endDate, err := parseDate(*r.EndDate)
		if err != nil {
			return service.UpdateTemplateInput{}, err
		}
		in.EndDate = &endDate
	}

	return in, nil
}

type templateResponse struct {
	ID                  int64            `json:"id"`
	Name                *string          `json:"name"`
	ScheduleID          int64            `json:"schedule_id"`
	GroupID             int64            `json:"group_id"`
	SubjectAssignmentID int64            `json:"subject_assignment_id"`
	RoomID              *int64           `json:"room_id"`
	LessonType          model.LessonType `json:"lesson_type"`
	IsOnline            bool             `json:"is_online"`
	DaysOfWeek          model.WeekdaySet `json:"days_of_week"`
	StartTime           string           `json:"start_time"`
	EndTime             string           `json:"end_time"`
	StartDate           string           `json:"start_date"`
	EndDate             *string          `json:"end_date"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

func newTemplateResponse(t *model.RecurringLessonTemplate) templateResponse {
	resp := templateResponse{
		ID:                  t.ID,
		Name:                t.Name,
		ScheduleID:          t.ScheduleID,
		GroupID:             t.GroupID,
		SubjectAssignmentID: t.SubjectAssignmentID,
		RoomID:              t.RoomID,
		LessonType:          t.LessonType,
		IsOnline:            t.IsOnline,
		DaysOfWeek:          t.DaysOfWeek,
		StartTime:           t.StartTime.String(),
		EndTime:             t.EndTime.String(),
		StartDate:           t.StartDate.Format(dateLayout),
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
	if t.EndDate != nil {
		endDate := t.EndDate.Format(dateLayout)
		resp.EndDate = &endDate
	}
	return resp
}

func newTemplateListResponse(templates []*model.RecurringLessonTemplate) []templateResponse {
	out := make([]templateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, newTemplateResponse(t))
	}
	return out
}

type lessonResponse struct {
	ID                  int64            `json:"id"`
	ScheduleID          int64            `json:"schedule_id"`
	GroupID             int64            `json:"group_id"`
	SubjectAssignmentID int64            `json:"subject_assignment_id"`
	RoomID              *int64           `json:"room_id"`
	LessonType          model.LessonType `json:"lesson_type"`
	IsOnline            bool             `json:"is_online"`
	Date                string           `json:"date"`
	StartTime           string           `json:"start_time"`
	EndTime             string           `json:"end_time"`
	RecurringTemplateID int64            `json:"recurring_template_id"`
	GenerationID        string           `json:"generation_id"`
}

func newLessonListResponse(lessons []*model.Lesson) []lessonResponse {
	out := make([]lessonResponse, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, lessonResponse{
			ID:                  l.ID,
			ScheduleID:          l.ScheduleID,
			GroupID:             l.GroupID,
			SubjectAssignmentID: l.SubjectAssignmentID,
			RoomID:              l.RoomID,
			LessonType:          l.LessonType,
			IsOnline:            l.IsOnline,
			Date:                l.Date.Format(dateLayout),
			StartTime:           l.StartTime.String(),
			EndTime:             l.EndTime.String(),
			RecurringTemplateID: l.RecurringTemplateID,
			GenerationID:        l.GenerationID.String(),
		})
	}
	return out
}

type templateStatsResponse struct {
	LessonsCount       int64 `json:"lessons_count"`
	FutureLessonsCount int64 `json:"future_lessons_count"`
}

type createHolidayRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	IsAnnual bool    `json:"is_annual"`
	Date     string  `json:"date" validate:"required"`
}

type updateHolidayRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	IsAnnual *bool   `json:"is_annual"`
	Date     *string `json:"date"`
}

type holidayResponse struct {
	ID       int64   `json:"id"`
	Name     *string `json:"name"`
	IsAnnual bool    `json:"is_annual"`
	Date     string  `json:"date"`
}

func newHolidayResponse(h *model.UniversityHoliday) holidayResponse {
	return holidayResponse{
		ID:       h.ID,
		Name:     h.Name,
		IsAnnual: h.IsAnnual,
		Date:     h.Date.Format(dateLayout),
	}
}

func newHolidayListResponse(holidays []*model.UniversityHoliday) []holidayResponse {
	out := make([]holidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, newHolidayResponse(h))
	}
	return out
}
