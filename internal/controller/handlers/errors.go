package handlers

import (
	"errors"
	"net/http"

	"github.com/Nikitossik/schedule-planner/internal/service"
	"github.com/labstack/echo/v4"
)

// apiError переводит ошибки сервисов в HTTP-статусы. Неизвестные ошибки
// возвращаются как есть и уходят в обработчик 500.
func apiError(err error) error {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, service.ErrTemplateNotFound),
		errors.Is(err, service.ErrHolidayNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUnresolvableRange):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return err
	}
}

// pathID извлекает числовой идентификатор из параметра пути
func pathID(c echo.Context) (int64, error) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
