package handlers

import (
	"net/http"
	"time"

	"github.com/Nikitossik/schedule-planner/internal/service"
	"github.com/labstack/echo/v4"
)

type holidayAPI struct {
	service *service.HolidayService
}

// RegisterHolidayAPI регистрирует маршруты праздничных дней
func RegisterHolidayAPI(g *echo.Group, svc *service.HolidayService) {
	api := holidayAPI{service: svc}

	hg := g.Group("/holidays")
	hg.POST("", api.create)
	hg.GET("", api.list)
	hg.GET("/:id", api.retrieve)
	hg.PATCH("/:id", api.update)
	hg.DELETE("/:id", api.delete)
}

func (api *holidayAPI) create(c echo.Context) error {
	req := new(createHolidayRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	holiday, err := api.service.Create(c.Request().Context(), service.CreateHolidayInput{
		Name:     req.Name,
		IsAnnual: req.IsAnnual,
		Date:     date,
	})
	if err != nil {
		return apiError(err)
	}

	return c.JSON(http.StatusCreated, newHolidayResponse(holiday))
}

func (api *holidayAPI) list(c echo.Context) error {
	from, err := queryDate(c, "date_from")
	if err != nil {
		return err
	}
	to, err := queryDate(c, "date_to")
	if err != nil {
		return err
	}

	holidays, err := api.service.List(c.Request().Context(), from, to)
	if err != nil {
		return apiError(err)
	}

	return c.JSON(http.StatusOK, newHolidayListResponse(holidays))
}

func (api *holidayAPI) retrieve(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	holiday, err := api.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return apiError(err)
	}

	return c.JSON(http.StatusOK, newHolidayResponse(holiday))
}

func (api *holidayAPI) update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	req := new(updateHolidayRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	in := service.UpdateHolidayInput{
		Name:     req.Name,
		IsAnnual: req.IsAnnual,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		in.Date = &date
	}

	holiday, err := api.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return apiError(err)
	}

	return c.JSON(http.StatusOK, newHolidayResponse(holiday))
}

func (api *holidayAPI) delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := api.service.Delete(c.Request().Context(), id); err != nil {
		return apiError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// queryDate читает опциональный параметр-дату из query string
func queryDate(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	date, err := parseDate(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return &date, nil
}
