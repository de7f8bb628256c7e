package handlers

import (
	"net/http"
	"strconv"

	"github.com/Nikitossik/schedule-planner/internal/service"
	"github.com/labstack/echo/v4"
)

type templateAPI struct {
	service *service.TemplateService
}

// RegisterTemplateAPI регистрирует маршруты шаблонов регулярных занятий
func RegisterTemplateAPI(g *echo.Group, svc *service.TemplateService) {
	api := templateAPI{service: svc}

	tg := g.Group("/recurring-templates")
	tg.POST("", api.create)
	tg.GET("", api.list)
	tg.GET("/:id", api.retrieve)
	tg.PATCH("/:id", api.update)
	tg.DELETE("/:id", api.delete)
	tg.GET("/:id/lessons", api.lessons)
	tg.GET("/:id/stats", api.stats)
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func (api *templateAPI) create(c echo.Context) error {
	req := new(createTemplateRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	in, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	template, err := api.service.Create(c.Request().Context(), in)
	if err != nil {
		return apiError(err)
	}

	return c.JSON(http.StatusCreated, newTemplateResponse(template))
}

func (api *templateAPI) list(c echo.Context) error {
	templates, err := api.service.GetAll(c.Request().Context())
	if err != nil {
		return apiError(err)
	}
	return c.JSON(http.StatusOK, newTemplateListResponse(templates))
}

func (api *templateAPI) retrieve(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	template, err := api.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return apiError(err)
	}

	return c.JSON(http.StatusOK, newTemplateResponse(template))
}

func (api *templateAPI) update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	req := new(updateTemplateRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	in, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	template, err := api.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return apiError(err)
	}

	return c.JSON(http.StatusOK, newTemplateResponse(template))
}

func (api *templateAPI) delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := api.service.Delete(c.Request().Context(), id); err != nil {
		return apiError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (api *templateAPI) lessons(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	lessons, err := api.service.LessonsByTemplate(c.Request().Context(), id)
	if err != nil {
		return apiError(err)
	}

	return c.JSON(http.StatusOK, newLessonListResponse(lessons))
}

func (api *templateAPI) stats(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	total, err := api.service.LessonsCount(ctx, id)
	if err != nil {
		return apiError(err)
	}

	future, err := api.service.FutureLessonsCount(ctx, id)
	if err != nil {
		return apiError(err)
	}

	return c.JSON(http.StatusOK, templateStatsResponse{
		LessonsCount:       total,
		FutureLessonsCount: future,
	})
}
