package echoapi

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/masomo-calendar/core"
	"github.com/trezcool/masomo-calendar/core/calendar"
)

const mimeTextCalendar = "text/calendar; charset=utf-8"

type calendarAPI struct {
	service *calendar.Service
	prodID  string
}

func registerCalendarAPI(app *echo.Echo, conf *core.Config, jwt echo.MiddlewareFunc, svc *calendar.Service) {
	api := calendarAPI{
		service: svc,
		prodID:  "-//" + conf.AppName + "//Calendar//EN",
	}

	app.GET("/events", api.eventsQuery, jwt, callerMiddleware)
	app.GET("/events.ics", api.eventsICal, jwt, callerMiddleware)
}

// Handlers

func (api *calendarAPI) query(ctx echo.Context) ([]calendar.Event, error) {
	q := calendar.EventQuery{
		From: ctx.QueryParam("from"),
		To:   ctx.QueryParam("to"),
	}
	return api.service.Events(ctx.Request().Context(), getContextCaller(ctx), q)
}

func (api *calendarAPI) eventsQuery(ctx echo.Context) error {
	events, err := api.query(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, successResponse{Success: true, Data: events})
}

func (api *calendarAPI) eventsICal(ctx echo.Context) error {
	events, err := api.query(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = calendar.WriteICal(&buf, events, api.prodID, time.Now()); err != nil {
		return err
	}
	return ctx.Blob(http.StatusOK, mimeTextCalendar, buf.Bytes())
}
