package routes

import (
	"net/http"
	"strconv"

	"moim/cmd/internal/service"
	"moim/cmd/internal/utils"
	"moim/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type EventService interface {
	GetEvents(userID int) ([]*service.EventResponse, apierror.ErrorResponse)
	CreateSingleEvent(userID int, req *service.CreateEventRequest) (*service.EventResponse, apierror.ErrorResponse)
	CreateEvents(userID int, req *service.CreateEventRequest) ([]*service.EventResponse, apierror.ErrorResponse)
	UpdateEvent(userID, eventID int, req *service.UpdateEventRequest) (*service.UpdateEventResponse, apierror.ErrorResponse)
	DeleteEvent(userID, eventID int, scope string) apierror.ErrorResponse
}

type DefaultEventRoute struct {
	EventService EventService
}

func NewEventDefault(eventService EventService) *DefaultEventRoute {
	return &DefaultEventRoute{EventService: eventService}
}

func (e *DefaultEventRoute) GetEvents(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	events, apierr := e.EventService.GetEvents(data.UserID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"events": events}
	return c.JSON(http.StatusOK, &resp)
}

// CreateEvent creates a whole series when the body carries a recurring rule,
// a single standalone event otherwise.
func (e *DefaultEventRoute) CreateEvent(c echo.Context) error {
	var req service.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	if req.Recurring != nil {
		events, apierr := e.EventService.CreateEvents(data.UserID, &req)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}
		resp := echo.Map{"events": events}
		return c.JSON(http.StatusCreated, &resp)
	}

	event, apierr := e.EventService.CreateSingleEvent(data.UserID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, event)
}

func (e *DefaultEventRoute) UpdateEvent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(400, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	var req service.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	resp, apierr := e.EventService.UpdateEvent(data.UserID, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (e *DefaultEventRoute) DeleteEvent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(400, "ID is not a number")
		return c.JSON(errResp.Code(), errResp)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	scope := c.QueryParam("scope")
	if apierr := e.EventService.DeleteEvent(data.UserID, id, scope); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
