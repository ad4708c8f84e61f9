package controller

import (
	"farmconnect-api/internal/entity"
	"farmconnect-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type notificationRoutesHandler struct {
	notificationService service.Notification
	validate            *validator.Validate
}

func newNotificationRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *notificationRoutesHandler {
	h := &notificationRoutesHandler{notificationService: services.Notification, validate: v}
	outer.GET("/notifications", h.GetNotifications)

	return h
}

type getNotificationsInput struct {
	RecipientId string `query:"recipientId" validate:"required,uuid"`
	Limit       int32  `query:"limit" validate:"gte=0,lte=100"`
	Offset      int32  `query:"offset" validate:"gte=0"`
}

// /notifications
func (h *notificationRoutesHandler) GetNotifications(c echo.Context) error {
	var input = getNotificationsInput{Limit: defaultLimit, Offset: defaultOffset}
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	notifications, err := h.notificationService.GetNotificationsByRecipientId(c.Request().Context(), input.RecipientId, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, notifications); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
		return e
	}

	return err
}
