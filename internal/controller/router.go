package controller

import (
	"farmconnect-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newOfferRoutesHandler(api, services, validate)
	newCropRoutesHandler(api, services, validate)
	newBuyerNeedRoutesHandler(api, services, validate)
	newNotificationRoutesHandler(api, services, validate)
}
