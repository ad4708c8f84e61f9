package controller

import (
	"farmconnect-api/internal/entity"
	"farmconnect-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type cropRoutesHandler struct {
	cropService service.Crop
	validate    *validator.Validate
}

func newCropRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *cropRoutesHandler {
	h := &cropRoutesHandler{cropService: services.Crop, validate: v}
	outer.GET("/crops", h.GetCrops)
	outer.POST("/crops", h.PostCrop)
	outer.PUT("/crops/:id", h.EditCrop)
	outer.DELETE("/crops/:id", h.DeleteCrop)

	return h
}

type getCropsInput struct {
	FarmerId string `query:"farmerId" validate:"omitempty,uuid"`
	Status   string `query:"status" validate:"omitempty,oneof=active pending sold"`
	Limit    int32  `query:"limit" validate:"gte=0,lte=100"`
	Offset   int32  `query:"offset" validate:"gte=0"`
}

// /crops
func (h *cropRoutesHandler) GetCrops(c echo.Context) error {
	var input = getCropsInput{Limit: defaultLimit, Offset: defaultOffset}
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

	filter := &entity.CropFilter{FarmerId: input.FarmerId, Status: input.Status}
	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	crops, err := h.cropService.GetCrops(c.Request().Context(), filter, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, crops); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
		return e
	}

	return err
}

type postCropInput struct {
	FarmerId string `json:"farmer" validate:"required,uuid"`
	Name     string `json:"name" validate:"required,max=100"`
	Quantity string `json:"quantity" validate:"required,max=100"`
	Price    string `json:"price" validate:"required,max=100"`
	Image    string `json:"image" validate:"omitempty,max=500"`
}

// /crops
func (h *cropRoutesHandler) PostCrop(c echo.Context) error {
	var input postCropInput
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

	model := &entity.CreateCropInput{
		FarmerId: input.FarmerId, Name: input.Name, Quantity: input.Quantity,
		Price: input.Price, Image: input.Image,
	}

	crop, err := h.cropService.CreateCrop(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, crop); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
		return e
	}

	return err
}

type editCropInput struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Quantity string `json:"quantity" validate:"omitempty,max=100"`
	Price    string `json:"price" validate:"omitempty,max=100"`
	Status   string `json:"status" validate:"omitempty,oneof=active pending sold"`
	Image    string `json:"image" validate:"omitempty,max=500"`
}

// /crops/:id
func (h *cropRoutesHandler) EditCrop(c echo.Context) error {
	var input editCropInput
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

	model := &entity.EditCropInput{
		Name: input.Name, Quantity: input.Quantity, Price: input.Price,
		Status: input.Status, Image: input.Image,
	}

	crop, err := h.cropService.EditCropById(c.Request().Context(), c.Param("id"), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, crop); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrCropNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no crop with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /crops/:id
func (h *cropRoutesHandler) DeleteCrop(c echo.Context) error {
	err := h.cropService.DeleteCropById(c.Request().Context(), c.Param("id"))
	if err == nil {
		if e := c.JSON(http.StatusOK, messageResponse{"Crop deleted"}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrCropNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no crop with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
