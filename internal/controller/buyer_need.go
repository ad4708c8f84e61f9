package controller

import (
	"farmconnect-api/internal/entity"
	"farmconnect-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type buyerNeedRoutesHandler struct {
	buyerNeedService service.BuyerNeed
	validate         *validator.Validate
}

func newBuyerNeedRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *buyerNeedRoutesHandler {
	h := &buyerNeedRoutesHandler{buyerNeedService: services.BuyerNeed, validate: v}
	outer.GET("/needs", h.GetBuyerNeeds)
	outer.POST("/needs", h.PostBuyerNeed)
	outer.DELETE("/needs/:id", h.DeleteBuyerNeed)

	return h
}

type getBuyerNeedsInput struct {
	BuyerId string `query:"buyerId" validate:"omitempty,uuid"`
	Status  string `query:"status" validate:"omitempty,max=50"`
	Limit   int32  `query:"limit" validate:"gte=0,lte=100"`
	Offset  int32  `query:"offset" validate:"gte=0"`
}

// /needs
func (h *buyerNeedRoutesHandler) GetBuyerNeeds(c echo.Context) error {
	var input = getBuyerNeedsInput{Limit: defaultLimit, Offset: defaultOffset}
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

	filter := &entity.BuyerNeedFilter{BuyerId: input.BuyerId, Status: input.Status}
	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	needs, err := h.buyerNeedService.GetBuyerNeeds(c.Request().Context(), filter, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, needs); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
		return e
	}

	return err
}

type postBuyerNeedInput struct {
	BuyerId  string `json:"buyer" validate:"required,uuid"`
	CropName string `json:"cropName" validate:"required,max=100"`
	Quantity string `json:"quantity" validate:"required,max=100"`
}

// /needs
func (h *buyerNeedRoutesHandler) PostBuyerNeed(c echo.Context) error {
	var input postBuyerNeedInput
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

	model := &entity.CreateBuyerNeedInput{
		BuyerId: input.BuyerId, CropName: input.CropName, Quantity: input.Quantity,
	}

	need, err := h.buyerNeedService.CreateBuyerNeed(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, need); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
		return e
	}

	return err
}

// /needs/:id
func (h *buyerNeedRoutesHandler) DeleteBuyerNeed(c echo.Context) error {
	err := h.buyerNeedService.DeleteBuyerNeedById(c.Request().Context(), c.Param("id"))
	if err == nil {
		if e := c.JSON(http.StatusOK, messageResponse{"Buyer need deleted"}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrBuyerNeedNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no buyer need with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
