package controller

import (
	"farmconnect-api/internal/entity"
	"farmconnect-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type offerRoutesHandler struct {
	offerService service.Offer
	validate     *validator.Validate
}

func newOfferRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *offerRoutesHandler {
	h := &offerRoutesHandler{offerService: services.Offer, validate: v}
	outer.GET("/offers", h.GetOffers)
	outer.POST("/offers", h.PostOffer)

	outer.PUT("/offers/:id", h.UpdateOfferStatus)
	outer.DELETE("/offers/:id", h.DeleteOffer)

	outer.POST("/offers/:id/tracking", h.AddTracking)

	return h
}

type getOffersInput struct {
	FarmerId           string `query:"farmerId" validate:"omitempty,uuid"`
	ProviderId         string `query:"providerId" validate:"omitempty,uuid"`
	BuyerId            string `query:"buyerId" validate:"omitempty,uuid"`
	BuyerNeedId        string `query:"buyerNeed" validate:"omitempty,uuid"`
	ServiceBroadcastId string `query:"serviceBroadcast" validate:"omitempty,uuid"`
	Status             string `query:"status" validate:"omitempty,max=50"`
	Limit              int32  `query:"limit" validate:"gte=0,lte=100"`
	Offset             int32  `query:"offset" validate:"gte=0"`
}

func newGetOffersInput() getOffersInput {
	return getOffersInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /offers
func (h *offerRoutesHandler) GetOffers(c echo.Context) error {
	var input = newGetOffersInput()
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

	filter := &entity.OfferFilter{
		FarmerId:           input.FarmerId,
		ProviderId:         input.ProviderId,
		BuyerId:            input.BuyerId,
		BuyerNeedId:        input.BuyerNeedId,
		ServiceBroadcastId: input.ServiceBroadcastId,
		Status:             input.Status,
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	offers, err := h.offerService.GetOffers(c.Request().Context(), filter, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, offers); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
		return e
	}

	return err
}

type postOfferInput struct {
	FarmerId           string `json:"farmer" validate:"required,uuid"`
	ProviderId         string `json:"provider" validate:"omitempty,uuid"`
	BuyerId            string `json:"buyer" validate:"omitempty,uuid"`
	CropId             string `json:"crop" validate:"omitempty,uuid"`
	BuyerNeedId        string `json:"buyerNeed" validate:"omitempty,uuid"`
	ServiceRequestId   string `json:"serviceRequest" validate:"omitempty,uuid"`
	ServiceBroadcastId string `json:"serviceBroadcast" validate:"omitempty,uuid"`
	OfferType          string `json:"offerType" validate:"required,oneof=crop service need_fulfillment"`
	BidAmount          string `json:"bidAmount" validate:"required,max=100"`
	PricePerUnit       string `json:"pricePerUnit" validate:"omitempty,max=100"`
	QuantityRequested  string `json:"quantityRequested" validate:"omitempty,max=100"`
}

// /offers
func (h *offerRoutesHandler) PostOffer(c echo.Context) error {
	var input postOfferInput
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

	model := &entity.CreateOfferInput{
		FarmerId: input.FarmerId, ProviderId: input.ProviderId, BuyerId: input.BuyerId,
		CropId: input.CropId, BuyerNeedId: input.BuyerNeedId,
		ServiceRequestId: input.ServiceRequestId, ServiceBroadcastId: input.ServiceBroadcastId,
		OfferType: input.OfferType, BidAmount: input.BidAmount,
		PricePerUnit: input.PricePerUnit, QuantityRequested: input.QuantityRequested,
	}

	offer, err := h.offerService.CreateOffer(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, offer); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
		return e
	}

	return err
}

type updateOfferStatusInput struct {
	// any string is written through, the marketplace never validated this
	// against the status enum
	Status string `json:"status" validate:"required,max=50"`
}

// /offers/:id
func (h *offerRoutesHandler) UpdateOfferStatus(c echo.Context) error {
	var input updateOfferStatusInput
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

	offer, err := h.offerService.UpdateOfferStatusById(c.Request().Context(), c.Param("id"), input.Status)
	if err == nil {
		if e := c.JSON(http.StatusOK, offer); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrOfferNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no offer with given id"}); e != nil {
			return e
		}
	case service.ErrCropNotFound:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Referenced crop could not be loaded"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /offers/:id
func (h *offerRoutesHandler) DeleteOffer(c echo.Context) error {
	err := h.offerService.DeleteOfferById(c.Request().Context(), c.Param("id"))
	if err == nil {
		if e := c.JSON(http.StatusOK, messageResponse{"Offer deleted"}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrOfferNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no offer with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type addTrackingInput struct {
	Status   string `json:"status" validate:"required,max=50"`
	Location string `json:"location" validate:"omitempty,max=200"`
	Note     string `json:"note" validate:"omitempty,max=500"`
}

// /offers/:id/tracking
func (h *offerRoutesHandler) AddTracking(c echo.Context) error {
	var input addTrackingInput
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

	model := &entity.AddTrackingInput{Status: input.Status, Location: input.Location, Note: input.Note}
	offer, err := h.offerService.AddTrackingUpdate(c.Request().Context(), c.Param("id"), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, offer); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrOfferNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no offer with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
