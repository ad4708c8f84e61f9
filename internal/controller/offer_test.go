package controller

import (
	"context"
	"farmconnect-api/internal/entity"
	"farmconnect-api/internal/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type stubOfferService struct {
	out       *entity.OfferOutputModel
	err       error
	gotStatus string
}

func (s *stubOfferService) CreateOffer(ctx context.Context, input *entity.CreateOfferInput) (*entity.OfferOutputModel, error) {
	return s.out, s.err
}

func (s *stubOfferService) GetOffers(ctx context.Context, filter *entity.OfferFilter, pg *entity.PaginationInput) ([]entity.OfferOutputModel, error) {
	return nil, s.err
}

func (s *stubOfferService) UpdateOfferStatusById(ctx context.Context, offerId string, newStatus string) (*entity.OfferOutputModel, error) {
	s.gotStatus = newStatus

	return s.out, s.err
}

func (s *stubOfferService) DeleteOfferById(ctx context.Context, offerId string) error {
	return s.err
}

func (s *stubOfferService) AddTrackingUpdate(ctx context.Context, offerId string, input *entity.AddTrackingInput) (*entity.OfferOutputModel, error) {
	return s.out, s.err
}

func newOfferTestContext(method string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9b2a2a34-28a5-4e23-a7a6-0ab4353b2fc7")

	return c, rec
}

func newOfferHandler(stub *stubOfferService) *offerRoutesHandler {
	return &offerRoutesHandler{
		offerService: stub,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

func TestUpdateOfferStatusPassesAnyStatusThrough(t *testing.T) {
	stub := &stubOfferService{out: &entity.OfferOutputModel{Status: "whatever"}}
	h := newOfferHandler(stub)

	c, rec := newOfferTestContext(http.MethodPut, `{"status":"whatever"}`)
	if err := h.UpdateOfferStatus(c); err != nil {
		t.Fatalf("UpdateOfferStatus() error = %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("status code = %d, want %d", rec.Code, http.StatusOK)
	}
	if stub.gotStatus != "whatever" {
		t.Errorf("status passed to service = %q, want %q", stub.gotStatus, "whatever")
	}
}

func TestUpdateOfferStatusRequiresStatusField(t *testing.T) {
	stub := &stubOfferService{}
	h := newOfferHandler(stub)

	c, rec := newOfferTestContext(http.MethodPut, `{}`)
	_ = h.UpdateOfferStatus(c)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if stub.gotStatus != "" {
		t.Errorf("service called with status %q, want no call", stub.gotStatus)
	}
}

func TestUpdateOfferStatusMapsNotFound(t *testing.T) {
	stub := &stubOfferService{err: service.ErrOfferNotFound}
	h := newOfferHandler(stub)

	c, rec := newOfferTestContext(http.MethodPut, `{"status":"accepted"}`)
	_ = h.UpdateOfferStatus(c)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status code = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestUpdateOfferStatusMapsMissingCrop(t *testing.T) {
	stub := &stubOfferService{err: service.ErrCropNotFound}
	h := newOfferHandler(stub)

	c, rec := newOfferTestContext(http.MethodPut, `{"status":"accepted"}`)
	_ = h.UpdateOfferStatus(c)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAddTrackingRequiresStatus(t *testing.T) {
	stub := &stubOfferService{}
	h := newOfferHandler(stub)

	c, rec := newOfferTestContext(http.MethodPost, `{"location":"Pune"}`)
	_ = h.AddTracking(c)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestPostOfferRejectsUnknownOfferType(t *testing.T) {
	stub := &stubOfferService{}
	h := newOfferHandler(stub)

	body := `{"farmer":"9b2a2a34-28a5-4e23-a7a6-0ab4353b2fc7","offerType":"barter","bidAmount":"₹5,000"}`
	c, rec := newOfferTestContext(http.MethodPost, body)
	_ = h.PostOffer(c)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
