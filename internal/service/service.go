package service

import (
	"context"
	"farmconnect-api/internal/entity"
	"farmconnect-api/internal/repo"
)

type Diagnostics interface {
	Ping() error
}

type Offer interface {
	CreateOffer(ctx context.Context, input *entity.CreateOfferInput) (*entity.OfferOutputModel, error)
	GetOffers(ctx context.Context, filter *entity.OfferFilter, pg *entity.PaginationInput) ([]entity.OfferOutputModel, error)

	UpdateOfferStatusById(ctx context.Context, offerId string, newStatus string) (*entity.OfferOutputModel, error)
	DeleteOfferById(ctx context.Context, offerId string) error

	AddTrackingUpdate(ctx context.Context, offerId string, input *entity.AddTrackingInput) (*entity.OfferOutputModel, error)
}

type Crop interface {
	CreateCrop(ctx context.Context, input *entity.CreateCropInput) (*entity.CropOutputModel, error)
	GetCrops(ctx context.Context, filter *entity.CropFilter, pg *entity.PaginationInput) ([]entity.CropOutputModel, error)
	EditCropById(ctx context.Context, cropId string, input *entity.EditCropInput) (*entity.CropOutputModel, error)
	DeleteCropById(ctx context.Context, cropId string) error
}

type BuyerNeed interface {
	CreateBuyerNeed(ctx context.Context, input *entity.CreateBuyerNeedInput) (*entity.BuyerNeedOutputModel, error)
	GetBuyerNeeds(ctx context.Context, filter *entity.BuyerNeedFilter, pg *entity.PaginationInput) ([]entity.BuyerNeedOutputModel, error)
	DeleteBuyerNeedById(ctx context.Context, needId string) error
}

type Notification interface {
	GetNotificationsByRecipientId(ctx context.Context, recipientId string, pg *entity.PaginationInput) ([]entity.NotificationOutputModel, error)
}

type Services struct {
	Diagnostics  Diagnostics
	Offer        Offer
	Crop         Crop
	BuyerNeed    BuyerNeed
	Notification Notification
}

func NewServices(repos *repo.Repositories) *Services {
	return &Services{
		Diagnostics:  NewDiagnosticsService(repos),
		Offer:        NewOfferService(repos),
		Crop:         NewCropService(repos),
		BuyerNeed:    NewBuyerNeedService(repos),
		Notification: NewNotificationService(repos),
	}
}
