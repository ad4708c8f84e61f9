package repo

import (
	"context"
	"farmconnect-api/internal/entity"
	"farmconnect-api/internal/repo/pgdb"
	"farmconnect-api/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

type Offer interface {
	CreateOffer(ctx context.Context, input *entity.CreateOfferInput) (uuid.UUID, error)
	GetOfferById(ctx context.Context, id string) (*entity.Offer, error)
	GetOffers(ctx context.Context, filter *entity.OfferFilter, pg *entity.PaginationInput) ([]entity.Offer, error)
	UpdateOfferStatusById(ctx context.Context, id string, newStatus string) error
	DeleteOfferById(ctx context.Context, id string) error
	AddTrackingUpdate(ctx context.Context, id string, input *entity.AddTrackingInput) error
	GetTrackingUpdates(ctx context.Context, id string) ([]entity.TrackingUpdate, error)
}

type Crop interface {
	CreateCrop(ctx context.Context, input *entity.CreateCropInput) (uuid.UUID, error)
	GetCropById(ctx context.Context, id string) (*entity.Crop, error)
	GetCrops(ctx context.Context, filter *entity.CropFilter, pg *entity.PaginationInput) ([]entity.Crop, error)
	EditCropById(ctx context.Context, id string, input *entity.EditCropInput) error
	UpdateCropQuantityById(ctx context.Context, id string, quantity string, status string) error
	DeleteCropById(ctx context.Context, id string) error
}

type BuyerNeed interface {
	CreateBuyerNeed(ctx context.Context, input *entity.CreateBuyerNeedInput) (uuid.UUID, error)
	GetBuyerNeedById(ctx context.Context, id string) (*entity.BuyerNeed, error)
	GetBuyerNeeds(ctx context.Context, filter *entity.BuyerNeedFilter, pg *entity.PaginationInput) ([]entity.BuyerNeed, error)
	UpdateBuyerNeedStatusById(ctx context.Context, id string, newStatus string) error
	DeleteBuyerNeedById(ctx context.Context, id string) error
}

type Notification interface {
	CreateNotification(ctx context.Context, input *entity.CreateNotificationInput) (uuid.UUID, error)
	GetNotificationsByRecipientId(ctx context.Context, recipientId string, pg *entity.PaginationInput) ([]entity.Notification, error)
}

type Repositories struct {
	Diagnostics
	Offer
	Crop
	BuyerNeed
	Notification
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics:  pgdb.NewDiagnosticsRepo(p),
		Offer:        pgdb.NewOfferRepo(p),
		Crop:         pgdb.NewCropRepo(p),
		BuyerNeed:    pgdb.NewBuyerNeedRepo(p),
		Notification: pgdb.NewNotificationRepo(p),
	}
}
