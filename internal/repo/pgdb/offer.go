package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"farmconnect-api/internal/common"
	"farmconnect-api/internal/entity"
	"farmconnect-api/internal/repo/repo_errors"
	"farmconnect-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

const offerColumns = "offer.id, offer.farmer_id, offer.provider_id, offer.buyer_id, offer.crop_id, " +
	"offer.buyer_need_id, offer.service_request_id, offer.service_broadcast_id, offer.offer_type, " +
	"offer.bid_amount, offer.price_per_unit, offer.quantity_requested, offer.status, offer.created_at, " +
	"crop.name, crop.quantity, crop.status, " +
	"buyer_need.crop_name, buyer_need.quantity, buyer_need.status"

type OfferRepo struct {
	*postgres.Postgres
}

func NewOfferRepo(pgdb *postgres.Postgres) *OfferRepo {
	return &OfferRepo{pgdb}
}

func nullableUuid(id string) (uuid.NullUUID, error) {
	if id == "" {
		return uuid.NullUUID{}, nil
	}

	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return uuid.NullUUID{}, err
	}

	return uuid.NullUUID{UUID: uuidForm, Valid: true}, nil
}

func (r *OfferRepo) CreateOffer(ctx context.Context, input *entity.CreateOfferInput) (uuid.UUID, error) {
	farmerUuid, err := uuid.Parse(input.FarmerId)
	if err != nil {
		return uuid.Nil, err
	}

	providerUuid, err := nullableUuid(input.ProviderId)
	if err != nil {
		return uuid.Nil, err
	}

	buyerUuid, err := nullableUuid(input.BuyerId)
	if err != nil {
		return uuid.Nil, err
	}

	cropUuid, err := nullableUuid(input.CropId)
	if err != nil {
		return uuid.Nil, err
	}

	buyerNeedUuid, err := nullableUuid(input.BuyerNeedId)
	if err != nil {
		return uuid.Nil, err
	}

	serviceRequestUuid, err := nullableUuid(input.ServiceRequestId)
	if err != nil {
		return uuid.Nil, err
	}

	serviceBroadcastUuid, err := nullableUuid(input.ServiceBroadcastId)
	if err != nil {
		return uuid.Nil, err
	}

	createOfferReq, args, _ := r.SqlBuilder.
		Insert("offer").
		Columns("farmer_id", "provider_id", "buyer_id", "crop_id", "buyer_need_id",
			"service_request_id", "service_broadcast_id", "offer_type",
			"bid_amount", "price_per_unit", "quantity_requested", "status").
		Values(farmerUuid, providerUuid, buyerUuid, cropUuid, buyerNeedUuid,
			serviceRequestUuid, serviceBroadcastUuid, input.OfferType,
			input.BidAmount, input.PricePerUnit, input.QuantityRequested, common.Pending).
		Suffix("RETURNING id").
		ToSql()

	var offerId uuid.UUID
	err = r.Database.QueryRow(createOfferReq, args...).Scan(&offerId)
	if err != nil {
		return uuid.Nil, err
	}

	return offerId, nil
}

func scanOffer(scan func(dest ...any) error) (*entity.Offer, error) {
	var offer entity.Offer
	var createdAt time.Time
	var cropName, cropQuantity, cropStatus sql.NullString
	var needCropName, needQuantity, needStatus sql.NullString

	err := scan(&offer.Id, &offer.FarmerId, &offer.ProviderId, &offer.BuyerId, &offer.CropId,
		&offer.BuyerNeedId, &offer.ServiceRequestId, &offer.ServiceBroadcastId, &offer.OfferType,
		&offer.BidAmount, &offer.PricePerUnit, &offer.QuantityRequested, &offer.Status, &createdAt,
		&cropName, &cropQuantity, &cropStatus,
		&needCropName, &needQuantity, &needStatus)
	if err != nil {
		return nil, err
	}

	offer.CreatedAt = createdAt.Format(time.RFC3339)
	offer.CropName = cropName.String
	offer.CropQuantity = cropQuantity.String
	offer.CropStatus = cropStatus.String
	offer.NeedCropName = needCropName.String
	offer.NeedQuantity = needQuantity.String
	offer.NeedStatus = needStatus.String

	return &offer, nil
}

func (r *OfferRepo) GetOfferById(ctx context.Context, id string) (*entity.Offer, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getOfferReq, args, _ := r.SqlBuilder.
		Select(offerColumns).
		From("offer").
		LeftJoin("crop on crop.id = offer.crop_id").
		LeftJoin("buyer_need on buyer_need.id = offer.buyer_need_id").
		Where("offer.id = ?", uuidForm).
		ToSql()

	row := r.Database.QueryRow(getOfferReq, args...)
	offer, err := scanOffer(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return offer, nil
}

func (r *OfferRepo) GetOffers(ctx context.Context, filter *entity.OfferFilter, pg *entity.PaginationInput) ([]entity.Offer, error) {
	getOffersBuilder := r.SqlBuilder.
		Select(offerColumns).
		From("offer").
		LeftJoin("crop on crop.id = offer.crop_id").
		LeftJoin("buyer_need on buyer_need.id = offer.buyer_need_id")

	if filter.FarmerId != "" {
		uuidForm, err := uuid.Parse(filter.FarmerId)
		if err != nil {
			return nil, err
		}
		getOffersBuilder = getOffersBuilder.Where("offer.farmer_id = ?", uuidForm)
	}

	if filter.ProviderId != "" {
		uuidForm, err := uuid.Parse(filter.ProviderId)
		if err != nil {
			return nil, err
		}
		getOffersBuilder = getOffersBuilder.Where("offer.provider_id = ?", uuidForm)
	}

	if filter.BuyerId != "" {
		uuidForm, err := uuid.Parse(filter.BuyerId)
		if err != nil {
			return nil, err
		}
		getOffersBuilder = getOffersBuilder.Where("offer.buyer_id = ?", uuidForm)
	}

	if filter.BuyerNeedId != "" {
		uuidForm, err := uuid.Parse(filter.BuyerNeedId)
		if err != nil {
			return nil, err
		}
		getOffersBuilder = getOffersBuilder.Where("offer.buyer_need_id = ?", uuidForm)
	}

	if filter.ServiceBroadcastId != "" {
		uuidForm, err := uuid.Parse(filter.ServiceBroadcastId)
		if err != nil {
			return nil, err
		}
		getOffersBuilder = getOffersBuilder.Where("offer.service_broadcast_id = ?", uuidForm)
	}

	if filter.Status != "" {
		getOffersBuilder = getOffersBuilder.Where("offer.status = ?", filter.Status)
	}

	getOffersReq, args, _ := getOffersBuilder.
		OrderBy("offer.created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.Query(getOffersReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]entity.Offer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows.Scan)
		if err != nil {
			return offers, err
		}
		offers = append(offers, *offer)
	}
	if err = rows.Err(); err != nil {
		return offers, err
	}

	return offers, nil
}

func (r *OfferRepo) UpdateOfferStatusById(ctx context.Context, id string, newStatus string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	updateStatusReq, args, _ := r.SqlBuilder.
		Update("offer").
		Set("status", newStatus).
		Where("id = ?", uuidForm).
		ToSql()

	_, err = r.Database.Exec(updateStatusReq, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *OfferRepo) DeleteOfferById(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	deleteOfferReq, args, _ := r.SqlBuilder.
		Delete("offer").
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.Exec(deleteOfferReq, args...)
	if err != nil {
		return err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *OfferRepo) AddTrackingUpdate(ctx context.Context, id string, input *entity.AddTrackingInput) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	addTrackingReq, args, _ := r.SqlBuilder.
		Insert("offer_tracking").
		Columns("offer_id", "status", "location", "note").
		Values(uuidForm, input.Status, input.Location, input.Note).
		ToSql()

	_, err = r.Database.Exec(addTrackingReq, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *OfferRepo) GetTrackingUpdates(ctx context.Context, id string) ([]entity.TrackingUpdate, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getTrackingReq, args, _ := r.SqlBuilder.
		Select("status, location, note, created_at").
		From("offer_tracking").
		Where("offer_id = ?", uuidForm).
		OrderBy("created_at ASC").
		ToSql()

	rows, err := r.Database.Query(getTrackingReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	updates := make([]entity.TrackingUpdate, 0)
	for rows.Next() {
		var update entity.TrackingUpdate
		var createdAt time.Time
		if err := rows.Scan(&update.Status, &update.Location, &update.Note, &createdAt); err != nil {
			return updates, err
		}
		update.Timestamp = createdAt.Format(time.RFC3339)
		updates = append(updates, update)
	}
	if err = rows.Err(); err != nil {
		return updates, err
	}

	return updates, nil
}
