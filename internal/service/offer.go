package service

import (
	"context"
	"errors"
	"farmconnect-api/internal/common"
	"farmconnect-api/internal/entity"
	"farmconnect-api/internal/repo"
	"farmconnect-api/internal/repo/repo_errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type OfferService struct {
	offerRepo        repo.Offer
	cropRepo         repo.Crop
	buyerNeedRepo    repo.BuyerNeed
	notificationRepo repo.Notification
}

func NewOfferService(repos *repo.Repositories) *OfferService {
	return &OfferService{
		offerRepo:        repos.Offer,
		cropRepo:         repos.Crop,
		buyerNeedRepo:    repos.BuyerNeed,
		notificationRepo: repos.Notification,
	}
}

func (s *OfferService) CreateOffer(ctx context.Context, input *entity.CreateOfferInput) (*entity.OfferOutputModel, error) {
	id, err := s.offerRepo.CreateOffer(ctx, input)
	if err != nil {
		return nil, err
	}

	offer, err := s.offerRepo.GetOfferById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapOffer(offer), nil
}

func (s *OfferService) GetOffers(ctx context.Context, filter *entity.OfferFilter, pg *entity.PaginationInput) ([]entity.OfferOutputModel, error) {
	offers, err := s.offerRepo.GetOffers(ctx, filter, pg)
	if err != nil {
		return nil, err
	}

	for i := range offers {
		updates, err := s.offerRepo.GetTrackingUpdates(ctx, offers[i].Id.String())
		if err != nil {
			return nil, err
		}
		offers[i].TrackingUpdates = updates
	}

	return mapOffers(offers), nil
}

// UpdateOfferStatusById writes the requested status and, on acceptance, runs
// the side effects against the crop, buyer need and notification stores. Each
// write is its own statement: a failure partway through leaves the earlier
// writes committed, matching what callers of this marketplace expect. Two
// concurrent accepts against one crop can both read the pre-decrement quantity
// and lose one decrement.
func (s *OfferService) UpdateOfferStatusById(ctx context.Context, offerId string, newStatus string) (*entity.OfferOutputModel, error) {
	offer, err := s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrOfferNotFound
		}

		return nil, err
	}

	if err := s.offerRepo.UpdateOfferStatusById(ctx, offerId, newStatus); err != nil {
		return nil, err
	}

	if newStatus == common.Accepted && offer.CropId.Valid {
		if err := s.deductCropInventory(ctx, offer); err != nil {
			return nil, err
		}
	}

	if newStatus == common.Accepted {
		if offer.OfferType == common.NeedFulfillmentOffer && offer.BuyerNeedId.Valid {
			err := s.buyerNeedRepo.UpdateBuyerNeedStatusById(ctx, offer.BuyerNeedId.UUID.String(), common.NeedFulfilled)
			if err != nil {
				return nil, err
			}
		}

		if err := s.notifyCounterparty(ctx, offer); err != nil {
			return nil, err
		}
	}

	updated, err := s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		return nil, err
	}

	updated.TrackingUpdates, err = s.offerRepo.GetTrackingUpdates(ctx, offerId)
	if err != nil {
		return nil, err
	}

	return mapOffer(updated), nil
}

func (s *OfferService) deductCropInventory(ctx context.Context, offer *entity.Offer) error {
	crop, err := s.cropRepo.GetCropById(ctx, offer.CropId.UUID.String())
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrCropNotFound
		}

		return err
	}

	requested := entity.ParseAmount(offer.QuantityRequested)
	if requested <= 0 {
		logrus.WithFields(logrus.Fields{
			"offerId": offer.Id.String(),
			"cropId":  crop.Id.String(),
		}).Warn("accepted offer carries no usable requested quantity, crop inventory left untouched")

		return nil
	}

	remaining := entity.ParseAmount(crop.Quantity) - requested
	if remaining < 0 {
		remaining = 0
	}

	status := crop.Status
	if remaining == 0 {
		status = common.CropSold
	}

	quantity := entity.FormatQuantity(remaining, entity.ParseUnit(crop.Quantity))

	return s.cropRepo.UpdateCropQuantityById(ctx, crop.Id.String(), quantity, status)
}

// Exactly one notification goes out: to the provider when one is attached,
// otherwise to the farmer. A buyer never receives one, even on a crop bid the
// farmer accepted in the buyer's favor.
func (s *OfferService) notifyCounterparty(ctx context.Context, offer *entity.Offer) error {
	var recipientId string
	switch {
	case offer.ProviderId.Valid:
		recipientId = offer.ProviderId.UUID.String()
	case offer.FarmerId != uuid.Nil:
		recipientId = offer.FarmerId.String()
	default:
		return nil
	}

	_, err := s.notificationRepo.CreateNotification(ctx, &entity.CreateNotificationInput{
		RecipientId: recipientId,
		Type:        common.BidAcceptedNotification,
		Message:     "Your offer has been accepted",
		RelatedId:   offer.Id.String(),
	})

	return err
}

func (s *OfferService) DeleteOfferById(ctx context.Context, offerId string) error {
	err := s.offerRepo.DeleteOfferById(ctx, offerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrOfferNotFound
		}

		return err
	}

	return nil
}

// AddTrackingUpdate appends the entry unconditionally. The offer's own status
// is only overwritten when the tracking status is one of the shipment
// statuses, and without the acceptance side effects firing.
func (s *OfferService) AddTrackingUpdate(ctx context.Context, offerId string, input *entity.AddTrackingInput) (*entity.OfferOutputModel, error) {
	_, err := s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrOfferNotFound
		}

		return nil, err
	}

	if err := s.offerRepo.AddTrackingUpdate(ctx, offerId, input); err != nil {
		return nil, err
	}

	if common.IsTrackedOfferStatus(input.Status) {
		if err := s.offerRepo.UpdateOfferStatusById(ctx, offerId, input.Status); err != nil {
			return nil, err
		}
	}

	updated, err := s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		return nil, err
	}

	updated.TrackingUpdates, err = s.offerRepo.GetTrackingUpdates(ctx, offerId)
	if err != nil {
		return nil, err
	}

	return mapOffer(updated), nil
}
