package service

import (
	"farmconnect-api/internal/entity"

	"github.com/google/uuid"
)

func nullableIdString(id uuid.NullUUID) string {
	if !id.Valid {
		return ""
	}

	return id.UUID.String()
}

func mapOffer(o *entity.Offer) *entity.OfferOutputModel {
	out := &entity.OfferOutputModel{
		Id:                 o.Id.String(),
		FarmerId:           o.FarmerId.String(),
		ProviderId:         nullableIdString(o.ProviderId),
		BuyerId:            nullableIdString(o.BuyerId),
		ServiceRequestId:   nullableIdString(o.ServiceRequestId),
		ServiceBroadcastId: nullableIdString(o.ServiceBroadcastId),
		OfferType:          o.OfferType,
		BidAmount:          o.BidAmount,
		PricePerUnit:       o.PricePerUnit,
		QuantityRequested:  o.QuantityRequested,
		Status:             o.Status,
		TrackingUpdates:    o.TrackingUpdates,
		CreatedAt:          o.CreatedAt,
	}

	if out.TrackingUpdates == nil {
		out.TrackingUpdates = make([]entity.TrackingUpdate, 0)
	}

	if o.CropId.Valid {
		out.Crop = &entity.CropSummaryModel{
			Id:       o.CropId.UUID.String(),
			Name:     o.CropName,
			Quantity: o.CropQuantity,
			Status:   o.CropStatus,
		}
	}

	if o.BuyerNeedId.Valid {
		out.BuyerNeed = &entity.BuyerNeedSummaryModel{
			Id:       o.BuyerNeedId.UUID.String(),
			CropName: o.NeedCropName,
			Quantity: o.NeedQuantity,
			Status:   o.NeedStatus,
		}
	}

	return out
}

func mapOffers(offers []entity.Offer) []entity.OfferOutputModel {
	s := make([]entity.OfferOutputModel, 0)
	for _, offer := range offers {
		s = append(s, *mapOffer(&offer))
	}

	return s
}

func mapCrop(c *entity.Crop) *entity.CropOutputModel {
	return &entity.CropOutputModel{
		Id:        c.Id.String(),
		FarmerId:  c.FarmerId.String(),
		Name:      c.Name,
		Quantity:  c.Quantity,
		Price:     c.Price,
		Status:    c.Status,
		Image:     c.Image,
		CreatedAt: c.CreatedAt,
	}
}

func mapCrops(crops []entity.Crop) []entity.CropOutputModel {
	s := make([]entity.CropOutputModel, 0)
	for _, crop := range crops {
		s = append(s, *mapCrop(&crop))
	}

	return s
}

func mapBuyerNeed(n *entity.BuyerNeed) *entity.BuyerNeedOutputModel {
	return &entity.BuyerNeedOutputModel{
		Id:        n.Id.String(),
		BuyerId:   n.BuyerId.String(),
		CropName:  n.CropName,
		Quantity:  n.Quantity,
		Status:    n.Status,
		CreatedAt: n.CreatedAt,
	}
}

func mapBuyerNeeds(needs []entity.BuyerNeed) []entity.BuyerNeedOutputModel {
	s := make([]entity.BuyerNeedOutputModel, 0)
	for _, need := range needs {
		s = append(s, *mapBuyerNeed(&need))
	}

	return s
}

func mapNotification(n *entity.Notification) *entity.NotificationOutputModel {
	return &entity.NotificationOutputModel{
		Id:          n.Id.String(),
		RecipientId: n.RecipientId.String(),
		Type:        n.Type,
		Message:     n.Message,
		RelatedId:   nullableIdString(n.RelatedId),
		CreatedAt:   n.CreatedAt,
	}
}

func mapNotifications(notifications []entity.Notification) []entity.NotificationOutputModel {
	s := make([]entity.NotificationOutputModel, 0)
	for _, notification := range notifications {
		s = append(s, *mapNotification(&notification))
	}

	return s
}
