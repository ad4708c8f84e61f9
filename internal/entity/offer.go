package entity

import (
	"github.com/google/uuid"
)

// db model
type Offer struct {
	Id                 uuid.UUID     `json:"id" db:"id"`
	FarmerId           uuid.UUID     `json:"farmerId" db:"farmer_id"`
	ProviderId         uuid.NullUUID `json:"providerId" db:"provider_id"`
	BuyerId            uuid.NullUUID `json:"buyerId" db:"buyer_id"`
	CropId             uuid.NullUUID `json:"cropId" db:"crop_id"`
	BuyerNeedId        uuid.NullUUID `json:"buyerNeedId" db:"buyer_need_id"`
	ServiceRequestId   uuid.NullUUID `json:"serviceRequestId" db:"service_request_id"`
	ServiceBroadcastId uuid.NullUUID `json:"serviceBroadcastId" db:"service_broadcast_id"`
	OfferType          string        `json:"offerType" db:"offer_type"`
	BidAmount          string        `json:"bidAmount" db:"bid_amount"`
	PricePerUnit       string        `json:"pricePerUnit" db:"price_per_unit"`
	QuantityRequested  string        `json:"quantityRequested" db:"quantity_requested"`
	Status             string        `json:"status" db:"status"`
	CreatedAt          string        `json:"createdAt" db:"created_at"`

	// joined from crop when crop_id is set
	CropName     string `json:"-" db:"crop_name"`
	CropQuantity string `json:"-" db:"crop_quantity"`
	CropStatus   string `json:"-" db:"crop_status"`

	// joined from buyer_need when buyer_need_id is set
	NeedCropName string `json:"-" db:"need_crop_name"`
	NeedQuantity string `json:"-" db:"need_quantity"`
	NeedStatus   string `json:"-" db:"need_status"`

	TrackingUpdates []TrackingUpdate `json:"trackingUpdates" db:"-"`
}

type TrackingUpdate struct {
	Status    string `json:"status" db:"status"`
	Location  string `json:"location" db:"location"`
	Note      string `json:"note" db:"note"`
	Timestamp string `json:"timestamp" db:"created_at"`
}

// service + repo input model
type CreateOfferInput struct {
	FarmerId           string // given
	ProviderId         string // given, optional
	BuyerId            string // given, optional
	CropId             string // given, optional
	BuyerNeedId        string // given, optional
	ServiceRequestId   string // given, optional
	ServiceBroadcastId string // given, optional
	OfferType          string // given
	BidAmount          string // given
	PricePerUnit       string // given, optional
	QuantityRequested  string // given, optional
	Status             string // should be set: "pending"
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// service + repo filter model
type OfferFilter struct {
	FarmerId           string
	ProviderId         string
	BuyerId            string
	BuyerNeedId        string
	ServiceBroadcastId string
	Status             string
}

type AddTrackingInput struct {
	Status   string
	Location string
	Note     string
}

// controller model
type OfferOutputModel struct {
	Id                 string                 `json:"id"`
	FarmerId           string                 `json:"farmerId"`
	ProviderId         string                 `json:"providerId,omitempty"`
	BuyerId            string                 `json:"buyerId,omitempty"`
	ServiceRequestId   string                 `json:"serviceRequestId,omitempty"`
	ServiceBroadcastId string                 `json:"serviceBroadcastId,omitempty"`
	OfferType          string                 `json:"offerType"`
	BidAmount          string                 `json:"bidAmount"`
	PricePerUnit       string                 `json:"pricePerUnit,omitempty"`
	QuantityRequested  string                 `json:"quantityRequested,omitempty"`
	Status             string                 `json:"status"`
	Crop               *CropSummaryModel      `json:"crop,omitempty"`
	BuyerNeed          *BuyerNeedSummaryModel `json:"buyerNeed,omitempty"`
	TrackingUpdates    []TrackingUpdate       `json:"trackingUpdates"`
	CreatedAt          string                 `json:"createdAt"`
}

// populated crop fields carried on an offer response
type CropSummaryModel struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Status   string `json:"status"`
}

// populated buyer need fields carried on an offer response
type BuyerNeedSummaryModel struct {
	Id       string `json:"id"`
	CropName string `json:"cropName"`
	Quantity string `json:"quantity"`
	Status   string `json:"status"`
}
