package entity

import "github.com/google/uuid"

// db model
type BuyerNeed struct {
	Id        uuid.UUID `json:"id" db:"id"`
	BuyerId   uuid.UUID `json:"buyerId" db:"buyer_id"`
	CropName  string    `json:"cropName" db:"crop_name"`
	Quantity  string    `json:"quantity" db:"quantity"`
	Status    string    `json:"status" db:"status"`
	CreatedAt string    `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateBuyerNeedInput struct {
	BuyerId  string // given
	CropName string // given
	Quantity string // given, free text
	Status   string // should be set: "open"
}

type BuyerNeedFilter struct {
	BuyerId string
	Status  string
}

// controller model
type BuyerNeedOutputModel struct {
	Id        string `json:"id"`
	BuyerId   string `json:"buyerId"`
	CropName  string `json:"cropName"`
	Quantity  string `json:"quantity"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}
