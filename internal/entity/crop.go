package entity

import (
	"github.com/google/uuid"
)

// db model
type Crop struct {
	Id        uuid.UUID `json:"id" db:"id"`
	FarmerId  uuid.UUID `json:"farmerId" db:"farmer_id"`
	Name      string    `json:"name" db:"name"`
	Quantity  string    `json:"quantity" db:"quantity"`
	Price     string    `json:"price" db:"price"`
	Status    string    `json:"status" db:"status"`
	Image     string    `json:"image" db:"image"`
	CreatedAt string    `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateCropInput struct {
	FarmerId string // given
	Name     string // given
	Quantity string // given, free text like "500 kg"
	Price    string // given, free text like "₹25/kg"
	Image    string // given, optional
	Status   string // should be set: "active"
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

type EditCropInput struct {
	Name     string
	Quantity string
	Price    string
	Status   string
	Image    string
}

type CropFilter struct {
	FarmerId string
	Status   string
}

// controller model
type CropOutputModel struct {
	Id        string `json:"id"`
	FarmerId  string `json:"farmerId"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	Price     string `json:"price"`
	Status    string `json:"status"`
	Image     string `json:"image,omitempty"`
	CreatedAt string `json:"createdAt"`
}
