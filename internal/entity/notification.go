package entity

import "github.com/google/uuid"

// db model
type Notification struct {
	Id          uuid.UUID     `json:"id" db:"id"`
	RecipientId uuid.UUID     `json:"recipientId" db:"recipient_id"`
	Type        string        `json:"type" db:"type"`
	Message     string        `json:"message" db:"message"`
	RelatedId   uuid.NullUUID `json:"relatedId" db:"related_id"`
	CreatedAt   string        `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateNotificationInput struct {
	RecipientId string // given
	Type        string // given, e.g. "bid_accepted"
	Message     string // given
	RelatedId   string // given, optional
}

// controller model
type NotificationOutputModel struct {
	Id          string `json:"id"`
	RecipientId string `json:"recipientId"`
	Type        string `json:"type"`
	Message     string `json:"message"`
	RelatedId   string `json:"relatedId,omitempty"`
	CreatedAt   string `json:"createdAt"`
}
