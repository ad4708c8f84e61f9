package common

// offer statuses
const (
	Pending   = "pending"
	Accepted  = "accepted"
	Rejected  = "rejected"
	Shipped   = "shipped"
	Delivered = "delivered"
)

// offer types
const (
	CropOffer            = "crop"
	ServiceOffer         = "service"
	NeedFulfillmentOffer = "need_fulfillment"
)

// crop statuses
const (
	CropActive  = "active"
	CropPending = "pending"
	CropSold    = "sold"
)

// buyer need statuses
const (
	NeedOpen      = "open"
	NeedFulfilled = "fulfilled"
)

// notification types
const (
	BidAcceptedNotification = "bid_accepted"
)

// tracking statuses that also overwrite the offer's own status
var TrackedOfferStatuses = []string{Accepted, Shipped, Delivered}

func IsTrackedOfferStatus(status string) bool {
	for _, s := range TrackedOfferStatuses {
		if s == status {
			return true
		}
	}

	return false
}
