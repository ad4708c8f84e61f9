package service

import (
	"context"
	"errors"
	"farmconnect-api/internal/common"
	"farmconnect-api/internal/entity"
	"farmconnect-api/internal/repo"
	"farmconnect-api/internal/repo/repo_errors"
	"testing"

	"github.com/google/uuid"
)

type fakeOfferRepo struct {
	offers       map[string]entity.Offer
	statusWrites []string
	tracking     map[string][]entity.TrackingUpdate
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{
		offers:   make(map[string]entity.Offer),
		tracking: make(map[string][]entity.TrackingUpdate),
	}
}

func (f *fakeOfferRepo) CreateOffer(ctx context.Context, input *entity.CreateOfferInput) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (f *fakeOfferRepo) GetOfferById(ctx context.Context, id string) (*entity.Offer, error) {
	offer, ok := f.offers[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return &offer, nil
}

func (f *fakeOfferRepo) GetOffers(ctx context.Context, filter *entity.OfferFilter, pg *entity.PaginationInput) ([]entity.Offer, error) {
	return nil, nil
}

func (f *fakeOfferRepo) UpdateOfferStatusById(ctx context.Context, id string, newStatus string) error {
	offer := f.offers[id]
	offer.Status = newStatus
	f.offers[id] = offer
	f.statusWrites = append(f.statusWrites, newStatus)

	return nil
}

func (f *fakeOfferRepo) DeleteOfferById(ctx context.Context, id string) error {
	if _, ok := f.offers[id]; !ok {
		return repo_errors.ErrNotFound
	}
	delete(f.offers, id)

	return nil
}

func (f *fakeOfferRepo) AddTrackingUpdate(ctx context.Context, id string, input *entity.AddTrackingInput) error {
	f.tracking[id] = append(f.tracking[id], entity.TrackingUpdate{
		Status: input.Status, Location: input.Location, Note: input.Note,
	})

	return nil
}

func (f *fakeOfferRepo) GetTrackingUpdates(ctx context.Context, id string) ([]entity.TrackingUpdate, error) {
	return f.tracking[id], nil
}

type fakeCropRepo struct {
	crops          map[string]entity.Crop
	quantityWrites []string
	// when set, reads serve this snapshot, letting a test interleave two
	// acceptances the way concurrent requests do
	stale map[string]entity.Crop
}

func newFakeCropRepo() *fakeCropRepo {
	return &fakeCropRepo{crops: make(map[string]entity.Crop)}
}

func (f *fakeCropRepo) CreateCrop(ctx context.Context, input *entity.CreateCropInput) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (f *fakeCropRepo) GetCropById(ctx context.Context, id string) (*entity.Crop, error) {
	source := f.crops
	if f.stale != nil {
		source = f.stale
	}

	crop, ok := source[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return &crop, nil
}

func (f *fakeCropRepo) GetCrops(ctx context.Context, filter *entity.CropFilter, pg *entity.PaginationInput) ([]entity.Crop, error) {
	return nil, nil
}

func (f *fakeCropRepo) EditCropById(ctx context.Context, id string, input *entity.EditCropInput) error {
	return nil
}

func (f *fakeCropRepo) UpdateCropQuantityById(ctx context.Context, id string, quantity string, status string) error {
	crop := f.crops[id]
	crop.Quantity = quantity
	crop.Status = status
	f.crops[id] = crop
	f.quantityWrites = append(f.quantityWrites, quantity)

	return nil
}

func (f *fakeCropRepo) DeleteCropById(ctx context.Context, id string) error {
	return nil
}

type fakeBuyerNeedRepo struct {
	needs map[string]entity.BuyerNeed
}

func newFakeBuyerNeedRepo() *fakeBuyerNeedRepo {
	return &fakeBuyerNeedRepo{needs: make(map[string]entity.BuyerNeed)}
}

func (f *fakeBuyerNeedRepo) CreateBuyerNeed(ctx context.Context, input *entity.CreateBuyerNeedInput) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (f *fakeBuyerNeedRepo) GetBuyerNeedById(ctx context.Context, id string) (*entity.BuyerNeed, error) {
	need, ok := f.needs[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return &need, nil
}

func (f *fakeBuyerNeedRepo) GetBuyerNeeds(ctx context.Context, filter *entity.BuyerNeedFilter, pg *entity.PaginationInput) ([]entity.BuyerNeed, error) {
	return nil, nil
}

func (f *fakeBuyerNeedRepo) UpdateBuyerNeedStatusById(ctx context.Context, id string, newStatus string) error {
	need := f.needs[id]
	need.Status = newStatus
	f.needs[id] = need

	return nil
}

func (f *fakeBuyerNeedRepo) DeleteBuyerNeedById(ctx context.Context, id string) error {
	return nil
}

type fakeNotificationRepo struct {
	created []entity.CreateNotificationInput
}

func (f *fakeNotificationRepo) CreateNotification(ctx context.Context, input *entity.CreateNotificationInput) (uuid.UUID, error) {
	f.created = append(f.created, *input)

	return uuid.New(), nil
}

func (f *fakeNotificationRepo) GetNotificationsByRecipientId(ctx context.Context, recipientId string, pg *entity.PaginationInput) ([]entity.Notification, error) {
	return nil, nil
}

type offerServiceFixture struct {
	service       *OfferService
	offers        *fakeOfferRepo
	crops         *fakeCropRepo
	needs         *fakeBuyerNeedRepo
	notifications *fakeNotificationRepo
}

func newOfferServiceFixture() *offerServiceFixture {
	offers := newFakeOfferRepo()
	crops := newFakeCropRepo()
	needs := newFakeBuyerNeedRepo()
	notifications := &fakeNotificationRepo{}

	repos := &repo.Repositories{
		Offer:        offers,
		Crop:         crops,
		BuyerNeed:    needs,
		Notification: notifications,
	}

	return &offerServiceFixture{
		service:       NewOfferService(repos),
		offers:        offers,
		crops:         crops,
		needs:         needs,
		notifications: notifications,
	}
}

func (f *offerServiceFixture) addCrop(quantity string, status string) uuid.UUID {
	id := uuid.New()
	f.crops.crops[id.String()] = entity.Crop{
		Id: id, FarmerId: uuid.New(), Name: "Wheat", Quantity: quantity, Price: "₹25/kg", Status: status,
	}

	return id
}

func (f *offerServiceFixture) addOffer(offer entity.Offer) string {
	if offer.Id == uuid.Nil {
		offer.Id = uuid.New()
	}
	if offer.Status == "" {
		offer.Status = common.Pending
	}
	f.offers.offers[offer.Id.String()] = offer

	return offer.Id.String()
}

func nullable(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}

func TestAcceptCropOfferDeductsInventory(t *testing.T) {
	f := newOfferServiceFixture()
	cropId := f.addCrop("500 kg", common.CropActive)
	farmerId := uuid.New()
	offerId := f.addOffer(entity.Offer{
		FarmerId: farmerId, CropId: nullable(cropId),
		OfferType: common.CropOffer, QuantityRequested: "200",
	})

	out, err := f.service.UpdateOfferStatusById(context.Background(), offerId, common.Accepted)
	if err != nil {
		t.Fatalf("UpdateOfferStatusById() error = %v", err)
	}

	if out.Status != common.Accepted {
		t.Errorf("offer status = %q, want %q", out.Status, common.Accepted)
	}

	crop := f.crops.crops[cropId.String()]
	if crop.Quantity != "300 kg" {
		t.Errorf("crop quantity = %q, want %q", crop.Quantity, "300 kg")
	}
	if crop.Status != common.CropActive {
		t.Errorf("crop status = %q, want unchanged %q", crop.Status, common.CropActive)
	}
}

func TestAcceptCropOfferSellsOut(t *testing.T) {
	tests := []struct {
		name      string
		requested string
	}{
		{"requested equals stock", "500 kg"},
		{"requested exceeds stock", "600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOfferServiceFixture()
			cropId := f.addCrop("500 kg", common.CropActive)
			offerId := f.addOffer(entity.Offer{
				FarmerId: uuid.New(), CropId: nullable(cropId),
				OfferType: common.CropOffer, QuantityRequested: tt.requested,
			})

			if _, err := f.service.UpdateOfferStatusById(context.Background(), offerId, common.Accepted); err != nil {
				t.Fatalf("UpdateOfferStatusById() error = %v", err)
			}

			crop := f.crops.crops[cropId.String()]
			if crop.Quantity != "0 kg" {
				t.Errorf("crop quantity = %q, want %q", crop.Quantity, "0 kg")
			}
			if crop.Status != common.CropSold {
				t.Errorf("crop status = %q, want %q", crop.Status, common.CropSold)
			}
		})
	}
}

func TestAcceptWithoutUsableQuantitySkipsInventory(t *testing.T) {
	tests := []struct {
		name      string
		requested string
	}{
		{"empty", ""},
		{"zero", "0"},
		{"not a number", "a few sacks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOfferServiceFixture()
			cropId := f.addCrop("500 kg", common.CropActive)
			offerId := f.addOffer(entity.Offer{
				FarmerId: uuid.New(), CropId: nullable(cropId),
				OfferType: common.CropOffer, QuantityRequested: tt.requested,
			})

			if _, err := f.service.UpdateOfferStatusById(context.Background(), offerId, common.Accepted); err != nil {
				t.Fatalf("UpdateOfferStatusById() error = %v", err)
			}

			if len(f.crops.quantityWrites) != 0 {
				t.Errorf("crop quantity writes = %v, want none", f.crops.quantityWrites)
			}
			crop := f.crops.crops[cropId.String()]
			if crop.Quantity != "500 kg" || crop.Status != common.CropActive {
				t.Errorf("crop mutated to %q/%q, want untouched", crop.Quantity, crop.Status)
			}
		})
	}
}

func TestAcceptNeedFulfillmentMarksNeedFulfilled(t *testing.T) {
	f := newOfferServiceFixture()
	needId := uuid.New()
	f.needs.needs[needId.String()] = entity.BuyerNeed{Id: needId, BuyerId: uuid.New(), Status: common.NeedOpen}
	offerId := f.addOffer(entity.Offer{
		FarmerId: uuid.New(), BuyerNeedId: nullable(needId),
		OfferType: common.NeedFulfillmentOffer, QuantityRequested: "999999",
	})

	if _, err := f.service.UpdateOfferStatusById(context.Background(), offerId, common.Accepted); err != nil {
		t.Fatalf("UpdateOfferStatusById() error = %v", err)
	}

	if got := f.needs.needs[needId.String()].Status; got != common.NeedFulfilled {
		t.Errorf("buyer need status = %q, want %q", got, common.NeedFulfilled)
	}
}

func TestAcceptCropOfferLeavesBuyerNeedAlone(t *testing.T) {
	// the need is only fulfilled for need_fulfillment offers, even when a
	// crop offer happens to reference one
	f := newOfferServiceFixture()
	needId := uuid.New()
	f.needs.needs[needId.String()] = entity.BuyerNeed{Id: needId, BuyerId: uuid.New(), Status: common.NeedOpen}
	cropId := f.addCrop("500 kg", common.CropActive)
	offerId := f.addOffer(entity.Offer{
		FarmerId: uuid.New(), CropId: nullable(cropId), BuyerNeedId: nullable(needId),
		OfferType: common.CropOffer, QuantityRequested: "100",
	})

	if _, err := f.service.UpdateOfferStatusById(context.Background(), offerId, common.Accepted); err != nil {
		t.Fatalf("UpdateOfferStatusById() error = %v", err)
	}

	if got := f.needs.needs[needId.String()].Status; got != common.NeedOpen {
		t.Errorf("buyer need status = %q, want untouched %q", got, common.NeedOpen)
	}
}

func TestAcceptNotifiesExactlyOneCounterparty(t *testing.T) {
	farmerId := uuid.New()
	providerId := uuid.New()

	tests := []struct {
		name          string
		offer         entity.Offer
		wantRecipient string
	}{
		{
			"provider wins over farmer",
			entity.Offer{FarmerId: farmerId, ProviderId: nullable(providerId), OfferType: common.ServiceOffer},
			providerId.String(),
		},
		{
			"farmer when no provider",
			entity.Offer{FarmerId: farmerId, OfferType: common.CropOffer},
			farmerId.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOfferServiceFixture()
			offerId := f.addOffer(tt.offer)

			if _, err := f.service.UpdateOfferStatusById(context.Background(), offerId, common.Accepted); err != nil {
				t.Fatalf("UpdateOfferStatusById() error = %v", err)
			}

			if len(f.notifications.created) != 1 {
				t.Fatalf("notifications created = %d, want exactly 1", len(f.notifications.created))
			}

			got := f.notifications.created[0]
			if got.RecipientId != tt.wantRecipient {
				t.Errorf("notification recipient = %q, want %q", got.RecipientId, tt.wantRecipient)
			}
			if got.Type != common.BidAcceptedNotification {
				t.Errorf("notification type = %q, want %q", got.Type, common.BidAcceptedNotification)
			}
			if got.RelatedId != offerId {
				t.Errorf("notification relatedId = %q, want %q", got.RelatedId, offerId)
			}
		})
	}
}

func TestRejectCreatesNoSideEffects(t *testing.T) {
	f := newOfferServiceFixture()
	cropId := f.addCrop("500 kg", common.CropActive)
	offerId := f.addOffer(entity.Offer{
		FarmerId: uuid.New(), CropId: nullable(cropId),
		OfferType: common.CropOffer, QuantityRequested: "200",
	})

	out, err := f.service.UpdateOfferStatusById(context.Background(), offerId, common.Rejected)
	if err != nil {
		t.Fatalf("UpdateOfferStatusById() error = %v", err)
	}

	if out.Status != common.Rejected {
		t.Errorf("offer status = %q, want %q", out.Status, common.Rejected)
	}
	if len(f.crops.quantityWrites) != 0 {
		t.Errorf("crop quantity writes = %v, want none", f.crops.quantityWrites)
	}
	if len(f.notifications.created) != 0 {
		t.Errorf("notifications created = %d, want none", len(f.notifications.created))
	}
}

func TestAcceptMissingCropKeepsStatusWrite(t *testing.T) {
	// the offer's own status write commits before the crop load fails, and
	// stays committed
	f := newOfferServiceFixture()
	offerId := f.addOffer(entity.Offer{
		FarmerId: uuid.New(), CropId: nullable(uuid.New()),
		OfferType: common.CropOffer, QuantityRequested: "200",
	})

	_, err := f.service.UpdateOfferStatusById(context.Background(), offerId, common.Accepted)
	if !errors.Is(err, ErrCropNotFound) {
		t.Fatalf("UpdateOfferStatusById() error = %v, want ErrCropNotFound", err)
	}

	if got := f.offers.offers[offerId].Status; got != common.Accepted {
		t.Errorf("offer status after failed workflow = %q, want committed %q", got, common.Accepted)
	}
}

func TestConcurrentAcceptsCanLoseDecrement(t *testing.T) {
	// both acceptances read the crop before either write lands, the classic
	// lost update the workflow permits
	f := newOfferServiceFixture()
	cropId := f.addCrop("500 kg", common.CropActive)
	firstOffer := f.addOffer(entity.Offer{
		FarmerId: uuid.New(), CropId: nullable(cropId),
		OfferType: common.CropOffer, QuantityRequested: "200",
	})
	secondOffer := f.addOffer(entity.Offer{
		FarmerId: uuid.New(), CropId: nullable(cropId),
		OfferType: common.CropOffer, QuantityRequested: "150",
	})

	f.crops.stale = map[string]entity.Crop{
		cropId.String(): f.crops.crops[cropId.String()],
	}

	if _, err := f.service.UpdateOfferStatusById(context.Background(), firstOffer, common.Accepted); err != nil {
		t.Fatalf("first accept error = %v", err)
	}
	if _, err := f.service.UpdateOfferStatusById(context.Background(), secondOffer, common.Accepted); err != nil {
		t.Fatalf("second accept error = %v", err)
	}

	crop := f.crops.crops[cropId.String()]
	if crop.Quantity != "350 kg" {
		t.Errorf("final crop quantity = %q, want %q reflecting only the second decrement", crop.Quantity, "350 kg")
	}
}

func TestUpdateStatusOfferNotFound(t *testing.T) {
	f := newOfferServiceFixture()

	_, err := f.service.UpdateOfferStatusById(context.Background(), uuid.New().String(), common.Accepted)
	if !errors.Is(err, ErrOfferNotFound) {
		t.Fatalf("UpdateOfferStatusById() error = %v, want ErrOfferNotFound", err)
	}
}

func TestTrackingUpdateStatusAllowList(t *testing.T) {
	tests := []struct {
		name            string
		trackingStatus  string
		wantOfferStatus string
	}{
		{"accepted overwrites offer status", common.Accepted, common.Accepted},
		{"shipped overwrites offer status", common.Shipped, common.Shipped},
		{"delivered overwrites offer status", common.Delivered, common.Delivered},
		{"unlisted status leaves offer status", "packed", common.Pending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOfferServiceFixture()
			cropId := f.addCrop("500 kg", common.CropActive)
			offerId := f.addOffer(entity.Offer{
				FarmerId: uuid.New(), CropId: nullable(cropId),
				OfferType: common.CropOffer, QuantityRequested: "200",
			})

			out, err := f.service.AddTrackingUpdate(context.Background(), offerId, &entity.AddTrackingInput{
				Status: tt.trackingStatus, Location: "Pune",
			})
			if err != nil {
				t.Fatalf("AddTrackingUpdate() error = %v", err)
			}

			if len(out.TrackingUpdates) != 1 {
				t.Fatalf("tracking updates = %d, want 1", len(out.TrackingUpdates))
			}
			if out.TrackingUpdates[0].Status != tt.trackingStatus {
				t.Errorf("tracking entry status = %q, want %q", out.TrackingUpdates[0].Status, tt.trackingStatus)
			}
			if out.Status != tt.wantOfferStatus {
				t.Errorf("offer status = %q, want %q", out.Status, tt.wantOfferStatus)
			}

			// tracking writes status directly, the acceptance workflow never runs
			if len(f.crops.quantityWrites) != 0 {
				t.Errorf("crop quantity writes = %v, want none", f.crops.quantityWrites)
			}
			if len(f.notifications.created) != 0 {
				t.Errorf("notifications created = %d, want none", len(f.notifications.created))
			}
		})
	}
}

func TestTrackingUpdatesAppendWithoutOrderingChecks(t *testing.T) {
	// delivered then shipped is accepted as-is, there is no monotonicity rule
	f := newOfferServiceFixture()
	offerId := f.addOffer(entity.Offer{FarmerId: uuid.New(), OfferType: common.CropOffer})
	ctx := context.Background()

	if _, err := f.service.AddTrackingUpdate(ctx, offerId, &entity.AddTrackingInput{Status: common.Delivered}); err != nil {
		t.Fatalf("AddTrackingUpdate(delivered) error = %v", err)
	}
	out, err := f.service.AddTrackingUpdate(ctx, offerId, &entity.AddTrackingInput{Status: common.Shipped})
	if err != nil {
		t.Fatalf("AddTrackingUpdate(shipped) error = %v", err)
	}

	if len(out.TrackingUpdates) != 2 {
		t.Fatalf("tracking updates = %d, want 2", len(out.TrackingUpdates))
	}
	if out.Status != common.Shipped {
		t.Errorf("offer status = %q, want %q", out.Status, common.Shipped)
	}
}

func TestTrackingUpdateOfferNotFound(t *testing.T) {
	f := newOfferServiceFixture()

	_, err := f.service.AddTrackingUpdate(context.Background(), uuid.New().String(), &entity.AddTrackingInput{Status: common.Shipped})
	if !errors.Is(err, ErrOfferNotFound) {
		t.Fatalf("AddTrackingUpdate() error = %v, want ErrOfferNotFound", err)
	}
}
