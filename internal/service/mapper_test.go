package service

import (
	"farmconnect-api/internal/common"
	"farmconnect-api/internal/entity"
	"testing"

	"github.com/google/uuid"
)

func TestMapOfferPopulatesSummaries(t *testing.T) {
	cropId := uuid.New()
	needId := uuid.New()
	offer := &entity.Offer{
		Id:                uuid.New(),
		FarmerId:          uuid.New(),
		CropId:            nullable(cropId),
		BuyerNeedId:       nullable(needId),
		OfferType:         common.CropOffer,
		QuantityRequested: "200",
		Status:            common.Pending,
		CropName:          "Wheat",
		CropQuantity:      "500 kg",
		CropStatus:        common.CropActive,
		NeedCropName:      "Wheat",
		NeedQuantity:      "200 kg",
		NeedStatus:        common.NeedOpen,
	}

	out := mapOffer(offer)

	if out.Crop == nil {
		t.Fatal("crop summary = nil, want populated")
	}
	if out.Crop.Id != cropId.String() || out.Crop.Name != "Wheat" || out.Crop.Quantity != "500 kg" || out.Crop.Status != common.CropActive {
		t.Errorf("crop summary = %+v, want joined crop fields", out.Crop)
	}

	if out.BuyerNeed == nil {
		t.Fatal("buyer need summary = nil, want populated")
	}
	if out.BuyerNeed.Id != needId.String() || out.BuyerNeed.CropName != "Wheat" || out.BuyerNeed.Quantity != "200 kg" || out.BuyerNeed.Status != common.NeedOpen {
		t.Errorf("buyer need summary = %+v, want joined need fields", out.BuyerNeed)
	}
}

func TestMapOfferOmitsUnsetSummaries(t *testing.T) {
	offer := &entity.Offer{
		Id:        uuid.New(),
		FarmerId:  uuid.New(),
		OfferType: common.ServiceOffer,
		Status:    common.Pending,
	}

	out := mapOffer(offer)

	if out.Crop != nil {
		t.Errorf("crop summary = %+v, want nil for offer without crop", out.Crop)
	}
	if out.BuyerNeed != nil {
		t.Errorf("buyer need summary = %+v, want nil for offer without need", out.BuyerNeed)
	}
	if out.TrackingUpdates == nil {
		t.Error("tracking updates = nil, want empty slice")
	}
}
