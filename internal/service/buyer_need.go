package service

import (
	"context"
	"errors"
	"farmconnect-api/internal/entity"
	"farmconnect-api/internal/repo"
	"farmconnect-api/internal/repo/repo_errors"
)

type BuyerNeedService struct {
	buyerNeedRepo repo.BuyerNeed
}

func NewBuyerNeedService(repos *repo.Repositories) *BuyerNeedService {
	return &BuyerNeedService{buyerNeedRepo: repos.BuyerNeed}
}

func (s *BuyerNeedService) CreateBuyerNeed(ctx context.Context, input *entity.CreateBuyerNeedInput) (*entity.BuyerNeedOutputModel, error) {
	id, err := s.buyerNeedRepo.CreateBuyerNeed(ctx, input)
	if err != nil {
		return nil, err
	}

	need, err := s.buyerNeedRepo.GetBuyerNeedById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapBuyerNeed(need), nil
}

func (s *BuyerNeedService) GetBuyerNeeds(ctx context.Context, filter *entity.BuyerNeedFilter, pg *entity.PaginationInput) ([]entity.BuyerNeedOutputModel, error) {
	needs, err := s.buyerNeedRepo.GetBuyerNeeds(ctx, filter, pg)
	if err != nil {
		return nil, err
	}

	return mapBuyerNeeds(needs), nil
}

func (s *BuyerNeedService) DeleteBuyerNeedById(ctx context.Context, needId string) error {
	err := s.buyerNeedRepo.DeleteBuyerNeedById(ctx, needId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrBuyerNeedNotFound
		}

		return err
	}

	return nil
}
