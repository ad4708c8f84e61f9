package service

import (
	"context"
	"errors"
	"farmconnect-api/internal/entity"
	"farmconnect-api/internal/repo"
	"farmconnect-api/internal/repo/repo_errors"
)

type CropService struct {
	cropRepo repo.Crop
}

func NewCropService(repos *repo.Repositories) *CropService {
	return &CropService{cropRepo: repos.Crop}
}

func (s *CropService) CreateCrop(ctx context.Context, input *entity.CreateCropInput) (*entity.CropOutputModel, error) {
	id, err := s.cropRepo.CreateCrop(ctx, input)
	if err != nil {
		return nil, err
	}

	crop, err := s.cropRepo.GetCropById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapCrop(crop), nil
}

func (s *CropService) GetCrops(ctx context.Context, filter *entity.CropFilter, pg *entity.PaginationInput) ([]entity.CropOutputModel, error) {
	crops, err := s.cropRepo.GetCrops(ctx, filter, pg)
	if err != nil {
		return nil, err
	}

	return mapCrops(crops), nil
}

func (s *CropService) EditCropById(ctx context.Context, cropId string, input *entity.EditCropInput) (*entity.CropOutputModel, error) {
	err := s.cropRepo.EditCropById(ctx, cropId, input)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrCropNotFound
		}

		return nil, err
	}

	crop, err := s.cropRepo.GetCropById(ctx, cropId)
	if err != nil {
		return nil, err
	}

	return mapCrop(crop), nil
}

func (s *CropService) DeleteCropById(ctx context.Context, cropId string) error {
	err := s.cropRepo.DeleteCropById(ctx, cropId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrCropNotFound
		}

		return err
	}

	return nil
}
