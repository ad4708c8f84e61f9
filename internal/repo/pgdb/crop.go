package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"farmconnect-api/internal/common"
	"farmconnect-api/internal/entity"
	"farmconnect-api/internal/repo/repo_errors"
	"farmconnect-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type CropRepo struct {
	*postgres.Postgres
}

func NewCropRepo(pgdb *postgres.Postgres) *CropRepo {
	return &CropRepo{pgdb}
}

func (r *CropRepo) CreateCrop(ctx context.Context, input *entity.CreateCropInput) (uuid.UUID, error) {
	farmerUuid, err := uuid.Parse(input.FarmerId)
	if err != nil {
		return uuid.Nil, err
	}

	createCropReq, args, _ := r.SqlBuilder.
		Insert("crop").
		Columns("farmer_id", "name", "quantity", "price", "status", "image").
		Values(farmerUuid, input.Name, input.Quantity, input.Price, common.CropActive, input.Image).
		Suffix("RETURNING id").
		ToSql()

	var cropId uuid.UUID
	err = r.Database.QueryRow(createCropReq, args...).Scan(&cropId)
	if err != nil {
		return uuid.Nil, err
	}

	return cropId, nil
}

func (r *CropRepo) GetCropById(ctx context.Context, id string) (*entity.Crop, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getCropReq, args, _ := r.SqlBuilder.
		Select("id, farmer_id, name, quantity, price, status, image, created_at").
		From("crop").
		Where("id = ?", uuidForm).
		ToSql()

	var crop entity.Crop
	var createdAt time.Time
	row := r.Database.QueryRow(getCropReq, args...)
	err = row.Scan(&crop.Id, &crop.FarmerId, &crop.Name, &crop.Quantity, &crop.Price,
		&crop.Status, &crop.Image, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	crop.CreatedAt = createdAt.Format(time.RFC3339)

	return &crop, nil
}

func (r *CropRepo) GetCrops(ctx context.Context, filter *entity.CropFilter, pg *entity.PaginationInput) ([]entity.Crop, error) {
	getCropsBuilder := r.SqlBuilder.
		Select("id, farmer_id, name, quantity, price, status, image, created_at").
		From("crop")

	if filter.FarmerId != "" {
		uuidForm, err := uuid.Parse(filter.FarmerId)
		if err != nil {
			return nil, err
		}
		getCropsBuilder = getCropsBuilder.Where("farmer_id = ?", uuidForm)
	}

	if filter.Status != "" {
		getCropsBuilder = getCropsBuilder.Where("status = ?", filter.Status)
	}

	getCropsReq, args, _ := getCropsBuilder.
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.Query(getCropsReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crops := make([]entity.Crop, 0)
	for rows.Next() {
		var crop entity.Crop
		var createdAt time.Time
		if err := rows.Scan(&crop.Id, &crop.FarmerId, &crop.Name, &crop.Quantity, &crop.Price,
			&crop.Status, &crop.Image, &createdAt); err != nil {
			return crops, err
		}
		crop.CreatedAt = createdAt.Format(time.RFC3339)
		crops = append(crops, crop)
	}
	if err = rows.Err(); err != nil {
		return crops, err
	}

	return crops, nil
}

func (r *CropRepo) EditCropById(ctx context.Context, id string, input *entity.EditCropInput) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	editCropBuilder := r.SqlBuilder.
		Update("crop").
		Where("id = ?", uuidForm)

	if input.Name != "" {
		editCropBuilder = editCropBuilder.Set("name", input.Name)
	}
	if input.Quantity != "" {
		editCropBuilder = editCropBuilder.Set("quantity", input.Quantity)
	}
	if input.Price != "" {
		editCropBuilder = editCropBuilder.Set("price", input.Price)
	}
	if input.Status != "" {
		editCropBuilder = editCropBuilder.Set("status", input.Status)
	}
	if input.Image != "" {
		editCropBuilder = editCropBuilder.Set("image", input.Image)
	}

	editCropReq, args, err := editCropBuilder.ToSql()
	if err != nil {
		// squirrel rejects an UPDATE without SET clauses
		return err
	}

	result, err := r.Database.Exec(editCropReq, args...)
	if err != nil {
		return err
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if updated == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

// UpdateCropQuantityById writes the inventory decrement computed by the offer
// acceptance workflow. A single independent statement, same as the rest of the
// workflow's writes.
func (r *CropRepo) UpdateCropQuantityById(ctx context.Context, id string, quantity string, status string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	updateQuantityReq, args, _ := r.SqlBuilder.
		Update("crop").
		Set("quantity", quantity).
		Set("status", status).
		Where("id = ?", uuidForm).
		ToSql()

	_, err = r.Database.Exec(updateQuantityReq, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *CropRepo) DeleteCropById(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	deleteCropReq, args, _ := r.SqlBuilder.
		Delete("crop").
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.Exec(deleteCropReq, args...)
	if err != nil {
		return err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}
