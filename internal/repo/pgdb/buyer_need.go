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

type BuyerNeedRepo struct {
	*postgres.Postgres
}

func NewBuyerNeedRepo(pgdb *postgres.Postgres) *BuyerNeedRepo {
	return &BuyerNeedRepo{pgdb}
}

func (r *BuyerNeedRepo) CreateBuyerNeed(ctx context.Context, input *entity.CreateBuyerNeedInput) (uuid.UUID, error) {
	buyerUuid, err := uuid.Parse(input.BuyerId)
	if err != nil {
		return uuid.Nil, err
	}

	createNeedReq, args, _ := r.SqlBuilder.
		Insert("buyer_need").
		Columns("buyer_id", "crop_name", "quantity", "status").
		Values(buyerUuid, input.CropName, input.Quantity, common.NeedOpen).
		Suffix("RETURNING id").
		ToSql()

	var needId uuid.UUID
	err = r.Database.QueryRow(createNeedReq, args...).Scan(&needId)
	if err != nil {
		return uuid.Nil, err
	}

	return needId, nil
}

func (r *BuyerNeedRepo) GetBuyerNeedById(ctx context.Context, id string) (*entity.BuyerNeed, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getNeedReq, args, _ := r.SqlBuilder.
		Select("id, buyer_id, crop_name, quantity, status, created_at").
		From("buyer_need").
		Where("id = ?", uuidForm).
		ToSql()

	var need entity.BuyerNeed
	var createdAt time.Time
	row := r.Database.QueryRow(getNeedReq, args...)
	err = row.Scan(&need.Id, &need.BuyerId, &need.CropName, &need.Quantity, &need.Status, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	need.CreatedAt = createdAt.Format(time.RFC3339)

	return &need, nil
}

func (r *BuyerNeedRepo) GetBuyerNeeds(ctx context.Context, filter *entity.BuyerNeedFilter, pg *entity.PaginationInput) ([]entity.BuyerNeed, error) {
	getNeedsBuilder := r.SqlBuilder.
		Select("id, buyer_id, crop_name, quantity, status, created_at").
		From("buyer_need")

	if filter.BuyerId != "" {
		uuidForm, err := uuid.Parse(filter.BuyerId)
		if err != nil {
			return nil, err
		}
		getNeedsBuilder = getNeedsBuilder.Where("buyer_id = ?", uuidForm)
	}

	if filter.Status != "" {
		getNeedsBuilder = getNeedsBuilder.Where("status = ?", filter.Status)
	}

	getNeedsReq, args, _ := getNeedsBuilder.
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.Query(getNeedsReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	needs := make([]entity.BuyerNeed, 0)
	for rows.Next() {
		var need entity.BuyerNeed
		var createdAt time.Time
		if err := rows.Scan(&need.Id, &need.BuyerId, &need.CropName, &need.Quantity,
			&need.Status, &createdAt); err != nil {
			return needs, err
		}
		need.CreatedAt = createdAt.Format(time.RFC3339)
		needs = append(needs, need)
	}
	if err = rows.Err(); err != nil {
		return needs, err
	}

	return needs, nil
}

func (r *BuyerNeedRepo) UpdateBuyerNeedStatusById(ctx context.Context, id string, newStatus string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	updateStatusReq, args, _ := r.SqlBuilder.
		Update("buyer_need").
		Set("status", newStatus).
		Where("id = ?", uuidForm).
		ToSql()

	_, err = r.Database.Exec(updateStatusReq, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *BuyerNeedRepo) DeleteBuyerNeedById(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	deleteNeedReq, args, _ := r.SqlBuilder.
		Delete("buyer_need").
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.Exec(deleteNeedReq, args...)
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
