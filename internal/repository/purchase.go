package repository

import (
	"context"

	"gorm.io/gorm"

	"collection-orders/internal/model"
)

type PurchaseRepository interface {
	Count(ctx context.Context) (int64, error)
	ListPage(ctx context.Context, limit, offset int) ([]*model.Purchase, error)
	ListProducts(ctx context.Context, purchaseID string) ([]*model.LineItem, error)
}

type purchaseRepoImpl struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepoImpl{
		db: db,
	}
}

func (r *purchaseRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Purchase{}).
		Count(&count).Error

	return count, err
}

func (r *purchaseRepoImpl) ListPage(ctx context.Context, limit, offset int) ([]*model.Purchase, error) {
	var purchases []*model.Purchase
	err := r.db.WithContext(ctx).
		Order(`"Created" DESC`).
		Limit(limit).
		Offset(offset).
		Find(&purchases).Error

	if err != nil {
		return nil, err
	}

	return purchases, nil
}

func (r *purchaseRepoImpl) ListProducts(ctx context.Context, purchaseID string) ([]*model.LineItem, error) {
	var items []*model.LineItem
	err := r.db.WithContext(ctx).
		Table(`"PuchasedProductEntity" AS pp`).
		Select(`p."Id" AS "ProductId", p."Name" AS "Name", p."SKU" AS "SKU", p."MainPhoto" AS "MainPhoto", pp."Amount" AS "Amount", pp."Price" AS "Price", pp."Size" AS "Size"`).
		Joins(`JOIN "Products" p ON pp."ProductId" = p."Id"`).
		Where(`pp."PurchaseEntityId" = ?`, purchaseID).
		Scan(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}
