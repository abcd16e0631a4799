package service

import (
	"context"
	"strings"

	"collection-orders/internal/dto"
	"collection-orders/internal/model"
	"collection-orders/internal/repository"
	"collection-orders/internal/view"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type PurchaseService interface {
	ListOrders(ctx context.Context, page, limit int) (*dto.OrdersPage, error)
	ListLineItems(ctx context.Context, purchaseID string) ([]*dto.LineItemView, error)
}

type purchaseServiceImpl struct {
	purchaseRepo repository.PurchaseRepository
}

func NewPurchaseService(purchaseRepo repository.PurchaseRepository) PurchaseService {
	return &purchaseServiceImpl{
		purchaseRepo: purchaseRepo,
	}
}

// ListOrders returns one page of purchases, newest first. Out-of-range
// pages yield an empty list, not an error.
func (s *purchaseServiceImpl) ListOrders(ctx context.Context, page, limit int) (*dto.OrdersPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total, err := s.purchaseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	offset := (page - 1) * limit
	purchases, err := s.purchaseRepo.ListPage(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	orders := make([]*dto.OrderView, 0, len(purchases))
	for _, p := range purchases {
		orders = append(orders, orderView(p))
	}

	start, end := view.PageWindow(page, totalPages)

	return &dto.OrdersPage{
		Orders:     orders,
		TotalPages: totalPages,
		Page:       page,
		PageWindow: dto.PageWindow{Start: start, End: end},
	}, nil
}

// ListLineItems returns the products of one purchase. An unknown purchase
// id and a purchase without items both yield an empty list; the store does
// not tell them apart.
func (s *purchaseServiceImpl) ListLineItems(ctx context.Context, purchaseID string) ([]*dto.LineItemView, error) {
	purchaseID = strings.TrimSpace(purchaseID)
	if purchaseID == "" {
		return nil, model.ErrInvalidArgument
	}

	rows, err := s.purchaseRepo.ListProducts(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.LineItemView, 0, len(rows))
	for _, r := range rows {
		items = append(items, &dto.LineItemView{
			ProductID: r.ProductID,
			Name:      r.Name,
			SKU:       r.SKU,
			MainPhoto: r.MainPhoto,
			Amount:    r.Amount,
			Price:     r.Price,
			Size:      r.Size,
			// Item prices are stored in rubles; scale them up so the
			// minor-unit heuristic lands back on the stored value.
			PriceDisplay: view.FormatMoney(r.Price * 100),
		})
	}

	return items, nil
}

func orderView(p *model.Purchase) *dto.OrderView {
	v := &dto.OrderView{Purchase: *p}
	if price := view.OrderPrice(p); price > 0 {
		v.PriceDisplay = view.FormatMoney(price)
	}
	return v
}
