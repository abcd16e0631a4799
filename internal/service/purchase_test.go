package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"collection-orders/internal/model"
)

type fakePurchaseRepo struct {
	purchases []*model.Purchase
	items     map[string][]*model.LineItem

	err error

	lastLimit  int
	lastOffset int
}

func (f *fakePurchaseRepo) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.purchases)), nil
}

func (f *fakePurchaseRepo) ListPage(ctx context.Context, limit, offset int) ([]*model.Purchase, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastLimit = limit
	f.lastOffset = offset
	if offset >= len(f.purchases) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.purchases) {
		end = len(f.purchases)
	}
	return f.purchases[offset:end], nil
}

func (f *fakePurchaseRepo) ListProducts(ctx context.Context, purchaseID string) ([]*model.LineItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items[purchaseID], nil
}

func repoWithPurchases(n int) *fakePurchaseRepo {
	repo := &fakePurchaseRepo{items: map[string][]*model.LineItem{}}
	for i := 0; i < n; i++ {
		repo.purchases = append(repo.purchases, &model.Purchase{ID: fmt.Sprintf("p-%03d", i)})
	}
	return repo
}

func TestListOrdersDefaults(t *testing.T) {
	repo := repoWithPurchases(25)
	svc := NewPurchaseService(repo)

	page, err := svc.ListOrders(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("ListOrders() error: %v", err)
	}

	if repo.lastLimit != 10 || repo.lastOffset != 0 {
		t.Errorf("repo called with limit=%d offset=%d, want 10/0", repo.lastLimit, repo.lastOffset)
	}
	if page.Page != 1 {
		t.Errorf("Page = %d, want 1", page.Page)
	}
	if len(page.Orders) != 10 {
		t.Errorf("len(Orders) = %d, want 10", len(page.Orders))
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.TotalPages)
	}
}

func TestListOrdersTotalPagesCeil(t *testing.T) {
	tests := []struct {
		total int
		limit int
		want  int
	}{
		{total: 0, limit: 10, want: 0},
		{total: 1, limit: 10, want: 1},
		{total: 10, limit: 10, want: 1},
		{total: 11, limit: 10, want: 2},
		{total: 25, limit: 7, want: 4},
	}

	for _, tt := range tests {
		svc := NewPurchaseService(repoWithPurchases(tt.total))
		page, err := svc.ListOrders(context.Background(), 1, tt.limit)
		if err != nil {
			t.Fatalf("ListOrders() error: %v", err)
		}
		if page.TotalPages != tt.want {
			t.Errorf("total=%d limit=%d: TotalPages = %d, want %d", tt.total, tt.limit, page.TotalPages, tt.want)
		}
	}
}

func TestListOrdersPastEndIsEmpty(t *testing.T) {
	svc := NewPurchaseService(repoWithPurchases(15))

	page, err := svc.ListOrders(context.Background(), 99, 10)
	if err != nil {
		t.Fatalf("ListOrders() error: %v", err)
	}
	if len(page.Orders) != 0 {
		t.Errorf("len(Orders) = %d, want 0", len(page.Orders))
	}
	if page.Orders == nil {
		t.Error("Orders is nil, want empty slice so JSON encodes []")
	}
	if page.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", page.TotalPages)
	}
}

func TestListOrdersLimitClamped(t *testing.T) {
	repo := repoWithPurchases(5)
	svc := NewPurchaseService(repo)

	if _, err := svc.ListOrders(context.Background(), 1, 100000); err != nil {
		t.Fatalf("ListOrders() error: %v", err)
	}
	if repo.lastLimit != 100 {
		t.Errorf("repo called with limit=%d, want clamp to 100", repo.lastLimit)
	}
}

func TestListOrdersPriceDisplay(t *testing.T) {
	repo := &fakePurchaseRepo{purchases: []*model.Purchase{
		{ID: "a", PriceForSP1: 150000, PriceForSP2: 2786000},
		{ID: "b", PriceForSP1: 500},
		{ID: "c"},
	}}
	svc := NewPurchaseService(repo)

	page, err := svc.ListOrders(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ListOrders() error: %v", err)
	}

	want := []string{"27 860,00 ₽", "500,00 ₽", ""}
	for i, w := range want {
		if got := page.Orders[i].PriceDisplay; got != w {
			t.Errorf("Orders[%d].PriceDisplay = %q, want %q", i, got, w)
		}
	}
}

func TestListOrdersStorageError(t *testing.T) {
	svc := NewPurchaseService(&fakePurchaseRepo{err: errors.New("connection refused")})

	if _, err := svc.ListOrders(context.Background(), 1, 10); err == nil {
		t.Fatal("ListOrders() error = nil, want storage error")
	}
}

func TestListLineItems(t *testing.T) {
	repo := &fakePurchaseRepo{items: map[string][]*model.LineItem{
		"order-1": {
			{ProductID: "prod-1", Name: "Кардиган", SKU: "KD-01", Amount: 2, Price: 500, Size: "M"},
		},
	}}
	svc := NewPurchaseService(repo)

	items, err := svc.ListLineItems(context.Background(), " order-1 ")
	if err != nil {
		t.Fatalf("ListLineItems() error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].PriceDisplay != "500,00 ₽" {
		t.Errorf("PriceDisplay = %q, want %q", items[0].PriceDisplay, "500,00 ₽")
	}
	if items[0].Amount != 2 || items[0].Size != "M" {
		t.Errorf("item fields not carried over: %+v", items[0])
	}
}

func TestListLineItemsEmptyID(t *testing.T) {
	svc := NewPurchaseService(repoWithPurchases(0))

	for _, id := range []string{"", "   ", "\t\n"} {
		if _, err := svc.ListLineItems(context.Background(), id); !errors.Is(err, model.ErrInvalidArgument) {
			t.Errorf("ListLineItems(%q) error = %v, want ErrInvalidArgument", id, err)
		}
	}
}

func TestListLineItemsUnknownOrder(t *testing.T) {
	svc := NewPurchaseService(repoWithPurchases(0))

	items, err := svc.ListLineItems(context.Background(), "no-such-order")
	if err != nil {
		t.Fatalf("ListLineItems() error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("items = %v, want empty non-nil slice", items)
	}
}
