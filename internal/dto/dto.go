package dto

import "collection-orders/internal/model"

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// OrderView is a purchase row plus its server-rendered price string. The
// display string is empty when neither price tier is set.
type OrderView struct {
	model.Purchase
	PriceDisplay string `json:"PriceDisplay"`
}

type LineItemView struct {
	ProductID    string  `json:"Id"`
	Name         string  `json:"Name"`
	SKU          string  `json:"SKU"`
	MainPhoto    string  `json:"MainPhoto"`
	Amount       int     `json:"Amount"`
	Price        float64 `json:"Price"`
	Size         string  `json:"Size"`
	PriceDisplay string  `json:"PriceDisplay"`
}

// PageWindow is the slice of page buttons the client should render.
type PageWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type OrdersPage struct {
	Orders     []*OrderView `json:"orders"`
	TotalPages int          `json:"totalPages"`
	Page       int          `json:"page"`
	PageWindow PageWindow   `json:"pageWindow"`
}
