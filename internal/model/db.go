package model

import "time"

// The schema below is owned by the shop backend that populates it; this
// service only reads from it. Table and column names are quoted PascalCase
// on the Postgres side, hence the explicit gorm tags. JSON keys mirror the
// column names because the web client addresses fields by them.

type Purchase struct {
	ID             string    `gorm:"column:Id;primaryKey;size:64" json:"Id"`
	Name           string    `gorm:"column:Name" json:"Name"`
	SecondName     string    `gorm:"column:SecondName" json:"SecondName"`
	Email          string    `gorm:"column:Email" json:"Email"`
	Phone          string    `gorm:"column:Phone" json:"Phone"`
	DeliveryAdress string    `gorm:"column:DeliveryAdress" json:"DeliveryAdress"` // misspelt in the upstream schema
	CDEKItemID     string    `gorm:"column:CDEKItemId" json:"CDEKItemId"`
	PriceForSP1    float64   `gorm:"column:PriceForSP1" json:"PriceForSP1"`
	PriceForSP2    float64   `gorm:"column:PriceForSP2" json:"PriceForSP2"`
	Created        time.Time `gorm:"column:Created;index" json:"Created"`
}

func (Purchase) TableName() string { return "Purchases" }

type Product struct {
	ID        string `gorm:"column:Id;primaryKey;size:64" json:"Id"`
	Name      string `gorm:"column:Name" json:"Name"`
	SKU       string `gorm:"column:SKU" json:"SKU"`
	MainPhoto string `gorm:"column:MainPhoto" json:"MainPhoto"`
}

func (Product) TableName() string { return "Products" }

// PurchasedProduct is the purchase-product association row.
type PurchasedProduct struct {
	ID               uint    `gorm:"column:Id;primaryKey" json:"Id"`
	PurchaseEntityID string  `gorm:"column:PurchaseEntityId;size:64;index" json:"PurchaseEntityId"`
	ProductID        string  `gorm:"column:ProductId;size:64;index" json:"ProductId"`
	Amount           int     `gorm:"column:Amount" json:"Amount"`
	Price            float64 `gorm:"column:Price" json:"Price"`
	Size             string  `gorm:"column:Size" json:"Size"`
}

func (PurchasedProduct) TableName() string { return "PuchasedProductEntity" }

// LineItem is a PurchasedProduct row joined with its product metadata.
type LineItem struct {
	ProductID string  `gorm:"column:ProductId"`
	Name      string  `gorm:"column:Name"`
	SKU       string  `gorm:"column:SKU"`
	MainPhoto string  `gorm:"column:MainPhoto"`
	Amount    int     `gorm:"column:Amount"`
	Price     float64 `gorm:"column:Price"`
	Size      string  `gorm:"column:Size"`
}
