package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehiclePurchase records the acquisition of a vehicle from a supplier.
type VehiclePurchase struct {
	PurchaseID       string          `json:"purchaseID"` // Primary Key (UUID)
	CompanyID        string          `json:"companyID"`
	ChassisNumber    string          `json:"chassisNumber"`
	Maker            string          `json:"maker"`
	VehicleType      string          `json:"vehicleType"`
	CounterpartyCode string          `json:"counterpartyCode"`
	PurchaseDate     time.Time       `json:"purchaseDate"`
	Price            decimal.Decimal `json:"price"`
	CurrencyCode     string          `json:"currencyCode"`
	AuditFields
}

// VehicleSale records the sale of a vehicle to a customer.
type VehicleSale struct {
	SaleID           string          `json:"saleID"` // Primary Key (UUID)
	CompanyID        string          `json:"companyID"`
	ChassisNumber    string          `json:"chassisNumber"`
	CounterpartyCode string          `json:"counterpartyCode"`
	SaleDate         time.Time       `json:"saleDate"`
	Price            decimal.Decimal `json:"price"`
	CurrencyCode     string          `json:"currencyCode"`
	AuditFields
}
