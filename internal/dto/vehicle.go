package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVehiclePurchaseRequest records the acquisition of a vehicle.
type CreateVehiclePurchaseRequest struct {
	ChassisNumber    string          `json:"chassisNumber" binding:"required,min=1,max=30"`
	Maker            string          `json:"maker" binding:"required,min=1,max=100"`
	VehicleType      string          `json:"vehicleType" binding:"required,min=1,max=50"`
	CounterpartyCode string          `json:"counterpartyCode" binding:"required,min=1,max=20"`
	PurchaseDate     time.Time       `json:"purchaseDate" binding:"required"`
	Price            decimal.Decimal `json:"price" binding:"required"`
	CurrencyCode     string          `json:"currencyCode" binding:"required,uppercase,len=3"`
}

// CreateVehicleSaleRequest records the sale of a vehicle.
type CreateVehicleSaleRequest struct {
	ChassisNumber    string          `json:"chassisNumber" binding:"required,min=1,max=30"`
	CounterpartyCode string          `json:"counterpartyCode" binding:"required,min=1,max=20"`
	SaleDate         time.Time       `json:"saleDate" binding:"required"`
	Price            decimal.Decimal `json:"price" binding:"required"`
	CurrencyCode     string          `json:"currencyCode" binding:"required,uppercase,len=3"`
}
