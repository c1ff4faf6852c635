package dto

import (
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// Reference-data request DTOs. Each request validates the client-supplied
// fields and materializes a domain record; tenant and audit fields are always
// server-set afterwards.

// BankRequest creates or updates a settlement bank account.
type BankRequest struct {
	AccountNumber string `json:"accountNumber" binding:"required,notblank,max=34"`
	BankName      string `json:"bankName" binding:"required,min=1,max=100"`
	BranchName    string `json:"branchName" binding:"omitempty,max=100"`
	IsDefault     bool   `json:"isDefault"`
}

func (r BankRequest) ToDomain() *domain.Bank {
	return &domain.Bank{
		AccountNumber: r.AccountNumber,
		BankName:      r.BankName,
		BranchName:    r.BranchName,
		IsDefault:     r.IsDefault,
	}
}

// CounterpartyRequest creates or updates a business partner.
type CounterpartyRequest struct {
	Code string `json:"code" binding:"required,notblank,max=20"`
	Name string `json:"name" binding:"required,min=1,max=200"`
	Kind string `json:"kind" binding:"required,oneof=CUSTOMER SUPPLIER SHIPPER"`
}

func (r CounterpartyRequest) ToDomain() *domain.Counterparty {
	return &domain.Counterparty{
		Code: r.Code,
		Name: r.Name,
		Kind: domain.CounterpartyKind(r.Kind),
	}
}

// CountryRequest creates or updates an export destination country.
type CountryRequest struct {
	Code string `json:"code" binding:"required,notblank,min=2,max=3"`
	Name string `json:"name" binding:"required,min=1,max=100"`
}

func (r CountryRequest) ToDomain() *domain.Country {
	return &domain.Country{Code: r.Code, Name: r.Name}
}

// VehicleTypeRequest creates or updates a body-style classification.
type VehicleTypeRequest struct {
	VehicleType string `json:"vehicleType" binding:"required,notblank,max=50"`
}

func (r VehicleTypeRequest) ToDomain() *domain.VehicleType {
	return &domain.VehicleType{Name: r.VehicleType}
}

// LocationRequest creates or updates a storage yard or port.
type LocationRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

func (r LocationRequest) ToDomain() *domain.Location {
	return &domain.Location{Name: r.Name}
}

// ColorRequest creates or updates an exterior color.
type ColorRequest struct {
	Code string `json:"code" binding:"required,notblank,max=10"`
	Name string `json:"name" binding:"required,min=1,max=50"`
}

func (r ColorRequest) ToDomain() *domain.Color {
	return &domain.Color{Code: r.Code, Name: r.Name}
}

// MakerRequest creates or updates a vehicle manufacturer.
type MakerRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

func (r MakerRequest) ToDomain() *domain.Maker {
	return &domain.Maker{Name: r.Name}
}

// FuelTypeRequest creates or updates a global fuel type.
type FuelTypeRequest struct {
	Code string `json:"code" binding:"required,notblank,max=10"`
	Name string `json:"name" binding:"required,min=1,max=50"`
}

func (r FuelTypeRequest) ToDomain() *domain.FuelType {
	return &domain.FuelType{Code: r.Code, Name: r.Name}
}
