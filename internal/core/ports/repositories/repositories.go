package repositories

import (
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// RepositoryProvider holds all repository interfaces needed by services.
// Concrete implementations are assembled by the storage layer and passed in
// during service-container construction.
type RepositoryProvider struct {
	UserRepo UserRepository

	BankRepo         RefDataRepository[*domain.Bank]
	CounterpartyRepo RefDataRepository[*domain.Counterparty]
	CountryRepo      RefDataRepository[*domain.Country]
	VehicleTypeRepo  RefDataRepository[*domain.VehicleType]
	LocationRepo     RefDataRepository[*domain.Location]
	ColorRepo        RefDataRepository[*domain.Color]
	MakerRepo        RefDataRepository[*domain.Maker]
	FuelTypeRepo     RefDataRepository[*domain.FuelType]

	VehiclePurchaseRepo VehiclePurchaseRepository
	VehicleSaleRepo     VehicleSaleRepository
}
