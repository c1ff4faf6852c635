package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	portsrepo "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/repositories"
)

// RepositoryContainer bundles every repository over one shared pool. The pool
// is created once in main and injected here.
type RepositoryContainer struct {
	Users *PgxUserRepository

	Banks          *RefDataRepository[*domain.Bank]
	Counterparties *RefDataRepository[*domain.Counterparty]
	Countries      *RefDataRepository[*domain.Country]
	VehicleTypes   *RefDataRepository[*domain.VehicleType]
	Locations      *RefDataRepository[*domain.Location]
	Colors         *RefDataRepository[*domain.Color]
	Makers         *RefDataRepository[*domain.Maker]
	FuelTypes      *RefDataRepository[*domain.FuelType]

	VehiclePurchases *PgxVehiclePurchaseRepository
	VehicleSales     *PgxVehicleSaleRepository
}

// NewRepositoryContainer wires all repositories over the shared pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		Users:            NewUserRepository(pool),
		Banks:            NewBankRepository(pool),
		Counterparties:   NewCounterpartyRepository(pool),
		Countries:        NewCountryRepository(pool),
		VehicleTypes:     NewVehicleTypeRepository(pool),
		Locations:        NewLocationRepository(pool),
		Colors:           NewColorRepository(pool),
		Makers:           NewMakerRepository(pool),
		FuelTypes:        NewFuelTypeRepository(pool),
		VehiclePurchases: NewVehiclePurchaseRepository(pool),
		VehicleSales:     NewVehicleSaleRepository(pool),
	}
}

// Provider exposes the container behind the port interfaces the service layer
// is built against.
func (c *RepositoryContainer) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:            c.Users,
		BankRepo:            c.Banks,
		CounterpartyRepo:    c.Counterparties,
		CountryRepo:         c.Countries,
		VehicleTypeRepo:     c.VehicleTypes,
		LocationRepo:        c.Locations,
		ColorRepo:           c.Colors,
		MakerRepo:           c.Makers,
		FuelTypeRepo:        c.FuelTypes,
		VehiclePurchaseRepo: c.VehiclePurchases,
		VehicleSaleRepo:     c.VehicleSales,
	}
}
