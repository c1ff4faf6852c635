package services

import (
	"strings"

	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	portsrepo "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/services"
	"github.com/kurumaops/dealer_mgmt_app/internal/platform/cache"
	"github.com/kurumaops/dealer_mgmt_app/pkg/config"
)

// NormalizeCode normalizes user-supplied code keys so "jp", " JP " and "Jp"
// address the same record.
func NormalizeCode(k string) string {
	return strings.ToUpper(strings.TrimSpace(k))
}

func trimKey(k string) string {
	return strings.TrimSpace(k)
}

// NewServiceContainer creates the service container with properly initialized
// dependencies. The per-entity configs below are the single source of truth for
// role policy, key normalization and default-flag behavior; c may be nil to
// disable the list cache.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, c cache.Cache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	ttl := cfg.ReferenceDataCacheTTL

	// Role sets are independent per operation and deliberately not nested:
	// staff can register the bank accounts and yards they work with day to day,
	// but destructive operations stay with managers or admins.
	container.Banks = NewRefDataService(RefDataConfig{
		Label: "bank",
		Roles: domain.OperationRoles{
			Read:   domain.AnyRole,
			Create: domain.AnyRole,
			Update: domain.AdminOrManager,
			Delete: domain.AdminOnly,
		},
		Transform:     trimKey,
		SingleDefault: true,
		CacheTTL:      ttl,
	}, repos.BankRepo, c)

	container.Counterparties = NewRefDataService(RefDataConfig{
		Label: "counterparty",
		Roles: domain.OperationRoles{
			Read:   domain.AnyRole,
			Create: domain.AdminOrManager,
			Update: domain.AdminOrManager,
			Delete: domain.AdminOnly,
		},
		Transform: NormalizeCode,
		CacheTTL:  ttl,
	}, repos.CounterpartyRepo, c)

	container.Countries = NewRefDataService(RefDataConfig{
		Label: "country",
		Roles: domain.OperationRoles{
			Read:   domain.AnyRole,
			Create: domain.AdminOrManager,
			Update: domain.AdminOrManager,
			Delete: domain.AdminOrManager,
		},
		Transform: NormalizeCode,
		CacheTTL:  ttl,
	}, repos.CountryRepo, c)

	container.VehicleTypes = NewRefDataService(RefDataConfig{
		Label: "vehicle type",
		Roles: domain.OperationRoles{
			Read:   domain.AnyRole,
			Create: domain.AdminOrManager,
			Update: domain.AdminOrManager,
			Delete: domain.AdminOrManager,
		},
		Transform: trimKey,
		CacheTTL:  ttl,
	}, repos.VehicleTypeRepo, c)

	container.Locations = NewRefDataService(RefDataConfig{
		Label: "location",
		Roles: domain.OperationRoles{
			Read:   domain.AnyRole,
			Create: domain.AnyRole,
			Update: domain.AdminOrManager,
			Delete: domain.AdminOnly,
		},
		Transform: NormalizeCode,
		CacheTTL:  ttl,
	}, repos.LocationRepo, c)

	container.Colors = NewRefDataService(RefDataConfig{
		Label: "color",
		Roles: domain.OperationRoles{
			Read:   domain.AnyRole,
			Create: domain.AdminOrManager,
			Update: domain.AdminOrManager,
			Delete: domain.AdminOrManager,
		},
		Transform: NormalizeCode,
		CacheTTL:  ttl,
	}, repos.ColorRepo, c)

	container.Makers = NewRefDataService(RefDataConfig{
		Label: "maker",
		Roles: domain.OperationRoles{
			Read:   domain.AnyRole,
			Create: domain.AdminOrManager,
			Update: domain.AdminOrManager,
			Delete: domain.AdminOrManager,
		},
		Transform: trimKey,
		CacheTTL:  ttl,
	}, repos.MakerRepo, c)

	// Fuel types are a shared catalog across all tenants; only admins curate it.
	container.FuelTypes = NewRefDataService(RefDataConfig{
		Label: "fuel type",
		Roles: domain.OperationRoles{
			Read:   domain.AnyRole,
			Create: domain.AdminOnly,
			Update: domain.AdminOnly,
			Delete: domain.AdminOnly,
		},
		Transform: NormalizeCode,
		Global:    true,
		CacheTTL:  ttl,
	}, repos.FuelTypeRepo, c)

	container.VehiclePurchases = NewVehiclePurchaseService(repos.VehiclePurchaseRepo)
	container.VehicleSales = NewVehicleSaleService(repos.VehicleSaleRepo)

	return container
}
