package services

import (
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// ServiceContainer bundles every service interface the handlers need. It is
// assembled once in main and passed down by reference.
type ServiceContainer struct {
	Token       TokenSvcFacade
	User        UserSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade

	Banks          RefDataSvc[*domain.Bank]
	Counterparties RefDataSvc[*domain.Counterparty]
	Countries      RefDataSvc[*domain.Country]
	VehicleTypes   RefDataSvc[*domain.VehicleType]
	Locations      RefDataSvc[*domain.Location]
	Colors         RefDataSvc[*domain.Color]
	Makers         RefDataSvc[*domain.Maker]
	FuelTypes      RefDataSvc[*domain.FuelType]

	VehiclePurchases VehiclePurchaseSvcFacade
	VehicleSales     VehicleSaleSvcFacade
}
