package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	portssvc "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/services"
	"github.com/kurumaops/dealer_mgmt_app/internal/dto"
)

// registerReferenceDataRoutes mounts every reference-data entity. The response
// key wraps list payloads; the url param names both the update path segment and
// the delete query parameter.
func registerReferenceDataRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	RegisterRefDataRoutes[*domain.Bank, dto.BankRequest](
		rg, "banks", services.Banks, "banks", "accountNumber")
	RegisterRefDataRoutes[*domain.Counterparty, dto.CounterpartyRequest](
		rg, "counterparties", services.Counterparties, "counterparties", "code")
	RegisterRefDataRoutes[*domain.Country, dto.CountryRequest](
		rg, "countries", services.Countries, "countries", "code")
	RegisterRefDataRoutes[*domain.VehicleType, dto.VehicleTypeRequest](
		rg, "vehicle-types", services.VehicleTypes, "vehicleTypes", "vehicleType")
	RegisterRefDataRoutes[*domain.Location, dto.LocationRequest](
		rg, "locations", services.Locations, "locations", "name")
	RegisterRefDataRoutes[*domain.Color, dto.ColorRequest](
		rg, "colors", services.Colors, "colors", "code")
	RegisterRefDataRoutes[*domain.Maker, dto.MakerRequest](
		rg, "makers", services.Makers, "makers", "name")
	RegisterRefDataRoutes[*domain.FuelType, dto.FuelTypeRequest](
		rg, "fuel-types", services.FuelTypes, "fuelTypes", "code")
}
