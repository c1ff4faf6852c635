package domain

// RefEntity is implemented by every reference-data record handled by the
// generic controller. The natural key combines with the tenant id to form the
// composite uniqueness constraint; global entities report an empty tenant id.
type RefEntity interface {
	NaturalKey() string
	SetNaturalKey(key string)
	TenantID() string
	SetTenantID(companyID string)
	Audit() *AuditFields
	// DefaultFlag reports whether this record claims the per-tenant singleton
	// default slot. Entities without the flag always return false.
	DefaultFlag() bool
}

// Bank is a tenant-scoped bank account used for settlement.
// At most one bank per tenant may have IsDefault set.
type Bank struct {
	CompanyID     string `json:"companyID"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	BranchName    string `json:"branchName"`
	IsDefault     bool   `json:"isDefault"`
	AuditFields
}

func (b *Bank) NaturalKey() string { return b.AccountNumber }
func (b *Bank) SetNaturalKey(key string) { b.AccountNumber = key }
func (b *Bank) TenantID() string { return b.CompanyID }
func (b *Bank) SetTenantID(id string) { b.CompanyID = id }
func (b *Bank) Audit() *AuditFields { return &b.AuditFields }
func (b *Bank) DefaultFlag() bool { return b.IsDefault }

// CounterpartyKind distinguishes the business relationship of a counterparty.
type CounterpartyKind string

const (
	CounterpartyCustomer CounterpartyKind = "CUSTOMER"
	CounterpartySupplier CounterpartyKind = "SUPPLIER"
	CounterpartyShipper  CounterpartyKind = "SHIPPER"
)

// Counterparty is a business partner referenced by purchase, sale, shipment,
// repair, local-transport and invoice records.
type Counterparty struct {
	CompanyID string           `json:"companyID"`
	Code      string           `json:"code"`
	Name      string           `json:"name"`
	Kind      CounterpartyKind `json:"kind"`
	AuditFields
}

func (c *Counterparty) NaturalKey() string { return c.Code }
func (c *Counterparty) SetNaturalKey(key string) { c.Code = key }
func (c *Counterparty) TenantID() string { return c.CompanyID }
func (c *Counterparty) SetTenantID(id string) { c.CompanyID = id }
func (c *Counterparty) Audit() *AuditFields { return &c.AuditFields }
func (c *Counterparty) DefaultFlag() bool { return false }

// Country is a destination country for vehicle export.
type Country struct {
	CompanyID string `json:"companyID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	AuditFields
}

func (c *Country) NaturalKey() string { return c.Code }
func (c *Country) SetNaturalKey(key string) { c.Code = key }
func (c *Country) TenantID() string { return c.CompanyID }
func (c *Country) SetTenantID(id string) { c.CompanyID = id }
func (c *Country) Audit() *AuditFields { return &c.AuditFields }
func (c *Country) DefaultFlag() bool { return false }

// VehicleType is a body-style classification (sedan, truck, ...).
type VehicleType struct {
	CompanyID string `json:"companyID"`
	Name      string `json:"vehicleType"`
	AuditFields
}

func (v *VehicleType) NaturalKey() string { return v.Name }
func (v *VehicleType) SetNaturalKey(key string) { v.Name = key }
func (v *VehicleType) TenantID() string { return v.CompanyID }
func (v *VehicleType) SetTenantID(id string) { v.CompanyID = id }
func (v *VehicleType) Audit() *AuditFields { return &v.AuditFields }
func (v *VehicleType) DefaultFlag() bool { return false }

// Location is a vehicle storage yard or port.
type Location struct {
	CompanyID string `json:"companyID"`
	Name      string `json:"name"`
	AuditFields
}

func (l *Location) NaturalKey() string { return l.Name }
func (l *Location) SetNaturalKey(key string) { l.Name = key }
func (l *Location) TenantID() string { return l.CompanyID }
func (l *Location) SetTenantID(id string) { l.CompanyID = id }
func (l *Location) Audit() *AuditFields { return &l.AuditFields }
func (l *Location) DefaultFlag() bool { return false }

// Color is a vehicle exterior color.
type Color struct {
	CompanyID string `json:"companyID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	AuditFields
}

func (c *Color) NaturalKey() string { return c.Code }
func (c *Color) SetNaturalKey(key string) { c.Code = key }
func (c *Color) TenantID() string { return c.CompanyID }
func (c *Color) SetTenantID(id string) { c.CompanyID = id }
func (c *Color) Audit() *AuditFields { return &c.AuditFields }
func (c *Color) DefaultFlag() bool { return false }

// Maker is a vehicle manufacturer.
type Maker struct {
	CompanyID string `json:"companyID"`
	Name      string `json:"name"`
	AuditFields
}

func (m *Maker) NaturalKey() string { return m.Name }
func (m *Maker) SetNaturalKey(key string) { m.Name = key }
func (m *Maker) TenantID() string { return m.CompanyID }
func (m *Maker) SetTenantID(id string) { m.CompanyID = id }
func (m *Maker) Audit() *AuditFields { return &m.AuditFields }
func (m *Maker) DefaultFlag() bool { return false }

// FuelType is a global reference entity shared by all tenants; it has no
// tenant dimension and its TenantID is always empty.
type FuelType struct {
	Code string `json:"code"`
	Name string `json:"name"`
	AuditFields
}

func (f *FuelType) NaturalKey() string { return f.Code }
func (f *FuelType) SetNaturalKey(key string) { f.Code = key }
func (f *FuelType) TenantID() string { return "" }
func (f *FuelType) SetTenantID(string) {}
func (f *FuelType) Audit() *AuditFields { return &f.AuditFields }
func (f *FuelType) DefaultFlag() bool { return false }
