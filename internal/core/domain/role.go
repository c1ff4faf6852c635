package domain

// Role identifies a user's role within their company.
// The set is closed; there is no implicit hierarchy. Each operation declares
// its own allow-list and authorization is a pure membership check.
type Role string

const (
	RoleAdmin   Role = "AD"
	RoleManager Role = "MG"
	RoleStaff   Role = "ST"
)

// roleNames maps role identifiers to their display names.
var roleNames = map[Role]string{
	RoleAdmin:   "Administrator",
	RoleManager: "Manager",
	RoleStaff:   "Staff",
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// DisplayName returns the human-readable name for the role, or the raw
// identifier when the role is unknown.
func (r Role) DisplayName() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return string(r)
}

// RoleSet is an unordered collection of roles checked by membership.
type RoleSet []Role

// Contains reports whether the set includes the given role.
func (s RoleSet) Contains(r Role) bool {
	for _, member := range s {
		if member == r {
			return true
		}
	}
	return false
}

// Convenience sets used by route and entity configuration.
var (
	AdminOnly      = RoleSet{RoleAdmin}
	AdminOrManager = RoleSet{RoleAdmin, RoleManager}
	AnyRole        = RoleSet{RoleAdmin, RoleManager, RoleStaff}
)

// OperationRoles declares the independent allow-lists for the four generic
// reference-data operations. The sets are not required to be nested: a role
// may be allowed to create records it cannot delete.
type OperationRoles struct {
	Read   RoleSet
	Create RoleSet
	Update RoleSet
	Delete RoleSet
}
