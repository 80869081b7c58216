package domain

// Role represents the combat role a character fills in a party
type Role string

const (
	RoleDPS     Role = "DPS"
	RoleSubDPS  Role = "Sub-DPS"
	RoleSupport Role = "Support"
	RoleHealer  Role = "Healer"
)

// AllRoles contains all valid roles in order
var AllRoles = []Role{RoleDPS, RoleSubDPS, RoleSupport, RoleHealer}

// IsValid checks if a role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleDPS, RoleSubDPS, RoleSupport, RoleHealer:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// DealsDamage reports whether the role is a damage dealer
func (r Role) DealsDamage() bool {
	return r == RoleDPS || r == RoleSubDPS
}

// favorableRolePairs lists the role combinations that work well together.
// Pairs are stored once; lookups check both orders.
var favorableRolePairs = [][2]Role{
	{RoleDPS, RoleSupport},
	{RoleDPS, RoleSubDPS},
	{RoleDPS, RoleHealer},
	{RoleSubDPS, RoleSupport},
}

// IsFavorableRolePair reports whether two roles form a favorable pairing, in either order
func IsFavorableRolePair(a, b Role) bool {
	for _, p := range favorableRolePairs {
		if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
			return true
		}
	}
	return false
}
