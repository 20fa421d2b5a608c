package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleGuest    Role = "guest"
	RoleMerchant Role = "merchant"
	RoleAdmin    Role = "admin"
)

var roleRank = map[Role]int{
	RoleGuest:    1,
	RoleMerchant: 2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r is the same as or above floor in the hierarchy.
func (r Role) AtLeast(floor Role) bool {
	return roleRank[r] >= roleRank[floor] && r.IsValid()
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
