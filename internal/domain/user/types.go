package user

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var rank = map[Role]int{
	RoleUser:  1,
	RoleAdmin: 2,
}

func NewRole(s string) (Role, error) {
	if _, ok := rank[Role(s)]; !ok {
		return "", ErrInvalidRole
	}
	return Role(s), nil
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	_, ok := rank[r]
	return ok
}

// Satisfies reports whether r grants at least the access of required.
// Admins satisfy every guest-level requirement.
func (r Role) Satisfies(required Role) bool {
	have, ok := rank[r]
	return ok && have >= rank[required]
}
