package domain

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

// User is the backend's user record, cached in the session after login.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Auth couples a bearer token with its user record. The pair is stored
// together and treated as both-or-neither: a record missing either half is
// "not authenticated".
type Auth struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Valid reports whether the record is usable for authenticated calls.
func (a *Auth) Valid() bool {
	return a != nil && a.Token != "" && a.User.ID != 0
}

// IsAdmin reports whether the cached user carries the admin role.
func (a *Auth) IsAdmin() bool {
	return a.Valid() && a.User.Role == RoleAdmin
}
