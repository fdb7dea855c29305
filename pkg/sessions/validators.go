package sessions

// LoginPayload represents the login request body. Principals log in by name,
// and the directory resolves the name to an id before verifying.
type LoginPayload struct {
	Name     string `json:"name" form:"name" validate:"required,max=200"`
	Password string `json:"password" form:"password" validate:"required"`
}

// ListSessionsQuery represents the query parameters for listing sessions.
// The default lists every session, ended ones included; pass active=true to
// filter.
type ListSessionsQuery struct {
	Active bool `query:"active"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	PrincipalID string `json:"principal_id"`
	Name        string `json:"name"`
}
