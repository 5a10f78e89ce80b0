package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	HashedPassword string `json:"-"`
	Role           string `json:"role"`
	IsActive       bool   `json:"is_active"`
	PhoneNumber    string `json:"phone_number"`
}

// Identity is the resolved caller of a single request, decoded from a
// verified bearer token. It lives in the request context for the duration
// of that request only and is never persisted or shared across requests.
type Identity struct {
	Username string
	UserID   int64
	Role     string
}
