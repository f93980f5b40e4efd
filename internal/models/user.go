package models

const RoleAdmin = "ADMIN"

// User is the profile the backend identity endpoints return. Login and
// register responses carry the identifier as "userId" while /auth/me
// returns "id"; both are kept and Ident resolves whichever is set.
type User struct {
	ID       int64    `json:"id,omitempty"`
	UserID   int64    `json:"userId,omitempty"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles"`
}

func (u *User) Ident() int64 {
	if u.UserID != 0 {
		return u.UserID
	}
	return u.ID
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AuthResponse is the body of successful login/register calls: the token
// pair plus the flat profile fields.
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User
}

// RegisterRequest is the caller-supplied registration payload, forwarded
// to the backend as-is.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
