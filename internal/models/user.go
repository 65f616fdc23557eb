package models

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID          int        `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Password    string     `json:"-"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	AvatarPath  *string    `json:"image,omitempty"`
	IsStaff     bool       `json:"is_staff"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Role maps the staff flag onto the role names carried in JWT claims.
func (u User) Role() string {
	if u.IsStaff {
		return RoleAdmin
	}
	return RoleUser
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

type Session struct {
	UserID       int       `json:"user_id"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Tokens
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}
