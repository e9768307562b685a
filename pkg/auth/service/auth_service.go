package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"peerplan/entities"
)

var (
	ErrUserExists         = errors.New("user with this email or student ID already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	StudentID string `json:"studentId"`
}

// TokenClaims is what gets embedded in every issued JWT.
type TokenClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(req RegisterRequest) (*entities.User, string, error)
	Login(email, password string) (*entities.User, string, error)
	VerifyToken(token string) (*TokenClaims, error)
	GetUserByID(id uint) (*entities.User, error)
}
