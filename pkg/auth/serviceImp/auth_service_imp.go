package serviceImp

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"peerplan/entities"
	"peerplan/pkg/auth/repository"
	"peerplan/pkg/auth/service"
)

type authSvc struct {
	users     repository.UserRepository
	secret    []byte
	expiresIn time.Duration
}

func NewAuthService(users repository.UserRepository, secret string, expiresIn time.Duration) service.AuthService {
	return &authSvc{users: users, secret: []byte(secret), expiresIn: expiresIn}
}

func (s *authSvc) Register(req service.RegisterRequest) (*entities.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" || req.StudentID == "" {
		return nil, "", fmt.Errorf("all fields are required")
	}
	if len(req.Password) < 6 {
		return nil, "", fmt.Errorf("password must be at least 6 characters")
	}

	exists, err := s.users.ExistsByEmailOrStudentID(email, req.StudentID)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", service.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	u := &entities.User{
		Email:     email,
		Password:  string(hash),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		StudentID: strings.TrimSpace(req.StudentID),
	}
	if err := s.users.Create(u); err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(u)
	return u, token, err
}

func (s *authSvc) Login(email, password string) (*entities.User, string, error) {
	u, err := s.users.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", service.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, "", service.ErrInvalidCredentials
	}
	token, err := s.generateToken(u)
	return u, token, err
}

func (s *authSvc) generateToken(u *entities.User) (string, error) {
	now := time.Now()
	claims := service.TokenClaims{
		UserID: u.UserID,
		Email:  u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", u.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *authSvc) VerifyToken(tokenString string) (*service.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &service.TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, service.ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*service.TokenClaims)
	if !ok || !parsed.Valid {
		return nil, service.ErrInvalidToken
	}
	return claims, nil
}

func (s *authSvc) GetUserByID(id uint) (*entities.User, error) {
	return s.users.FindByID(id)
}
