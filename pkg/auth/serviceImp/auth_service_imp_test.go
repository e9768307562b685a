package serviceImp

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"peerplan/database"
	"peerplan/pkg/auth/repositoryImp"
	"peerplan/pkg/auth/service"
)

func newTestAuth(t *testing.T) service.AuthService {
	return newTestAuthWithSecret(t, "test-secret")
}

func newTestAuthWithSecret(t *testing.T, secret string) service.AuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewAuthService(repositoryImp.New(db), secret, time.Hour)
}

func validRegistration() service.RegisterRequest {
	return service.RegisterRequest{
		Email:     "lead@university.edu",
		Password:  "hunter22",
		FirstName: "Sam",
		LastName:  "Lead",
		StudentID: "S1234567",
	}
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	auth := newTestAuth(t)

	user, token, err := auth.Register(validRegistration())
	require.NoError(t, err)
	assert.NotZero(t, user.UserID)
	assert.NotEqual(t, "hunter22", user.Password)
	assert.NotEmpty(t, token)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, claims.UserID)
	assert.Equal(t, "lead@university.edu", claims.Email)

	logged, token2, err := auth.Login("lead@university.edu", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, logged.UserID)
	assert.NotEmpty(t, token2)
}

func TestRegisterDuplicate(t *testing.T) {
	auth := newTestAuth(t)
	_, _, err := auth.Register(validRegistration())
	require.NoError(t, err)

	dup := validRegistration()
	dup.StudentID = "S7654321"
	_, _, err = auth.Register(dup)
	assert.ErrorIs(t, err, service.ErrUserExists)
}

func TestRegisterValidation(t *testing.T) {
	auth := newTestAuth(t)

	short := validRegistration()
	short.Password = "abc"
	_, _, err := auth.Register(short)
	assert.Error(t, err)

	blank := validRegistration()
	blank.Email = ""
	_, _, err = auth.Register(blank)
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	auth := newTestAuth(t)
	_, _, err := auth.Register(validRegistration())
	require.NoError(t, err)

	_, _, err = auth.Login("lead@university.edu", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = auth.Login("nobody@university.edu", "hunter22")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestVerifyGarbageToken(t *testing.T) {
	auth := newTestAuth(t)
	_, err := auth.VerifyToken("not.a.jwt")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestVerifyTokenFromOtherSecret(t *testing.T) {
	a := newTestAuthWithSecret(t, "secret-a")
	b := newTestAuthWithSecret(t, "secret-b")

	_, token, err := a.Register(validRegistration())
	require.NoError(t, err)

	_, err = b.VerifyToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
