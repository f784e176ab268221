package service

import (
	"context"
	"testing"

	"taskhub/internal/model"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))

	got, err := svc.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Impostor", "alice@example.com", "other456")
	require.ErrorIs(t, err, ErrUserExists)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("email = ?", "alice@example.com").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestLogin_SameErrorForBothFailures(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, errUnknown := svc.Login(ctx, "nobody@example.com", "secret123")
	_, errWrongPw := svc.Login(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	require.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	require.ErrorIs(t, svc.ChangePassword(ctx, u.ID, "wrong", "newpass123"), ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(ctx, u.ID, "secret123", "newpass123"))

	_, err = svc.Login(ctx, "alice@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "alice@example.com", "newpass123")
	require.NoError(t, err)
}

func TestListUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()

	createUser(t, db, "bob")
	createUser(t, db, "alice")

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "alice", users[0].Name)
	require.Equal(t, "bob", users[1].Name)
}
