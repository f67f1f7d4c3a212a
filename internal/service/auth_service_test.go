package service

import (
	"context"
	"errors"
	"testing"

	"agronat/internal/apierror"
	"agronat/internal/auth"
	"agronat/internal/dto"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture() (*AuthService, *stubUsuarioRepo) {
	usuarios := newStubUsuarioRepo()
	tokens := auth.NewTokenManager("test-secret", 1)
	return NewAuthService(usuarios, tokens, zerolog.Nop()), usuarios
}

func TestRegisterGuardaHashNoElPassword(t *testing.T) {
	svc, usuarios := newAuthFixture()

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@agronat.test",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, "empleado", resp.User.Rol)

	var stored string
	for _, u := range usuarios.usuarios {
		stored = u.PasswordHash
	}
	require.NotEmpty(t, stored)
	assert.NotEqual(t, "secreto123", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("secreto123")))
}

func TestRegisterEmailDuplicado(t *testing.T) {
	svc, usuarios := newAuthFixture()
	usuarios.add("Ana", "Perez", "ana@agronat.test")

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Otra",
		Email:    "ana@agronat.test",
		Password: "secreto123",
	})
	require.Error(t, err)
	var ae *apierror.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apierror.KindConflict, ae.Kind)
}

func TestLoginEmiteTokenVerificable(t *testing.T) {
	svc, _ := newAuthFixture()
	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Ana",
		Lastname: "Perez",
		Email:    "ana@agronat.test",
		Password: "secreto123",
		Rol:      "administrador",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@agronat.test",
		Password: "secreto123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "administrador", resp.Rol)
	assert.Greater(t, resp.Exp, resp.Iat)

	claims, err := auth.NewTokenManager("test-secret", 1).Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@agronat.test", claims.Email)
	assert.Equal(t, "administrador", claims.Rol)
}

func TestLoginPasswordIncorrecto(t *testing.T) {
	svc, _ := newAuthFixture()
	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@agronat.test",
		Password: "secreto123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@agronat.test",
		Password: "equivocado",
	})
	require.Error(t, err)
	var ae *apierror.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apierror.KindAuth, ae.Kind)
}

func TestLoginEmailDesconocido(t *testing.T) {
	svc, _ := newAuthFixture()
	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@agronat.test",
		Password: "lo-que-sea",
	})
	require.Error(t, err)
	var ae *apierror.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apierror.KindNotFound, ae.Kind)
}

func TestParseRechazaSecretoDistinto(t *testing.T) {
	u := newStubUsuarioRepo()
	u.add("Ana", "Perez", "ana@agronat.test")
	var token string
	{
		tokens := auth.NewTokenManager("secreto-a", 1)
		svcUser, err := u.FindByEmail(context.Background(), "ana@agronat.test")
		require.NoError(t, err)
		token, _, _, err = tokens.Sign(svcUser)
		require.NoError(t, err)
	}
	_, err := auth.NewTokenManager("secreto-b", 1).Parse(token)
	require.Error(t, err)
}
