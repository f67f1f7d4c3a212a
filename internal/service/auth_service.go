package service

import (
	"context"
	"errors"
	"time"

	"agronat/internal/apierror"
	"agronat/internal/auth"
	"agronat/internal/dto"
	"agronat/internal/model"
	"agronat/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles user registration, login and profile reads. Passwords
// are stored as bcrypt hashes only.
type AuthService struct {
	usuarios repository.UsuarioRepository
	tokens   *auth.TokenManager
	log      zerolog.Logger
}

func NewAuthService(usuarios repository.UsuarioRepository, tokens *auth.TokenManager, log zerolog.Logger) *AuthService {
	return &AuthService{usuarios: usuarios, tokens: tokens, log: log}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if _, err := s.usuarios.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Conflict("el email ya esta registrado: %s", req.Email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	rol := req.Rol
	if rol == "" {
		rol = "empleado"
	}
	u := &model.Usuario{
		Name:         req.Name,
		Lastname:     req.Lastname,
		Nickname:     req.Nickname,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          rol,
		Image:        req.Image,
		Domicilio: model.Domicilio{
			Calle:        req.Domicilio.Calle,
			Numero:       req.Domicilio.Numero,
			Ciudad:       req.Domicilio.Ciudad,
			Provincia:    req.Domicilio.Provincia,
			CodigoPostal: req.Domicilio.CodigoPostal,
		},
	}
	if err := s.usuarios.Create(ctx, u); err != nil {
		return nil, apierror.Internal(err)
	}

	s.log.Info().Str("email", u.Email).Str("rol", u.Rol).Msg("usuario registrado")

	resp := &dto.RegisterResponse{Status: "ok", Message: "Usuario registrado correctamente"}
	resp.User.ID = u.ID.String()
	resp.User.Email = u.Email
	resp.User.Rol = u.Rol
	return resp, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := s.usuarios.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, notFoundOr(err, "usuario no encontrado")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Auth("credenciales invalidas")
	}

	token, iat, exp, err := s.tokens.Sign(u)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	return &dto.LoginResponse{
		Token:     token,
		Nombre:    u.Name,
		Apellido:  u.Lastname,
		Username:  u.Nickname,
		Image:     u.Image,
		Rol:       u.Rol,
		Email:     u.Email,
		Domicilio: toDomicilioDTO(u.Domicilio),
		FechaCreacion: u.CreateAt.Format(time.RFC3339),
		Iat:           iat,
		Exp:           exp,
	}, nil
}

func (s *AuthService) Profile(ctx context.Context, idUsuario string) (*dto.UsuarioResponse, error) {
	id, err := uuid.Parse(idUsuario)
	if err != nil {
		return nil, apierror.Validation("id de usuario invalido: %s", idUsuario)
	}
	u, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "usuario no encontrado: %s", idUsuario)
	}
	resp := toUsuarioResponse(u)
	return &resp, nil
}

func (s *AuthService) List(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.usuarios.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, toUsuarioResponse(&usuarios[i]))
	}
	return out, nil
}

func toDomicilioDTO(d model.Domicilio) dto.DomicilioDTO {
	return dto.DomicilioDTO{
		Calle:        d.Calle,
		Numero:       d.Numero,
		Ciudad:       d.Ciudad,
		Provincia:    d.Provincia,
		CodigoPostal: d.CodigoPostal,
	}
}

func toUsuarioResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Lastname:  u.Lastname,
		Nickname:  u.Nickname,
		Email:     u.Email,
		Rol:       u.Rol,
		Image:     u.Image,
		Domicilio: toDomicilioDTO(u.Domicilio),
		CreateAt:  u.CreateAt.Format(time.RFC3339),
	}
}
