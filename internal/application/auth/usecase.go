package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/application/ports"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
	"github.com/jhoicas/marketplace-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil propio.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	profileRepo  repository.ProfileRepository
	tx           ports.TxRunner
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	businessRepo repository.BusinessRepository,
	profileRepo repository.ProfileRepository,
	tx ports.TxRunner,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		businessRepo: businessRepo,
		profileRepo:  profileRepo,
		tx:           tx,
		jwtCfg:       jwtCfg,
	}
}

// Register crea User + Business + Profile en una sola transacción.
// El primer registrante del business siempre queda como admin. Si la validación
// falla no se persiste ninguna de las tres entidades.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if in.Email == "" || in.Password == "" || in.CompanyName == "" {
		return nil, fmt.Errorf("%w: email, password y company_name son requeridos", domain.ErrValidation)
	}
	if in.Password != in.ConfirmPassword {
		return nil, fmt.Errorf("%w: password y confirm_password no coinciden", domain.ErrValidation)
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	business := &entity.Business{
		ID:          uuid.New().String(),
		Name:        in.CompanyName,
		Industry:    in.Industry,
		CompanySize: in.CompanySize,
		CreatedAt:   now,
	}
	profile := &entity.Profile{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		BusinessID: business.ID,
		Role:       entity.RoleAdmin, // primer registrante: siempre admin
		CreatedAt:  now,
	}

	err = uc.tx.Run(ctx, func(
		users repository.UserRepository,
		businesses repository.BusinessRepository,
		profiles repository.ProfileRepository,
	) error {
		if err := users.Create(user); err != nil {
			return err
		}
		if err := businesses.Create(business); err != nil {
			return err
		}
		return profiles.Create(profile)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		UserID:     user.ID,
		BusinessID: business.ID,
		ProfileID:  profile.ID,
		Role:       profile.Role,
	}, nil
}

// Login verifica email/password, genera JWT y retorna token + perfil.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	out, err := uc.buildUserResponse(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *out}, nil
}

// Me devuelve el usuario autenticado con su perfil y business.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return uc.buildUserResponse(user)
}

func (uc *AuthUseCase) buildUserResponse(user *entity.User) (*dto.UserResponse, error) {
	profile, err := uc.profileRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileMissing
	}
	business, err := uc.businessRepo.GetByID(profile.BusinessID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user, profile, business), nil
}

// ToUserResponse arma la respuesta de usuario con perfil, business y permisos.
func ToUserResponse(u *entity.User, p *entity.Profile, b *entity.Business) *dto.UserResponse {
	out := &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      p.Role,
		Permissions: dto.PermissionsResponse{
			CanCreateProduct:  p.CanCreateProduct(),
			CanApproveProduct: p.CanApproveProduct(),
			CanManageUsers:    p.CanManageUsers(),
		},
		CreatedAt: u.CreatedAt,
	}
	if b != nil {
		out.Business = &dto.BusinessResponse{
			ID:          b.ID,
			Name:        b.Name,
			Industry:    b.Industry,
			CompanySize: b.CompanySize,
			CreatedAt:   b.CreatedAt,
		}
	}
	return out
}
