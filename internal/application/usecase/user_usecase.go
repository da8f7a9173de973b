package usecase

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
)

// UserUseCase administración de usuarios (solo admin). Todas las operaciones
// quedan delimitadas al business del admin; un usuario de otro business
// responde NotFound.
type UserUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	tx          ports.TxRunner
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, tx ports.TxRunner) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, profileRepo: profileRepo, tx: tx}
}

// List lista los usuarios del business del admin con sus roles.
func (uc *UserUseCase) List(caller *entity.Profile, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	rows, err := uc.userRepo.ListByBusiness(caller.BusinessID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, *toManagedUserResponse(&row.User, &row.Profile))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Create crea usuario + perfil en el business del admin, en una transacción.
func (uc *UserUseCase) Create(ctx context.Context, caller *entity.Profile, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" {
		return nil, fmt.Errorf("%w: email, password, first_name y last_name son requeridos", domain.ErrValidation)
	}
	if !entity.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, in.Role)
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
	profile := &entity.Profile{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		BusinessID: caller.BusinessID,
		Role:       in.Role,
		CreatedAt:  now,
	}
	err = uc.tx.Run(ctx, func(
		users repository.UserRepository,
		_ repository.BusinessRepository,
		profiles repository.ProfileRepository,
	) error {
		if err := users.Create(user); err != nil {
			return err
		}
		return profiles.Create(profile)
	})
	if err != nil {
		return nil, err
	}
	return toManagedUserResponse(user, profile), nil
}

// Update actualiza datos y/o rol de un usuario del business del admin.
func (uc *UserUseCase) Update(ctx context.Context, caller *entity.Profile, userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, profile, err := uc.loadScoped(caller, userID)
	if err != nil {
		return nil, err
	}
	if in.Email != nil && *in.Email != user.Email {
		other, err := uc.userRepo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, *in.Role)
		}
		profile.Role = *in.Role
	}
	user.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(
		users repository.UserRepository,
		_ repository.BusinessRepository,
		profiles repository.ProfileRepository,
	) error {
		if err := users.Update(user); err != nil {
			return err
		}
		return profiles.Update(profile)
	})
	if err != nil {
		return nil, err
	}
	return toManagedUserResponse(user, profile), nil
}

// Delete elimina un usuario del business del admin. Un usuario con rol admin
// nunca se elimina, sin importar quién lo pida.
func (uc *UserUseCase) Delete(ctx context.Context, caller *entity.Profile, userID string) error {
	_, profile, err := uc.loadScoped(caller, userID)
	if err != nil {
		return err
	}
	if profile.Role == entity.RoleAdmin {
		return domain.ErrAdminUndeletable
	}
	return uc.tx.Run(ctx, func(
		users repository.UserRepository,
		_ repository.BusinessRepository,
		profiles repository.ProfileRepository,
	) error {
		if err := profiles.DeleteByUserID(userID); err != nil {
			return err
		}
		return users.Delete(userID)
	})
}

// loadScoped carga user + profile y verifica pertenencia al business del admin.
func (uc *UserUseCase) loadScoped(caller *entity.Profile, userID string) (*entity.User, *entity.Profile, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrNotFound
	}
	profile, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil || profile.BusinessID != caller.BusinessID {
		return nil, nil, domain.ErrNotFound
	}
	return user, profile, nil
}

func toManagedUserResponse(u *entity.User, p *entity.Profile) *dto.UserResponse {
	return &dto.UserResponse{
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
}
