package usecase

import (
	"fmt"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// DashboardUseCase arma el payload del dashboard según el rol del caller
// y las estadísticas admin.
type DashboardUseCase struct {
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	statsRepo    repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	userRepo repository.UserRepository,
	businessRepo repository.BusinessRepository,
	statsRepo repository.StatsRepository,
) *DashboardUseCase {
	return &DashboardUseCase{userRepo: userRepo, businessRepo: businessRepo, statsRepo: statsRepo}
}

// Get devuelve el dashboard del rol resuelto: usuario, permisos y el bloque
// de stats que corresponde (GET /api/dashboard enruta por rol).
func (uc *DashboardUseCase) Get(caller *entity.Profile) (*dto.DashboardResponse, error) {
	user, err := uc.userRepo.GetByID(caller.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	business, err := uc.businessRepo.GetByID(caller.BusinessID)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		User: dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      caller.Role,
			CreatedAt: user.CreatedAt,
		},
		Permissions: dto.PermissionsResponse{
			CanCreateProduct:  caller.CanCreateProduct(),
			CanApproveProduct: caller.CanApproveProduct(),
			CanManageUsers:    caller.CanManageUsers(),
		},
		DashboardType: caller.Role,
	}
	if business != nil {
		out.User.Business = &dto.BusinessResponse{
			ID:          business.ID,
			Name:        business.Name,
			Industry:    business.Industry,
			CompanySize: business.CompanySize,
			CreatedAt:   business.CreatedAt,
		}
	}

	switch caller.Role {
	case entity.RoleAdmin:
		if business != nil {
			totalUsers, err := uc.statsRepo.CountUsersByBusiness(caller.BusinessID)
			if err != nil {
				return nil, err
			}
			out.BusinessStats = &dto.BusinessStatsResponse{
				TotalUsers:   totalUsers,
				BusinessName: business.Name,
				Industry:     business.Industry,
				CompanySize:  business.CompanySize,
			}
		}
		if err := uc.fillProductStats(caller.BusinessID, out); err != nil {
			return nil, err
		}
	case entity.RoleEditor, entity.RoleApprover:
		if err := uc.fillProductStats(caller.BusinessID, out); err != nil {
			return nil, err
		}
	case entity.RoleViewer:
		available, err := uc.statsRepo.CountProductsByBusinessAndStatus(caller.BusinessID, entity.StatusApproved)
		if err != nil {
			return nil, err
		}
		categories, err := uc.statsRepo.CountCategoriesByBusiness(caller.BusinessID)
		if err != nil {
			return nil, err
		}
		out.ViewerStats = &dto.ViewerStatsResponse{
			AvailableProducts: available,
			Categories:        categories,
		}
	}
	return out, nil
}

// Stats estadísticas de GET /api/admin/stats, delimitadas al business del admin.
func (uc *DashboardUseCase) Stats(caller *entity.Profile) (*dto.AdminStatsResponse, error) {
	totalUsers, err := uc.statsRepo.CountUsersByBusiness(caller.BusinessID)
	if err != nil {
		return nil, err
	}
	totalProducts, err := uc.statsRepo.CountProductsByBusiness(caller.BusinessID)
	if err != nil {
		return nil, err
	}
	pending, err := uc.statsRepo.CountProductsByBusinessAndStatus(caller.BusinessID, entity.StatusPendingApproval)
	if err != nil {
		return nil, err
	}
	return &dto.AdminStatsResponse{
		TotalUsers:       totalUsers,
		TotalProducts:    totalProducts,
		PendingApprovals: pending,
	}, nil
}

// Activities feed de actividad reciente, derivado de los productos del business.
func (uc *DashboardUseCase) Activities(caller *entity.Profile, limit int) ([]dto.ActivityResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	rows, err := uc.statsRepo.RecentActivity(caller.BusinessID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ActivityResponse{
			User:   row.UserName,
			Action: activityAction(row),
			Time:   row.At,
			Status: row.Status,
		})
	}
	return out, nil
}

func (uc *DashboardUseCase) fillProductStats(businessID string, out *dto.DashboardResponse) error {
	stats := &dto.ProductStatsResponse{}
	total, err := uc.statsRepo.CountProductsByBusiness(businessID)
	if err != nil {
		return err
	}
	stats.Total = total
	for status, dst := range map[string]*int{
		entity.StatusDraft:           &stats.Draft,
		entity.StatusPendingApproval: &stats.PendingApproval,
		entity.StatusApproved:        &stats.Approved,
		entity.StatusRejected:        &stats.Rejected,
	} {
		n, err := uc.statsRepo.CountProductsByBusinessAndStatus(businessID, status)
		if err != nil {
			return err
		}
		*dst = n
	}
	out.ProductStats = stats
	return nil
}

func activityAction(row repository.ActivityResult) string {
	switch row.Status {
	case entity.StatusDraft:
		return fmt.Sprintf("Creó el producto %q", row.ProductName)
	case entity.StatusPendingApproval:
		return fmt.Sprintf("Envió a aprobación el producto %q", row.ProductName)
	case entity.StatusApproved:
		return fmt.Sprintf("Producto %q aprobado", row.ProductName)
	case entity.StatusRejected:
		return fmt.Sprintf("Producto %q rechazado", row.ProductName)
	default:
		return fmt.Sprintf("Actualizó el producto %q", row.ProductName)
	}
}
