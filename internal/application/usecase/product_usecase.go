package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos + workflow de aprobación.
// Todas las operaciones reciben el Profile resuelto del caller de forma
// explícita; nada se lee de estado ambiente. El scoping por business ocurre
// antes de consultar la tabla de transiciones: un producto de otro business
// responde NotFound, nunca Forbidden.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto en draft dentro del business del caller.
func (uc *ProductUseCase) Create(caller *entity.Profile, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	if in.Category == "" {
		in.Category = entity.CategoryOther
	}
	if !entity.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrValidation, in.Category)
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		BusinessID:  caller.BusinessID,
		CreatedBy:   caller.UserID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Status:      entity.StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Get obtiene un producto visible para el caller: los del propio business en
// cualquier estado, los de otros businesses solo si están aprobados.
func (uc *ProductUseCase) Get(caller *entity.Profile, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.BusinessID != caller.BusinessID && product.Status != entity.StatusApproved {
		return nil, domain.ErrNotFound
	}
	// Un viewer solo ve aprobados, incluso dentro de su propio business.
	if caller.Role == entity.RoleViewer && product.Status != entity.StatusApproved {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista los productos del business del caller, opcionalmente filtrados por
// estado. Para un viewer el filtro queda fijado en approved.
func (uc *ProductUseCase) List(caller *entity.Profile, status string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	if status != "" && !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrValidation, status)
	}
	if caller.Role == entity.RoleViewer {
		status = entity.StatusApproved
	}
	page.DefaultPage()
	list, err := uc.repo.ListByBusiness(caller.BusinessID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list, page), nil
}

// ListPublic lista productos aprobados de todos los businesses. No requiere autenticación.
func (uc *ProductUseCase) ListPublic(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByStatus(entity.StatusApproved, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list, page), nil
}

// ListPending cola de revisión: pending_approval de todos los businesses.
// Solo lectura; las transiciones siguen delimitadas al business del caller.
func (uc *ProductUseCase) ListPending(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByStatus(entity.StatusPendingApproval, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list, page), nil
}

// Update actualización parcial de campos. El estado nunca cambia por aquí.
// Un no-admin solo puede tocar productos que él mismo creó.
func (uc *ProductUseCase) Update(caller *entity.Profile, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.loadScoped(caller, id)
	if err != nil {
		return nil, err
	}
	if caller.Role != entity.RoleAdmin && product.CreatedBy != caller.UserID {
		return nil, domain.ErrForbidden
	}
	if err := applyProductFields(product, in); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del business del caller. Mismo criterio de
// propiedad que Update.
func (uc *ProductUseCase) Delete(caller *entity.Profile, id string) error {
	product, err := uc.loadScoped(caller, id)
	if err != nil {
		return err
	}
	if caller.Role != entity.RoleAdmin && product.CreatedBy != caller.UserID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// Submit mueve draft → pending_approval. Solo el creador del draft (o un
// admin) puede enviarlo; otros miembros del business reciben Forbidden.
func (uc *ProductUseCase) Submit(caller *entity.Profile, id string) (*dto.ProductResponse, error) {
	return uc.transition(caller, id, entity.StatusDraft, entity.StatusPendingApproval, true)
}

// Approve mueve pending_approval → approved.
func (uc *ProductUseCase) Approve(caller *entity.Profile, id string) (*dto.ProductResponse, error) {
	return uc.transition(caller, id, entity.StatusPendingApproval, entity.StatusApproved, false)
}

// Reject mueve pending_approval → rejected.
func (uc *ProductUseCase) Reject(caller *entity.Profile, id string) (*dto.ProductResponse, error) {
	return uc.transition(caller, id, entity.StatusPendingApproval, entity.StatusRejected, false)
}

// transition valida scope, propiedad y rol, y aplica el cambio de estado con
// un compare-and-set: la precondición y la escritura son una sola sentencia,
// de modo que dos aprobaciones concurrentes no pueden pisarse. Si el CAS no
// afecta filas, el estado ya no era from → InvalidTransition sin mutar nada.
func (uc *ProductUseCase) transition(caller *entity.Profile, id, from, to string, ownerOnly bool) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.BusinessID != caller.BusinessID {
		// Scope miss: NotFound para no filtrar existencia de otros businesses.
		return nil, domain.ErrNotFound
	}
	if ownerOnly && caller.Role != entity.RoleAdmin && product.CreatedBy != caller.UserID {
		return nil, domain.ErrForbidden
	}
	if !entity.CanTransition(caller.Role, product.Status, to) {
		if product.Status != from {
			return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, product.Status, to)
		}
		return nil, domain.ErrForbidden
	}
	ok, err := uc.repo.UpdateStatusIf(id, from, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Carrera perdida: otro request cambió el estado entre la lectura y el CAS.
		return nil, fmt.Errorf("%w: el producto ya no está en %s", domain.ErrInvalidTransition, from)
	}
	product.Status = to
	product.UpdatedAt = time.Now()
	return toProductResponse(product), nil
}

// AdminGet obtiene cualquier producto del business del admin, en cualquier estado.
func (uc *ProductUseCase) AdminGet(caller *entity.Profile, id string) (*dto.ProductResponse, error) {
	product, err := uc.loadScoped(caller, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// AdminUpdate variante admin de Update: además permite fijar el estado
// directamente, validando solo el enum (gestión correctiva, fuera del
// workflow). Update nunca escribe la columna status, así que el cambio de
// estado pasa por el mismo compare-and-set que las transiciones: si otro
// request movió el estado entre la lectura y la escritura, el CAS no aplica.
func (uc *ProductUseCase) AdminUpdate(caller *entity.Profile, id string, in dto.AdminUpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.loadScoped(caller, id)
	if err != nil {
		return nil, err
	}
	if err := applyProductFields(product, in.UpdateProductRequest); err != nil {
		return nil, err
	}
	if in.Status != nil && *in.Status != product.Status {
		if !entity.ValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrValidation, *in.Status)
		}
		ok, err := uc.repo.UpdateStatusIf(id, product.Status, *in.Status)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: el producto cambió de estado durante la actualización", domain.ErrInvalidTransition)
		}
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// AdminDelete elimina cualquier producto del business del admin.
func (uc *ProductUseCase) AdminDelete(caller *entity.Profile, id string) error {
	if _, err := uc.loadScoped(caller, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// loadScoped carga un producto y verifica que pertenezca al business del caller.
func (uc *ProductUseCase) loadScoped(caller *entity.Profile, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.BusinessID != caller.BusinessID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func applyProductFields(product *entity.Product, in dto.UpdateProductRequest) error {
	if in.Name != nil {
		if *in.Name == "" {
			return fmt.Errorf("%w: name no puede quedar vacío", domain.ErrValidation)
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return fmt.Errorf("%w: categoría desconocida %q", domain.ErrValidation, *in.Category)
		}
		product.Category = *in.Category
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		BusinessID:  p.BusinessID,
		CreatedBy:   p.CreatedBy,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductList(list []*entity.Product, page dto.PageRequest) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
