package usecase

import (
	"context"

	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// CatalogPDFGenerator puerto del renderizador PDF (implementado con Maroto en infraestructura).
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, business *entity.Business, products []*entity.Product) ([]byte, error)
}

// CatalogPDFUseCase exporta el catálogo de productos aprobados del business
// del caller como PDF.
type CatalogPDFUseCase struct {
	productRepo  repository.ProductRepository
	businessRepo repository.BusinessRepository
	generator    CatalogPDFGenerator
}

// NewCatalogPDFUseCase construye el caso de uso.
func NewCatalogPDFUseCase(
	productRepo repository.ProductRepository,
	businessRepo repository.BusinessRepository,
	generator CatalogPDFGenerator,
) *CatalogPDFUseCase {
	return &CatalogPDFUseCase{productRepo: productRepo, businessRepo: businessRepo, generator: generator}
}

// Generate devuelve los bytes del PDF con los productos aprobados del business.
func (uc *CatalogPDFUseCase) Generate(ctx context.Context, caller *entity.Profile) ([]byte, error) {
	business, err := uc.businessRepo.GetByID(caller.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	// El catálogo completo cabe en una página razonable; tope fijo.
	products, err := uc.productRepo.ListByBusiness(caller.BusinessID, entity.StatusApproved, 500, 0)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateCatalogPDF(ctx, business, products)
}
