package repository

import "github.com/jhoicas/marketplace-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStatusIf aplica un compare-and-set sobre status: solo escribe si el
	// estado actual es from. Devuelve false si ninguna fila cambió (precondición
	// fallida o producto inexistente); el caso se desambigua releyendo.
	UpdateStatusIf(id, from, to string) (bool, error)
	// ListByBusiness lista productos de un business; status vacío = todos los estados.
	ListByBusiness(businessID, status string, limit, offset int) ([]*entity.Product, error)
	// ListByStatus lista productos de todos los businesses con un estado dado
	// (listado público de aprobados y cola de revisión de pendientes).
	ListByStatus(status string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
