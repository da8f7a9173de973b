// Package ports contiene contratos compartidos entre use cases que la
// infraestructura implementa.
package ports

import (
	"context"

	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
// Lo usan el registro (user + business + profile atómicos) y la administración
// de usuarios (user + profile).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		businesses repository.BusinessRepository,
		profiles repository.ProfileRepository,
	) error) error
}
