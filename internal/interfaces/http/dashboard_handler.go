package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-api/internal/application/usecase"
)

// DashboardHandler maneja el dashboard enrutado por rol.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard del rol resuelto
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetProfile(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
