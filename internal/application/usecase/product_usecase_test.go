package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
)

var (
	editorAcme    = perfil("u-editor", "biz-acme", entity.RoleEditor)
	approverAcme  = perfil("u-approver", "biz-acme", entity.RoleApprover)
	adminAcme     = perfil("u-admin", "biz-acme", entity.RoleAdmin)
	viewerAcme    = perfil("u-viewer", "biz-acme", entity.RoleViewer)
	approverOther = perfil("u-approver2", "biz-other", entity.RoleApprover)
)

func nuevoProducto(t *testing.T, uc *usecase.ProductUseCase, caller *entity.Profile) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(caller, dto.CreateProductRequest{
		Name:     "Audífonos inalámbricos",
		Price:    decimal.NewFromInt(150),
		Category: entity.CategoryElectronics,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create + visibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_IniciaEnDraft(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	out := nuevoProducto(t, uc, editorAcme)

	assert.Equal(t, entity.StatusDraft, out.Status)
	assert.Equal(t, "biz-acme", out.BusinessID)
	assert.Equal(t, "u-editor", out.CreatedBy)
}

func TestCreate_PrecioNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	_, err := uc.Create(editorAcme, dto.CreateProductRequest{
		Name:  "Gratis al revés",
		Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreate_CategoriaInvalida(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	_, err := uc.Create(editorAcme, dto.CreateProductRequest{
		Name:     "Carro",
		Price:    decimal.NewFromInt(10),
		Category: "vehicles",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Un draft es invisible para miembros de otros businesses y para los viewers
// del propio: Get responde NotFound, nunca Forbidden (sin fuga de existencia).
func TestGet_DraftInvisibleParaOtroBusinessYParaViewers(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	out := nuevoProducto(t, uc, editorAcme)

	_, err := uc.Get(approverOther, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Get(viewerAcme, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "un viewer solo ve aprobados, incluso de su business")

	// Editor y approver del mismo business sí lo ven.
	got, err := uc.Get(approverAcme, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDraft, got.Status)
}

// El listado de un viewer queda fijado en approved aunque pida otro estado.
func TestList_ViewerSoloAprobados(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	nuevoProducto(t, uc, editorAcme)
	aprobado := nuevoProducto(t, uc, editorAcme)
	_, err := uc.Submit(editorAcme, aprobado.ID)
	require.NoError(t, err)
	_, err = uc.Approve(approverAcme, aprobado.ID)
	require.NoError(t, err)

	out, err := uc.List(viewerAcme, "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, aprobado.ID, out.Items[0].ID)

	out, err = uc.List(viewerAcme, entity.StatusDraft, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "el filtro de un viewer se fuerza a approved")
	assert.Equal(t, aprobado.ID, out.Items[0].ID)
}

func TestGet_AprobadoVisibleParaTodos(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	out := nuevoProducto(t, uc, editorAcme)

	_, err := uc.Submit(editorAcme, out.ID)
	require.NoError(t, err)
	_, err = uc.Approve(approverAcme, out.ID)
	require.NoError(t, err)

	got, err := uc.Get(approverOther, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, got.Status)
}

func TestListPublic_SoloAprobados(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	draft := nuevoProducto(t, uc, editorAcme)
	aprobado := nuevoProducto(t, uc, editorAcme)
	_, err := uc.Submit(editorAcme, aprobado.ID)
	require.NoError(t, err)
	_, err = uc.Approve(adminAcme, aprobado.ID)
	require.NoError(t, err)

	out, err := uc.ListPublic(dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, aprobado.ID, out.Items[0].ID)
	assert.NotEqual(t, draft.ID, out.Items[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_DraftPasaAPending(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	out := nuevoProducto(t, uc, editorAcme)

	got, err := uc.Submit(editorAcme, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendingApproval, got.Status)
}

// Submit sobre un producto que no está en draft: InvalidTransition y el estado
// no cambia.
func TestSubmit_NoDraft_TransicionInvalida(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	out := nuevoProducto(t, uc, editorAcme)

	_, err := uc.Submit(editorAcme, out.ID)
	require.NoError(t, err)

	_, err = uc.Submit(editorAcme, out.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, _ := repo.GetByID(out.ID)
	assert.Equal(t, entity.StatusPendingApproval, got.Status, "el estado no debe mutar")
}

func TestSubmit_ViewerProhibido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	out := nuevoProducto(t, uc, editorAcme)

	_, err := uc.Submit(viewerAcme, out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Solo el creador del draft (o un admin) lo envía a aprobación: otro miembro
// del business, aunque pueda crear productos, recibe Forbidden.
func TestSubmit_SoloElCreadorOAdmin(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	out := nuevoProducto(t, uc, editorAcme)

	_, err := uc.Submit(approverAcme, out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, _ := repo.GetByID(out.ID)
	assert.Equal(t, entity.StatusDraft, got.Status, "el estado no debe mutar")

	// El admin sí puede enviar drafts ajenos.
	sent, err := uc.Submit(adminAcme, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendingApproval, sent.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Approve / Reject
// ──────────────────────────────────────────────────────────────────────────────

func productoPendiente(t *testing.T, uc *usecase.ProductUseCase) *dto.ProductResponse {
	t.Helper()
	out := nuevoProducto(t, uc, editorAcme)
	got, err := uc.Submit(editorAcme, out.ID)
	require.NoError(t, err)
	return got
}

func TestApprove_PorApproverDelBusiness(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	p := productoPendiente(t, uc)

	got, err := uc.Approve(approverAcme, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, got.Status)
}

func TestReject_PorAdmin(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	p := productoPendiente(t, uc)

	got, err := uc.Reject(adminAcme, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, got.Status)
}

func TestApprove_ViewerProhibido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	p := productoPendiente(t, uc)

	_, err := uc.Approve(viewerAcme, p.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestApprove_EditorProhibido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	p := productoPendiente(t, uc)

	_, err := uc.Approve(editorAcme, p.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Approver de otro business: NotFound, no Forbidden.
func TestApprove_OtroBusiness_NotFound(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	p := productoPendiente(t, uc)

	_, err := uc.Approve(approverOther, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, _ := repo.GetByID(p.ID)
	assert.Equal(t, entity.StatusPendingApproval, got.Status)
}

// Segunda aprobación: InvalidTransition y el estado queda en approved.
func TestApprove_Idempotencia(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	p := productoPendiente(t, uc)

	_, err := uc.Approve(approverAcme, p.ID)
	require.NoError(t, err)

	_, err = uc.Approve(approverAcme, p.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, _ := repo.GetByID(p.ID)
	assert.Equal(t, entity.StatusApproved, got.Status)
}

// No existe re-envío: un rechazado no puede volver a pending.
func TestSubmit_RechazadoNoReentra(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	p := productoPendiente(t, uc)

	_, err := uc.Reject(approverAcme, p.ID)
	require.NoError(t, err)

	_, err = uc.Submit(editorAcme, p.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_NoAdminSoloSusProductos(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	p := nuevoProducto(t, uc, editorAcme)

	nombre := "Otro nombre"
	_, err := uc.Update(approverAcme, p.ID, dto.UpdateProductRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El admin sí puede.
	got, err := uc.Update(adminAcme, p.ID, dto.UpdateProductRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Otro nombre", got.Name)
}

func TestUpdate_NoTocaElEstado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	p := nuevoProducto(t, uc, editorAcme)

	desc := "nueva descripción"
	got, err := uc.Update(editorAcme, p.ID, dto.UpdateProductRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDraft, got.Status)
}

func TestDelete_OtroBusiness_NotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	p := nuevoProducto(t, uc, editorAcme)

	err := uc.Delete(approverOther, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdminUpdate
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminUpdate_EstadoDirectoValidado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	p := nuevoProducto(t, uc, editorAcme)

	estado := entity.StatusApproved
	got, err := uc.AdminUpdate(adminAcme, p.ID, dto.AdminUpdateProductRequest{Status: &estado})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, got.Status)

	// El cambio de estado debe llegar al repositorio, no solo a la respuesta.
	persistido, _ := repo.GetByID(p.ID)
	assert.Equal(t, entity.StatusApproved, persistido.Status)

	malo := "pending"
	_, err = uc.AdminUpdate(adminAcme, p.ID, dto.AdminUpdateProductRequest{Status: &malo})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
