package usecase_test

import (
	"context"

	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// Fakes en memoria compartidos por los tests del paquete.

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

// Update replica el contrato del adaptador Postgres: la columna status nunca
// se escribe por aquí, solo vía UpdateStatusIf.
func (r *fakeProductRepo) Update(p *entity.Product) error {
	cur, ok := r.byID[p.ID]
	if !ok {
		return nil
	}
	cp := *p
	cp.Status = cur.Status
	r.byID[p.ID] = &cp
	return nil
}

// UpdateStatusIf replica el compare-and-set del adaptador Postgres.
func (r *fakeProductRepo) UpdateStatusIf(id, from, to string) (bool, error) {
	p, ok := r.byID[id]
	if !ok || p.Status != from {
		return false, nil
	}
	p.Status = to
	return true, nil
}

func (r *fakeProductRepo) ListByBusiness(businessID, status string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.BusinessID != businessID {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByStatus(status string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.Status == status {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type fakeUserRepo struct {
	byID     map[string]*entity.User
	profiles *fakeProfileRepo
}

func newFakeUserRepo(profiles *fakeProfileRepo) *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}, profiles: profiles}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, e := range r.byID {
		if e.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListByBusiness(businessID string, limit, offset int) ([]*repository.UserWithProfile, error) {
	var out []*repository.UserWithProfile
	for _, p := range r.profiles.byUser {
		if p.BusinessID != businessID {
			continue
		}
		if u, ok := r.byID[p.UserID]; ok {
			out = append(out, &repository.UserWithProfile{User: *u, Profile: *p})
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type fakeProfileRepo struct {
	byUser map[string]*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byUser: map[string]*entity.Profile{}}
}

func (r *fakeProfileRepo) Create(p *entity.Profile) error {
	cp := *p
	r.byUser[p.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	return r.byUser[userID], nil
}

func (r *fakeProfileRepo) Update(p *entity.Profile) error {
	cp := *p
	r.byUser[p.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) DeleteByUserID(userID string) error {
	delete(r.byUser, userID)
	return nil
}

type fakeBusinessRepo struct {
	byID map[string]*entity.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{byID: map[string]*entity.Business{}}
}

func (r *fakeBusinessRepo) Create(b *entity.Business) error {
	cp := *b
	r.byID[b.ID] = &cp
	return nil
}

func (r *fakeBusinessRepo) GetByID(id string) (*entity.Business, error) { return r.byID[id], nil }

type fakeTxRunner struct {
	users      *fakeUserRepo
	businesses *fakeBusinessRepo
	profiles   *fakeProfileRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	users repository.UserRepository,
	businesses repository.BusinessRepository,
	profiles repository.ProfileRepository,
) error) error {
	return fn(t.users, t.businesses, t.profiles)
}

// perfil helper para construir callers.
func perfil(userID, businessID, role string) *entity.Profile {
	return &entity.Profile{ID: "pf-" + userID, UserID: userID, BusinessID: businessID, Role: role}
}
