package usecase_test

import (
	"context"

	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
	"github.com/tu-usuario/horeca-stock/internal/domain/schema"
)

// Fakes en memoria para los puertos de repositorio; suficientes para ejercer
// los usecases sin PostgreSQL.

type fakeCategoryRepo struct {
	byID map[string]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{byID: make(map[string]*entity.Category)}
	for _, c := range categories {
		cc := *c
		r.byID[c.ID] = &cc
	}
	return r
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	cc := *c
	r.byID[c.ID] = &cc
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.byID {
		if c.Name == name {
			cc := *c
			return &cc, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cc := *c
	r.byID[c.ID] = &cc
	return nil
}

func (r *fakeCategoryRepo) List(onlyActive bool) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.byID {
		if onlyActive && !c.IsActive {
			continue
		}
		cc := *c
		out = append(out, &cc)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	pp := *p
	r.byID[p.ID] = &pp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	pp := *p
	return &pp, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	pp := *p
	r.byID[p.ID] = &pp
	return nil
}

func (r *fakeProductRepo) List(status, categoryID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if status != "" && p.Status != status {
			continue
		}
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		pp := *p
		out = append(out, &pp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type fakeExtractor struct {
	result *schema.Extraction
	err    error
}

func (f *fakeExtractor) ExtractProduct(_ context.Context, _ string, _ []byte, _ string) (*schema.Extraction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
