package service

import (
	"errors"
	"testing"

	"go-pos-api/internal/model"
	"go-pos-api/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeBrandRepo struct {
	brands map[uuid.UUID]*model.Brand
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{brands: make(map[uuid.UUID]*model.Brand)}
}

func (f *fakeBrandRepo) Create(brand *model.Brand) error {
	brand.ID = uuid.New()
	f.brands[brand.ID] = brand
	return nil
}

func (f *fakeBrandRepo) FindAll() ([]model.Brand, error) {
	var out []model.Brand
	for _, b := range f.brands {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBrandRepo) FindByID(id uuid.UUID) (*model.Brand, error) {
	if b, ok := f.brands[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBrandRepo) FindBySlug(slug string) (*model.Brand, error) {
	for _, b := range f.brands {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBrandRepo) Update(brand *model.Brand) error {
	f.brands[brand.ID] = brand
	return nil
}

func (f *fakeBrandRepo) Delete(id uuid.UUID) error {
	delete(f.brands, id)
	return nil
}

func TestCreateBrand_DuplicateSlugRejected(t *testing.T) {
	repo := newFakeBrandRepo()
	svc := NewCatalogService(repo, nil, nil)

	if _, err := svc.CreateBrand(&BrandRequest{Name: "Nivea", Slug: "nivea"}, "tester"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreateBrand(&BrandRequest{Name: "Nivea Again", Slug: "nivea"}, "tester")

	var cerr *apperror.ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if cerr.Field != "slug" || cerr.Value != "nivea" {
		t.Errorf("conflict names wrong key: %+v", cerr)
	}
	if len(repo.brands) != 1 {
		t.Errorf("duplicate must not be persisted, have %d brands", len(repo.brands))
	}
}

func TestCreateBrand_DistinctSlugsSucceed(t *testing.T) {
	repo := newFakeBrandRepo()
	svc := NewCatalogService(repo, nil, nil)

	for _, slug := range []string{"nivea", "dove", "omo"} {
		if _, err := svc.CreateBrand(&BrandRequest{Name: slug, Slug: slug}, "tester"); err != nil {
			t.Fatalf("create %q failed: %v", slug, err)
		}
	}
	if len(repo.brands) != 3 {
		t.Errorf("expected 3 brands, got %d", len(repo.brands))
	}
}

func TestUpdateBrand_SameSlugDoesNotSelfConflict(t *testing.T) {
	repo := newFakeBrandRepo()
	svc := NewCatalogService(repo, nil, nil)

	created, err := svc.CreateBrand(&BrandRequest{Name: "Nivea", Slug: "nivea"}, "tester")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateBrand(created.ID, &BrandRequest{Name: "Nivea Intl", Slug: "nivea"}, "tester")
	if err != nil {
		t.Fatalf("update with unchanged slug failed: %v", err)
	}
	if updated.Name != "Nivea Intl" {
		t.Errorf("name not updated: %q", updated.Name)
	}
}

func TestUpdateBrand_SlugTakenByAnotherBrand(t *testing.T) {
	repo := newFakeBrandRepo()
	svc := NewCatalogService(repo, nil, nil)

	if _, err := svc.CreateBrand(&BrandRequest{Name: "Nivea", Slug: "nivea"}, "tester"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	dove, err := svc.CreateBrand(&BrandRequest{Name: "Dove", Slug: "dove"}, "tester")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.UpdateBrand(dove.ID, &BrandRequest{Name: "Dove", Slug: "nivea"}, "tester")

	var cerr *apperror.ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestCreateBrand_MissingFields(t *testing.T) {
	svc := NewCatalogService(newFakeBrandRepo(), nil, nil)

	_, err := svc.CreateBrand(&BrandRequest{}, "tester")

	var verr *apperror.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("expected Name and Slug to fail, got %v", verr.Messages())
	}
}

func TestDeleteBrand_NotFound(t *testing.T) {
	svc := NewCatalogService(newFakeBrandRepo(), nil, nil)

	err := svc.DeleteBrand(uuid.New())

	var nf *apperror.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
