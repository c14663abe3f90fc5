package service

import (
	"errors"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/pkg/apperror"
	"go-pos-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopRequest struct {
	Name         string      `json:"name" validate:"required"`
	Slug         string      `json:"slug" validate:"required"`
	Location     string      `json:"location" validate:"required"`
	AdminID      uuid.UUID   `json:"admin_id" validate:"uuid_required"`
	AttendantIDs []uuid.UUID `json:"attendant_ids" validate:"required,min=1"`
}

type ShopService interface {
	CreateShop(req *ShopRequest, actor string) (*model.Shop, error)
	GetAllShops() ([]model.Shop, error)
	GetShopByID(id uuid.UUID) (*model.Shop, error)
	UpdateShop(id uuid.UUID, req *ShopRequest, actor string) (*model.Shop, error)
	DeleteShop(id uuid.UUID) error
}

type shopService struct {
	shopRepo repository.ShopRepository
	userRepo repository.UserRepository
}

func NewShopService(shopRepo repository.ShopRepository, userRepo repository.UserRepository) ShopService {
	return &shopService{shopRepo: shopRepo, userRepo: userRepo}
}

// resolveAttendants loads every referenced attendant, failing on the first
// id that does not resolve to a user.
func (s *shopService) resolveAttendants(ids []uuid.UUID) ([]model.User, error) {
	attendants := make([]model.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.userRepo.FindByID(id)
		if err != nil {
			return nil, apperror.NewNotFound("attendant")
		}
		attendants = append(attendants, *user)
	}
	return attendants, nil
}

func (s *shopService) CreateShop(req *ShopRequest, actor string) (*model.Shop, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}

	existing, _ := s.shopRepo.FindBySlug(req.Slug)
	if existing != nil {
		return nil, apperror.NewConflict("shop", "slug", req.Slug)
	}

	if _, err := s.userRepo.FindByID(req.AdminID); err != nil {
		return nil, apperror.NewNotFound("admin user")
	}
	attendants, err := s.resolveAttendants(req.AttendantIDs)
	if err != nil {
		return nil, err
	}

	shop := &model.Shop{
		Name:       req.Name,
		Slug:       req.Slug,
		Location:   req.Location,
		AdminID:    req.AdminID,
		Attendants: attendants,
	}
	shop.CreatedBy = actor
	shop.UpdatedBy = actor

	if err := s.shopRepo.Create(shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *shopService) GetAllShops() ([]model.Shop, error) {
	return s.shopRepo.FindAll()
}

func (s *shopService) GetShopByID(id uuid.UUID) (*model.Shop, error) {
	shop, err := s.shopRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("shop")
		}
		return nil, err
	}
	return shop, nil
}

func (s *shopService) UpdateShop(id uuid.UUID, req *ShopRequest, actor string) (*model.Shop, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}

	shop, err := s.shopRepo.FindByID(id)
	if err != nil {
		return nil, apperror.NewNotFound("shop")
	}

	if req.Slug != shop.Slug {
		existing, _ := s.shopRepo.FindBySlug(req.Slug)
		if existing != nil {
			return nil, apperror.NewConflict("shop", "slug", req.Slug)
		}
	}

	if _, err := s.userRepo.FindByID(req.AdminID); err != nil {
		return nil, apperror.NewNotFound("admin user")
	}
	attendants, err := s.resolveAttendants(req.AttendantIDs)
	if err != nil {
		return nil, err
	}

	shop.Name = req.Name
	shop.Slug = req.Slug
	shop.Location = req.Location
	shop.AdminID = req.AdminID
	shop.UpdatedBy = actor

	if err := s.shopRepo.UpdateWithAttendants(shop, attendants); err != nil {
		return nil, err
	}
	shop.Attendants = attendants
	return shop, nil
}

func (s *shopService) DeleteShop(id uuid.UUID) error {
	if _, err := s.shopRepo.FindByID(id); err != nil {
		return apperror.NewNotFound("shop")
	}
	return s.shopRepo.Delete(id)
}
