package usecase

import (
	"context"

	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/domain"
	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/domain/repository"
)

const resourceCustomer = "zákazník"

// CustomerUseCase customer CRUD and lookups.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create stores the customer and returns its new id.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (int64, error) {
	if in.Telefon <= 0 {
		return 0, domain.NewValidation("pole 'telefon' je povinné")
	}
	return uc.repo.Create(ctx, &entity.Customer{Phone: in.Telefon, AddressID: entity.PositiveID(in.AdresaIdAdresy)})
}

// Update overwrites phone and address of the customer.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) error {
	if id <= 0 {
		return domain.NewValidation("neplatné ID zákazníka: %d", id)
	}
	if in.Telefon <= 0 {
		return domain.NewValidation("pole 'telefon' je povinné")
	}
	return uc.repo.Update(ctx, &entity.Customer{ID: id, Phone: in.Telefon, AddressID: entity.PositiveID(in.AdresaIdAdresy)})
}

// Delete removes the customer.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidation("neplatné ID zákazníka: %d", id)
	}
	return uc.repo.Delete(ctx, id)
}

// GetByID returns a NotFoundError when the customer does not exist.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	if id <= 0 {
		return nil, domain.NewValidation("neplatné ID zákazníka: %d", id)
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFound(resourceCustomer, "id", id)
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

// GetByPhone looks the customer up by phone number.
func (uc *CustomerUseCase) GetByPhone(ctx context.Context, phone int64) (*dto.CustomerResponse, error) {
	if phone <= 0 {
		return nil, domain.NewValidation("neplatné telefonní číslo: %d", phone)
	}
	c, err := uc.repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFound(resourceCustomer, "telefon", phone)
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

// List returns customers; limit <= 0 means all.
func (uc *CustomerUseCase) List(ctx context.Context, limit int32) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx, entity.PositiveInt32(&limit))
	if err != nil {
		return nil, err
	}
	return mapSlice(list, toCustomerResponse), nil
}

// AddressID resolves the customer's address; NotFoundError when there is none.
func (uc *CustomerUseCase) AddressID(ctx context.Context, id int64) (*dto.AddressIDResponse, error) {
	if id <= 0 {
		return nil, domain.NewValidation("neplatné ID zákazníka: %d", id)
	}
	addressID, err := uc.repo.AddressID(ctx, id)
	if err != nil {
		return nil, err
	}
	if addressID == nil {
		return nil, domain.NewNotFound("adresa zákazníka", "idZakazniku", id)
	}
	return &dto.AddressIDResponse{IdZakazniku: id, AdresaIdAdresy: addressID}, nil
}
