package usecase

import (
	"context"

	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/domain/repository"
)

// StoreUseCase read-only listing of supermarkets and warehouses.
type StoreUseCase struct {
	repo repository.StoreRepository
}

func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

func (uc *StoreUseCase) ListSupermarkets(ctx context.Context) ([]dto.SupermarketResponse, error) {
	list, err := uc.repo.ListSupermarkets(ctx)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, func(s *entity.Supermarket) dto.SupermarketResponse {
		return dto.SupermarketResponse{IdSupermarketu: s.ID, Nazev: s.Name, Telefon: s.Phone, AdresaIdAdresy: s.AddressID}
	}), nil
}

func (uc *StoreUseCase) ListWarehouses(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.ListWarehouses(ctx)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, func(w *entity.Warehouse) dto.WarehouseResponse {
		return dto.WarehouseResponse{
			IdSkladu:       w.ID,
			Nazev:          w.Name,
			Kapacita:       w.Capacity,
			Telefon:        w.Phone,
			AdresaIdAdresy: w.AddressID,
		}
	}), nil
}
