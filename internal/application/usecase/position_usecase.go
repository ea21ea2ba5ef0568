package usecase

import (
	"context"
	"strings"

	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/domain"
	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/domain/repository"
)

// PositionUseCase manages employee positions.
type PositionUseCase struct {
	repo repository.PositionRepository
}

func NewPositionUseCase(repo repository.PositionRepository) *PositionUseCase {
	return &PositionUseCase{repo: repo}
}

func (uc *PositionUseCase) List(ctx context.Context) ([]dto.PositionResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, toPositionResponse), nil
}

func (uc *PositionUseCase) Create(ctx context.Context, in dto.PositionRequest) error {
	name, err := positionName(in)
	if err != nil {
		return err
	}
	return uc.repo.Create(ctx, &entity.Position{Name: name})
}

func (uc *PositionUseCase) Update(ctx context.Context, id int64, in dto.PositionRequest) error {
	if id <= 0 {
		return domain.NewValidation("ID pozice je povinné pro aktualizaci")
	}
	name, err := positionName(in)
	if err != nil {
		return err
	}
	return uc.repo.Update(ctx, &entity.Position{ID: id, Name: name})
}

func (uc *PositionUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidation("ID pozice je povinné pro smazání")
	}
	return uc.repo.Delete(ctx, id)
}

func positionName(in dto.PositionRequest) (string, error) {
	name := strings.TrimSpace(in.Nazev)
	if name == "" {
		return "", domain.NewValidation("pole 'nazev' je povinné")
	}
	return name, nil
}
