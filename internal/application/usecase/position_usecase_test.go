package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/application/usecase"
	"github.com/bdas-dva/retail-api/internal/domain"
	"github.com/bdas-dva/retail-api/internal/testutil"
)

func TestPosition_Lifecycle(t *testing.T) {
	uc := usecase.NewPositionUseCase(testutil.NewPositionRepo())
	ctx := context.Background()

	require.NoError(t, uc.Create(ctx, dto.PositionRequest{Nazev: "  Pokladní "}))
	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pokladní", list[0].Nazev)

	require.NoError(t, uc.Update(ctx, list[0].IdPozice, dto.PositionRequest{Nazev: "Vedoucí"}))
	list, _ = uc.List(ctx)
	assert.Equal(t, "Vedoucí", list[0].Nazev)

	require.NoError(t, uc.Delete(ctx, list[0].IdPozice))
	list, _ = uc.List(ctx)
	assert.Empty(t, list)
}

func TestPosition_Validation(t *testing.T) {
	uc := usecase.NewPositionUseCase(testutil.NewPositionRepo())
	ctx := context.Background()

	assert.ErrorIs(t, uc.Create(ctx, dto.PositionRequest{Nazev: "   "}), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Update(ctx, 0, dto.PositionRequest{Nazev: "X"}), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Update(ctx, 1, dto.PositionRequest{}), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Delete(ctx, -1), domain.ErrInvalidInput)
}
