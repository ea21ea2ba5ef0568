package postgres

import (
	"context"

	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/domain/repository"
)

var _ repository.PositionRepository = (*PositionRepo)(nil)

// PositionRepo implements PositionRepository; writes go through proc_pozice_cud.
type PositionRepo struct {
	proc *ProcRunner
}

// NewPositionRepository builds the position persistence adapter.
func NewPositionRepository(proc *ProcRunner) *PositionRepo {
	return &PositionRepo{proc: proc}
}

// List reads the pozice table ordered by id.
func (r *PositionRepo) List(ctx context.Context) ([]*entity.Position, error) {
	q := psql.Select("id_pozice", "nazev").From("pozice").OrderBy("id_pozice")
	var rows []*positionRow
	if err := r.proc.Select(ctx, &rows, q); err != nil {
		return nil, err
	}
	return mapRows(rows, (*positionRow).toEntity), nil
}

func (r *PositionRepo) Create(ctx context.Context, p *entity.Position) error {
	return r.cud(ctx, ActionInsert, nil, entity.StringOrNil(p.Name))
}

func (r *PositionRepo) Update(ctx context.Context, p *entity.Position) error {
	return r.cud(ctx, ActionUpdate, &p.ID, entity.StringOrNil(p.Name))
}

func (r *PositionRepo) Delete(ctx context.Context, id int64) error {
	return r.cud(ctx, ActionDelete, &id, nil)
}

func (r *PositionRepo) cud(ctx context.Context, action string, id *int64, name *string) error {
	return r.proc.Exec(ctx, Call("proc_pozice_cud",
		In("p_action", action),
		In("p_id_pozice", id),
		In("p_nazev", name),
	))
}
