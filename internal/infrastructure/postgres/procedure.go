package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/dbscan"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/bdas-dva/retail-api/internal/domain"
)

// CUD action discriminators understood by the proc_*_cud procedures.
const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// ParamMode direction of a procedure parameter.
type ParamMode int

const (
	ParamIn ParamMode = iota
	ParamOut
)

// Param one positional procedure argument. Name is only used for logging.
type Param struct {
	Name  string
	Value any
	Mode  ParamMode
}

// In binds value to an IN parameter. Nil pointers are sent as NULL.
func In(name string, value any) Param {
	return Param{Name: name, Value: value, Mode: ParamIn}
}

// Out declares an OUT parameter; it is passed as NULL and read back from the CALL row.
func Out(name string) Param {
	return Param{Name: name, Mode: ParamOut}
}

// Procedure a stored procedure call with its positional parameters.
type Procedure struct {
	Name   string
	Params []Param
}

// Call builds a Procedure.
func Call(name string, params ...Param) Procedure {
	return Procedure{Name: name, Params: params}
}

// SQL renders the CALL statement and the arguments for the IN parameters.
func (p Procedure) SQL() (string, []any) {
	var b strings.Builder
	b.WriteString("CALL ")
	b.WriteString(p.Name)
	b.WriteByte('(')
	args := make([]any, 0, len(p.Params))
	for i, prm := range p.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		if prm.Mode == ParamOut {
			b.WriteString("NULL")
			continue
		}
		args = append(args, prm.Value)
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(len(args)))
	}
	b.WriteByte(')')
	return b.String(), args
}

// psql builds plain SELECTs over views and lookup tables.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// scanAPI tolerates extra cursor columns that have no struct field.
var scanAPI = mustNewScanAPI()

func mustNewScanAPI() *pgxscan.API {
	dbscanAPI, err := pgxscan.NewDBScanAPI(dbscan.WithAllowUnknownColumns(true))
	if err != nil {
		panic(fmt.Errorf("creating dbscan API: %w", err))
	}
	api, err := pgxscan.NewAPI(dbscanAPI)
	if err != nil {
		panic(fmt.Errorf("creating pgxscan API: %w", err))
	}
	return api
}

// ProcRunner executes stored procedures and maps driver errors to domain errors.
type ProcRunner struct {
	db  DB
	log zerolog.Logger
}

// NewProcRunner builds a runner on top of a pool or a transaction.
func NewProcRunner(db DB, log zerolog.Logger) *ProcRunner {
	return &ProcRunner{db: db, log: log}
}

// WithDB returns a runner sharing the logger but bound to another DB (usually a tx).
func (r *ProcRunner) WithDB(db DB) *ProcRunner {
	return &ProcRunner{db: db, log: r.log}
}

// Exec runs a procedure without OUT parameters.
func (r *ProcRunner) Exec(ctx context.Context, p Procedure) error {
	sql, args := p.SQL()
	r.logCall(p)
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return mapError(p.Name, err)
	}
	return nil
}

// Call runs a procedure and scans its OUT parameters, in declaration order, into dest.
func (r *ProcRunner) Call(ctx context.Context, p Procedure, dest ...any) error {
	sql, args := p.SQL()
	r.logCall(p)
	if err := r.db.QueryRow(ctx, sql, args...).Scan(dest...); err != nil {
		return mapError(p.Name, err)
	}
	return nil
}

// Select runs a squirrel query and scans every row into dst (pointer to slice).
func (r *ProcRunner) Select(ctx context.Context, dst any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	r.log.Debug().Str("sql", sql).Msg("select")
	if err := scanAPI.Select(ctx, r.db, dst, sql, args...); err != nil {
		return mapError(sql, err)
	}
	return nil
}

// fetchCursor calls a procedure whose only OUT parameter is a refcursor and reads
// the whole cursor. The cursor only lives inside the transaction, so both steps
// share one.
func fetchCursor[T any](ctx context.Context, r *ProcRunner, p Procedure) ([]*T, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, domain.NewDatabaseError(p.Name, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sql, args := p.SQL()
	r.logCall(p)

	var cursor *string
	if err := tx.QueryRow(ctx, sql, args...).Scan(&cursor); err != nil {
		return nil, mapError(p.Name, err)
	}

	var rows []*T
	if cursor != nil && *cursor != "" {
		fetch := "FETCH ALL FROM " + pgx.Identifier{*cursor}.Sanitize()
		if err := scanAPI.Select(ctx, tx, &rows, fetch); err != nil {
			return nil, mapError(p.Name, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, domain.NewDatabaseError(p.Name, err)
	}
	return rows, nil
}

func (r *ProcRunner) logCall(p Procedure) {
	ev := r.log.Debug()
	if !ev.Enabled() {
		return
	}
	params := zerolog.Dict()
	for _, prm := range p.Params {
		switch {
		case prm.Mode == ParamOut:
			params.Str(prm.Name, "OUT")
		case isSecret(prm.Name):
			params.Str(prm.Name, "***")
		default:
			params.Interface(prm.Name, prm.Value)
		}
	}
	ev.Str("procedure", p.Name).Dict("params", params).Msg("calling procedure")
}

func isSecret(name string) bool {
	return strings.Contains(strings.ToLower(name), "password")
}

// mapError translates driver errors into domain errors.
func mapError(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows), isNoDataFound(err):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	default:
		return domain.NewDatabaseError(op, err)
	}
}
