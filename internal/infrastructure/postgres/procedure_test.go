package postgres

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdas-dva/retail-api/internal/domain"
)

func TestProcedureSQL(t *testing.T) {
	id := int64(5)
	tests := []struct {
		name     string
		proc     Procedure
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "no params",
			proc:     Call("proc_noop"),
			wantSQL:  "CALL proc_noop()",
			wantArgs: []any{},
		},
		{
			name:     "in only",
			proc:     Call("proc_pozice_cud", In("p_action", ActionDelete), In("p_id_pozice", &id), In("p_nazev", nil)),
			wantSQL:  "CALL proc_pozice_cud($1, $2, $3)",
			wantArgs: []any{ActionDelete, &id, nil},
		},
		{
			name: "out params are NULL and not numbered",
			proc: Call("proc_zakaznik_cud",
				In("p_action", ActionInsert),
				Out("p_id_zakazniku"),
				In("p_telefon", int64(777111222)),
				In("p_adresa_id_adresy", nil),
			),
			wantSQL:  "CALL proc_zakaznik_cud($1, NULL, $2, $3)",
			wantArgs: []any{ActionInsert, int64(777111222), nil},
		},
		{
			name:     "trailing cursor",
			proc:     Call("proc_user_r", In("p_id_user", nil), In("p_limit", nil), Out("p_cursor")),
			wantSQL:  "CALL proc_user_r($1, $2, NULL)",
			wantArgs: []any{nil, nil},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.proc.SQL()
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"no data found", &pgconn.PgError{Code: "P0002"}, domain.ErrNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, domain.ErrDuplicate},
		{"wrapped unique", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}), domain.ErrDuplicate},
		{"foreign key", &pgconn.PgError{Code: "23503"}, domain.ErrConflict},
		{"other", errors.New("connection reset"), domain.ErrDatabase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError("proc_x", tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), "proc_x")
		})
	}
}

func TestMapError_DatabaseErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := mapError("proc_zamnestnanec_r", cause)

	var dbErr *domain.DatabaseError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, "proc_zamnestnanec_r", dbErr.Op)
	assert.ErrorIs(t, err, cause)
}

func TestLogCall_MasksPasswords(t *testing.T) {
	var buf bytes.Buffer
	r := NewProcRunner(nil, zerolog.New(&buf).Level(zerolog.DebugLevel))

	r.logCall(Call("proc_user_cud",
		In("p_action", ActionInsert),
		In("p_email", "jana@example.cz"),
		In("p_password", "$2a$10$secret"),
		Out("p_cursor"),
	))

	out := buf.String()
	assert.Contains(t, out, `"procedure":"proc_user_cud"`)
	assert.Contains(t, out, `"p_email":"jana@example.cz"`)
	assert.Contains(t, out, `"p_password":"***"`)
	assert.Contains(t, out, `"p_cursor":"OUT"`)
	assert.NotContains(t, out, "secret")
}

func TestLogCall_SilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	r := NewProcRunner(nil, zerolog.New(&buf).Level(zerolog.InfoLevel))
	r.logCall(Call("proc_noop"))
	assert.Empty(t, buf.String())
}
