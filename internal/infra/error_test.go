//go:build unit

package infra_test

import (
	"testing"

	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("no rows classifies as not found", func(t *testing.T) {
		err := infra.WrapRepoErr("booking lookup", pgx.ErrNoRows)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unique violation classifies as conflict", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "bookings_slot_occupancy_key"}
		err := infra.WrapRepoErr("insert booking", pgErr)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("foreign key violation classifies as such", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503"}
		err := infra.WrapRepoErr("insert booking", pgErr)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("anything else is a db failure", func(t *testing.T) {
		err := infra.WrapRepoErr("insert booking", errs.New("connection reset"))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("explicit kind overrides classification", func(t *testing.T) {
		err := infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("wrapped errors keep their kind through further wrapping", func(t *testing.T) {
		inner := infra.WrapRepoErr("insert booking", &pgconn.PgError{Code: "23505"})
		outer := errs.Wrap(inner, "create failed")
		assert.True(t, infra.IsKind(outer, infra.KindConflict))
		assert.False(t, infra.IsKind(outer, infra.KindNotFound))
	})

	t.Run("kind mismatch reports false", func(t *testing.T) {
		assert.False(t, infra.IsKind(errs.New("plain"), infra.KindConflict))
	})
}
