package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
)

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return newSQLiteStore(db), mock
}

func TestImportCatalog_RollsBackOnInsertError(t *testing.T) {
	st, mock := newMockStore(t)
	boom := errors.New("disk full")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT OR IGNORE INTO machines").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT OR IGNORE INTO machines").WillReturnError(boom)
	mock.ExpectRollback()

	err := st.ImportCatalog(context.Background(), testCatalog())
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, `insert machine "a-machine"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_WrapsError(t *testing.T) {
	st, mock := newMockStore(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS machines").WillReturnError(errors.New("read-only database"))

	err := st.EnsureSchema(context.Background())
	assert.ErrorContains(t, err, "ensure schema: read-only database")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadCatalog_BadRowJSON(t *testing.T) {
	st, mock := newMockStore(t)
	mock.ExpectQuery("SELECT data_json FROM machines").
		WillReturnRows(sqlmock.NewRows([]string{"data_json"}).AddRow("{not json"))

	_, err := st.LoadCatalog(context.Background())
	assert.ErrorContains(t, err, "load machines")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddEquipment_InsertError(t *testing.T) {
	st, mock := newMockStore(t)
	mock.ExpectExec("INSERT INTO equipment").WillReturnError(errors.New("constraint failed"))

	_, err := st.AddEquipment(context.Background(), domain.UserEquipment{Kind: domain.EquipmentMachine, Name: "x"})
	assert.ErrorContains(t, err, "insert equipment: constraint failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFavorites_NotFoundRollsBack(t *testing.T) {
	st, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM equipment WHERE id = ?").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := st.AddFavoriteBean(context.Background(), "missing", "bean-001")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
