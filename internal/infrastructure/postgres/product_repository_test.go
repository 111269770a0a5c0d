package postgres_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcondori/api-saltenas/internal/domain"
	"github.com/wcondori/api-saltenas/internal/domain/entity"
	"github.com/wcondori/api-saltenas/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var productColumns = []string{
	"id", "nombre", "stock_minimo", "unidades_por_bandeja", "unidades_por_bolsa", "created_at", "updated_at",
}

func newProductRepoMock(t *testing.T) (pgxmock.PgxPoolIface, *postgres.ProductRepo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, postgres.NewProductRepository(mock)
}

func sampleProduct() *entity.Product {
	now := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)
	return &entity.Product{
		ID:           uuid.New().String(),
		Name:         "Pollo",
		MinStock:     15,
		UnitsPerTray: 30,
		UnitsPerBag:  10,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_Create(t *testing.T) {
	mock, repo := newProductRepoMock(t)
	p := sampleProduct()

	mock.ExpectExec(`INSERT INTO productos`).
		WithArgs(p.ID, p.Name, p.MinStock, p.UnitsPerTray, p.UnitsPerBag, p.CreatedAt, p.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Create_NombreDuplicado(t *testing.T) {
	mock, repo := newProductRepoMock(t)
	p := sampleProduct()

	// El índice único sobre lower(nombre) dispara 23505.
	mock.ExpectExec(`INSERT INTO productos`).
		WithArgs(p.ID, p.Name, p.MinStock, p.UnitsPerTray, p.UnitsPerBag, p.CreatedAt, p.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "productos_nombre_lower_idx"})

	err := repo.Create(p)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Create_ErrorDeBase(t *testing.T) {
	mock, repo := newProductRepoMock(t)
	p := sampleProduct()

	mock.ExpectExec(`INSERT INTO productos`).
		WithArgs(p.ID, p.Name, p.MinStock, p.UnitsPerTray, p.UnitsPerBag, p.CreatedAt, p.UpdatedAt).
		WillReturnError(errors.New("conexión perdida"))

	err := repo.Create(p)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_GetByID(t *testing.T) {
	mock, repo := newProductRepoMock(t)
	p := sampleProduct()

	mock.ExpectQuery(`SELECT (.+) FROM productos WHERE id = \$1`).
		WithArgs(p.ID).
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow(p.ID, p.Name, p.MinStock, p.UnitsPerTray, p.UnitsPerBag, p.CreatedAt, p.UpdatedAt))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.UnitsPerTray, got.UnitsPerTray)
}

func TestProductRepo_GetByID_NoExiste(t *testing.T) {
	mock, repo := newProductRepoMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM productos WHERE id = \$1`).
		WithArgs("no-existe").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByID("no-existe")
	require.NoError(t, err, "no encontrado no es un error del puerto")
	assert.Nil(t, got)
}

func TestProductRepo_GetByName_CaseInsensitive(t *testing.T) {
	mock, repo := newProductRepoMock(t)
	p := sampleProduct()

	// El match lo hace la base con lower(); el repo pasa el nombre tal cual.
	mock.ExpectQuery(`SELECT (.+) FROM productos WHERE lower\(nombre\) = lower\(\$1\)`).
		WithArgs("POLLO").
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow(p.ID, p.Name, p.MinStock, p.UnitsPerTray, p.UnitsPerBag, p.CreatedAt, p.UpdatedAt))

	got, err := repo.GetByName("POLLO")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Pollo", got.Name, "se devuelve el nombre canónico, no el buscado")
}

func TestProductRepo_List(t *testing.T) {
	mock, repo := newProductRepoMock(t)
	p1, p2 := sampleProduct(), sampleProduct()
	p2.Name = "Carne"

	mock.ExpectQuery(`SELECT (.+) FROM productos ORDER BY created_at ASC`).
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow(p1.ID, p1.Name, p1.MinStock, p1.UnitsPerTray, p1.UnitsPerBag, p1.CreatedAt, p1.UpdatedAt).
			AddRow(p2.ID, p2.Name, p2.MinStock, p2.UnitsPerTray, p2.UnitsPerBag, p2.CreatedAt, p2.UpdatedAt))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Pollo", list[0].Name)
	assert.Equal(t, "Carne", list[1].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update y Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_Update(t *testing.T) {
	mock, repo := newProductRepoMock(t)
	p := sampleProduct()

	mock.ExpectExec(`UPDATE productos SET`).
		WithArgs(p.ID, p.MinStock, p.UnitsPerTray, p.UnitsPerBag, p.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Update(p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Update_NoExiste(t *testing.T) {
	mock, repo := newProductRepoMock(t)
	p := sampleProduct()

	mock.ExpectExec(`UPDATE productos SET`).
		WithArgs(p.ID, p.MinStock, p.UnitsPerTray, p.UnitsPerBag, p.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.Update(p), domain.ErrNotFound)
}

func TestProductRepo_Delete(t *testing.T) {
	mock, repo := newProductRepoMock(t)

	mock.ExpectExec(`DELETE FROM productos WHERE id = \$1`).
		WithArgs("p1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete("p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Delete_NoExiste(t *testing.T) {
	mock, repo := newProductRepoMock(t)

	mock.ExpectExec(`DELETE FROM productos WHERE id = \$1`).
		WithArgs("fantasma").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete("fantasma"), domain.ErrNotFound)
}
