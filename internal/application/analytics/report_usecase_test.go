package analytics_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcondori/api-saltenas/internal/application/analytics"
	"github.com/wcondori/api-saltenas/internal/domain/entity"
	"github.com/wcondori/api-saltenas/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type reportFixture struct {
	uc      *analytics.ReportUseCase
	movRepo *memory.MovementRepo
	pollo   string
	carne   string
}

func newReportFixture(t *testing.T) reportFixture {
	t.Helper()
	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	movRepo := memory.NewMovementRepository(store)

	now := time.Now()
	pollo := &entity.Product{ID: uuid.New().String(), Name: "Pollo", MinStock: 10,
		UnitsPerTray: 30, UnitsPerBag: 10, CreatedAt: now, UpdatedAt: now}
	carne := &entity.Product{ID: uuid.New().String(), Name: "Carne", MinStock: 10,
		UnitsPerTray: 30, UnitsPerBag: 10, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, productRepo.Create(pollo))
	require.NoError(t, productRepo.Create(carne))

	return reportFixture{
		uc:      analytics.NewReportUseCase(productRepo, movRepo),
		movRepo: movRepo,
		pollo:   pollo.ID,
		carne:   carne.ID,
	}
}

// addMovement anota un asiento con fecha controlada (el caso de uso de intake
// siempre usa time.Now; para los buckets se necesita fecha exacta).
func (f reportFixture) addMovement(t *testing.T, productID string, quantity int, date time.Time) {
	t.Helper()
	tipo := entity.MovementTypePRODUCCION
	if quantity < 0 {
		tipo = entity.MovementTypeVENTA
	}
	require.NoError(t, f.movRepo.Create(&entity.Movement{
		ID:        uuid.New().String(),
		ProductID: productID,
		Quantity:  quantity,
		Type:      tipo,
		Date:      date,
		CreatedAt: date,
	}))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregación diaria
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_DiarioUnBucketPorFechaConMovimientos(t *testing.T) {
	f := newReportFixture(t)
	f.addMovement(t, f.pollo, 60, date(2025, time.March, 3))
	f.addMovement(t, f.pollo, -10, date(2025, time.March, 5))

	matrix, err := f.uc.Aggregate(analytics.GranularityDaily, 0)
	require.NoError(t, err)

	require.Len(t, matrix, 2, "dos fechas distintas deben producir dos buckets")
	assert.Equal(t, map[string]int{"Entrada: Pollo": 60}, matrix["2025-03-03"])
	assert.Equal(t, map[string]int{"Salida: Pollo": 10}, matrix["2025-03-05"],
		"la salida se reporta en magnitud, no con signo")
}

func TestAggregate_SumaPorFechaDireccionYProducto(t *testing.T) {
	f := newReportFixture(t)
	d := date(2025, time.March, 3)
	f.addMovement(t, f.pollo, 30, d)
	f.addMovement(t, f.pollo, 30, d)
	f.addMovement(t, f.pollo, -10, d)
	f.addMovement(t, f.carne, -20, d)

	matrix, err := f.uc.Aggregate(analytics.GranularityDaily, 0)
	require.NoError(t, err)

	require.Len(t, matrix, 1)
	assert.Equal(t, map[string]int{
		"Entrada: Pollo": 60,
		"Salida: Pollo":  10,
		"Salida: Carne":  20,
	}, matrix["2025-03-03"])
}

func TestAggregate_SinMovimientosMatrizVacia(t *testing.T) {
	f := newReportFixture(t)

	matrix, err := f.uc.Aggregate(analytics.GranularityDaily, 0)
	require.NoError(t, err)
	assert.Empty(t, matrix, "sin movimientos no hay buckets, ni siquiera vacíos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregación mensual
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_MensualAgrupaDiasDelMismoMes(t *testing.T) {
	f := newReportFixture(t)
	f.addMovement(t, f.pollo, 30, date(2025, time.March, 3))
	f.addMovement(t, f.pollo, 30, date(2025, time.March, 28))
	f.addMovement(t, f.pollo, -10, date(2025, time.April, 1))

	matrix, err := f.uc.Aggregate(analytics.GranularityMonthly, 0)
	require.NoError(t, err)

	require.Len(t, matrix, 2)
	assert.Equal(t, map[string]int{"Entrada: Pollo": 60}, matrix["2025-03"])
	assert.Equal(t, map[string]int{"Salida: Pollo": 10}, matrix["2025-04"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventana acotada
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_VentanaConservaLosBucketsMasRecientes(t *testing.T) {
	f := newReportFixture(t)
	for day := 1; day <= 20; day++ {
		f.addMovement(t, f.pollo, -10, date(2025, time.March, day))
	}

	matrix, err := f.uc.Aggregate(analytics.GranularityDaily, 14)
	require.NoError(t, err)

	require.Len(t, matrix, 14)
	assert.NotContains(t, matrix, "2025-03-06", "los días viejos salen de la ventana")
	assert.Contains(t, matrix, "2025-03-07")
	assert.Contains(t, matrix, "2025-03-20")
}

func TestAggregate_VentanaMayorQueElHistorialNoRecorta(t *testing.T) {
	f := newReportFixture(t)
	f.addMovement(t, f.pollo, 30, date(2025, time.March, 3))

	matrix, err := f.uc.Aggregate(analytics.GranularityDaily, 14)
	require.NoError(t, err)
	assert.Len(t, matrix, 1)
}
