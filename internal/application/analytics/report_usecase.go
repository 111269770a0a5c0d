// Package analytics contiene los casos de uso de reportes: la matriz
// fecha/serie que alimenta la gráfica apilada del Dashboard y el reporte
// imprimible de inventario.
package analytics

import (
	"sort"

	"github.com/wcondori/api-saltenas/internal/application/dto"
	"github.com/wcondori/api-saltenas/internal/domain/entity"
	"github.com/wcondori/api-saltenas/internal/domain/repository"
)

// Granularity del bucketing de reportes.
type Granularity string

const (
	GranularityDaily   Granularity = "diario"
	GranularityMonthly Granularity = "mensual"
)

func (g Granularity) layout() string {
	if g == GranularityMonthly {
		return "2006-01"
	}
	return "2006-01-02"
}

// Prefijos de serie según la dirección del movimiento. La dirección la decide
// el signo del delta, no el tipo.
const (
	seriesInPrefix  = "Entrada: "
	seriesOutPrefix = "Salida: "
)

// ReportUseCase agrupa el libro de movimientos en buckets por fecha y serie
// por producto/dirección. Siempre recalcula desde el libro completo; con los
// volúmenes de una salteñería no hay nada que mantener incremental.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *ReportUseCase {
	return &ReportUseCase{productRepo: productRepo, movRepo: movRepo}
}

// Aggregate construye la matriz fecha -> serie -> unidades en una sola pasada
// sobre el libro. Solo aparecen buckets de fechas con al menos un movimiento.
// Se reporta la magnitud (valor absoluto), el signo ya viaja en el prefijo de
// la serie. lastN > 0 recorta a los N buckets más recientes; el recorte se
// hace sobre la agregación completa, no hay un camino de datos aparte.
func (uc *ReportUseCase) Aggregate(granularity Granularity, lastN int) (dto.ReportMatrix, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	movements, err := uc.movRepo.ListAll(nil, nil)
	if err != nil {
		return nil, err
	}

	layout := granularity.layout()
	matrix := make(dto.ReportMatrix)
	for _, m := range movements {
		name, ok := names[m.ProductID]
		if !ok {
			// La cascada de borrado no deja huérfanos; si algo llega aquí es
			// un movimiento de un producto recién borrado en otra petición.
			continue
		}
		bucket := m.Date.Format(layout)
		series := seriesKey(m, name)
		if matrix[bucket] == nil {
			matrix[bucket] = make(map[string]int)
		}
		matrix[bucket][series] += abs(m.Quantity)
	}

	if lastN > 0 && len(matrix) > lastN {
		trimToMostRecent(matrix, lastN)
	}
	return matrix, nil
}

func seriesKey(m *entity.Movement, productName string) string {
	if m.Quantity >= 0 {
		return seriesInPrefix + productName
	}
	return seriesOutPrefix + productName
}

// trimToMostRecent borra de la matriz todos los buckets menos los lastN más
// recientes. Las llaves ISO ordenan lexicográfica == cronológicamente.
func trimToMostRecent(matrix dto.ReportMatrix, lastN int) {
	keys := make([]string, 0, len(matrix))
	for k := range matrix {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys[:len(keys)-lastN] {
		delete(matrix, k)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
