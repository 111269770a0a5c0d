// Package pdf implementa el reporte imprimible del estado de inventario.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Inventario + fecha de generación     │
//	│  ──────────────────────────────────────────────────────  │
//	│  TABLA: Sabor | Stock | Mínimo | Bandeja | Bolsa | Estado│
//	│  ──────────────────────────────────────────────────────  │
//	│  RESUMEN: total de sabores / sabores en alerta           │
//	└──────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/wcondori/api-saltenas/internal/application/analytics"
	"github.com/wcondori/api-saltenas/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 180, Green: 70, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 200, Green: 30, Blue: 30}
	colorOK      = &props.Color{Red: 30, Green: 140, Blue: 60}
)

var _ analytics.InventoryPDFGenerator = (*MarotoInventoryPDF)(nil)

// MarotoInventoryPDF implementa analytics.InventoryPDFGenerator usando Maroto v2.
type MarotoInventoryPDF struct{}

// NewMarotoInventoryPDF construye el generador.
func NewMarotoInventoryPDF() *MarotoInventoryPDF { return &MarotoInventoryPDF{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoInventoryPDF) GenerateInventoryPDF(_ context.Context, items []dto.InventarioItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, item := range items {
		m.AddRows(itemRow(item))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
			text.New("Control de Bandejas y Bolsas", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header("Sabor", 4),
		header("Stock", 2),
		header("Mínimo", 2),
		header("Bandeja", 1),
		header("Bolsa", 1),
		header("Estado", 2),
	)
}

func itemRow(item dto.InventarioItem) core.Row {
	estado := "OK"
	estadoColor := colorOK
	if item.Alerta {
		estado = "STOCK BAJO"
		estadoColor = colorAlert
	}
	cell := func(value string, size int) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 9, Top: 1}))
	}
	return row.New(6).Add(
		cell(item.Nombre, 4),
		cell(fmt.Sprintf("%d", item.StockActual), 2),
		cell(fmt.Sprintf("%d", item.StockMinimo), 2),
		cell(fmt.Sprintf("%d", item.UnidadesPorBandeja), 1),
		cell(fmt.Sprintf("%d", item.UnidadesPorBolsa), 1),
		col.New(2).Add(text.New(estado, props.Text{
			Size: 9, Top: 1, Style: fontstyle.Bold, Color: estadoColor,
		})),
	)
}

func summaryRow(items []dto.InventarioItem) core.Row {
	alertas := 0
	for _, item := range items {
		if item.Alerta {
			alertas++
		}
	}
	resumen := fmt.Sprintf("%d sabores registrados, %d en alerta de stock", len(items), alertas)
	return row.New(8).Add(
		col.New(12).Add(text.New(resumen, props.Text{
			Size: 9, Top: 2, Color: colorGray,
		})),
	)
}
