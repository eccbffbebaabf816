// Package pdf implementa la generación del reporte de ledger de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Dueño + email       │  "LEDGER DE STOCK" + fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Stock | P.Unit | Valor | Estado |   │
//	│         Ubicación                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor del inventario                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/reports"
)

var _ reports.LedgerPDFGenerator = (*MarotoLedgerGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLowRed  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoLedgerGenerator implementa reports.LedgerPDFGenerator usando Maroto v2.
type MarotoLedgerGenerator struct{}

// NewMarotoLedgerGenerator construye el generador.
func NewMarotoLedgerGenerator() *MarotoLedgerGenerator { return &MarotoLedgerGenerator{} }

// GenerateLedgerPDF genera el PDF y devuelve sus bytes.
func (g *MarotoLedgerGenerator) GenerateLedgerPDF(
	_ context.Context,
	owner dto.UserResponse,
	ledger *dto.LedgerDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ledger de Stock", true).
		WithAuthor(owner.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(owner, ledger))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range ledger.Rows {
		m.AddRows(tableRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(ledger))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: dueño + email (izq) y título + fecha de generación (der).
func headerRow(owner dto.UserResponse, ledger *dto.LedgerDTO) core.Row {
	fecha := ledger.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(owner.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(owner.Email, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("LEDGER DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fecha, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, alignment align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: alignment, Color: colorPrimary,
		}))
	}
	return row.New(7).Add(
		header(2, "SKU", align.Left),
		header(3, "Producto", align.Left),
		header(1, "Stock", align.Right),
		header(2, "P. Unit", align.Right),
		header(2, "Valor", align.Right),
		header(1, "Estado", align.Center),
		header(1, "Ubicación", align.Left),
	)
}

func tableRow(r dto.LedgerRowDTO) core.Row {
	statusColor := colorGray
	if r.Status == "Low" {
		statusColor = colorLowRed
	}
	cell := func(size int, value string, alignment align.Type, color *props.Color) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: alignment, Color: color}))
	}
	return row.New(6).Add(
		cell(2, r.SKU, align.Left, nil),
		cell(3, r.Name, align.Left, nil),
		cell(1, fmt.Sprintf("%d", r.Stock), align.Right, nil),
		cell(2, r.UnitPrice.StringFixed(2), align.Right, nil),
		cell(2, r.StockValue.StringFixed(2), align.Right, nil),
		cell(1, r.Status, align.Center, statusColor),
		cell(1, r.Location, align.Left, nil),
	)
}

func totalRow(ledger *dto.LedgerDTO) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("VALOR TOTAL DEL INVENTARIO", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
		col.New(4).Add(text.New(ledger.TotalValue.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
		})),
	)
}
