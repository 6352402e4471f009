// Package pdf implementa la hoja imprimible de una orden de producción.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Código de orden  │  Taller + Estado                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTO: SKU + nombre + cantidades + fechas               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Materia prima | Por unidad | Total requerido        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECEPCIONES: Fecha | Cantidad | Nota                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/jhoicas/textil-api/internal/application/production"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSheetGenerator implementa production.PrintSheetGenerator usando Maroto v2.
type MarotoSheetGenerator struct{}

// NewMarotoSheetGenerator construye el generador.
func NewMarotoSheetGenerator() *MarotoSheetGenerator { return &MarotoSheetGenerator{} }

// Generate genera la hoja de la orden y devuelve sus bytes.
func (g *MarotoSheetGenerator) Generate(data production.PrintSheetData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Producción "+data.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(productRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de materias primas
	m.AddRows(materialsHeaderRow())
	for _, req := range data.Requirements {
		m.AddRows(materialRow(req))
	}

	// Historial de recepciones
	if len(data.Receipts) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(receiptsHeaderRow())
		for _, rec := range data.Receipts {
			m.AddRows(receiptRow(rec))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: código de la orden (izq), taller y estado (der).
func headerRow(data production.PrintSheetData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ORDEN DE PRODUCCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Code, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 7,
			}),
		),
		col.New(5).Add(
			text.New("Taller: "+nonEmpty(data.WarehouseName, "—"), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Estado: "+data.Status, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 10,
			}),
		),
	)
}

// productRow: producto de salida, cantidades y fechas.
func productRow(data production.PrintSheetData) core.Row {
	fechas := fmt.Sprintf("Inicio: %s   |   Entrega: %s",
		data.StartDate.Format("02/01/2006"), data.DueDate.Format("02/01/2006"))
	return row.New(16).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%s — %s", data.ProductSKU, data.ProductName), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1,
			}),
			text.New(fmt.Sprintf("Planificado: %s   |   Recibido: %s",
				data.Planned.String(), data.Finished.String()), props.Text{Size: 9, Top: 7}),
			text.New(fechas, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func materialsHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New("MATERIA PRIMA", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary})),
		col.New(3).Add(text.New("POR UNIDAD", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary})),
		col.New(3).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary})),
	)
}

func materialRow(req production.Requirement) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(fmt.Sprintf("%s — %s", req.SKU, req.Name), props.Text{Size: 8})),
		col.New(3).Add(text.New(req.QuantityPerUnit.String(), props.Text{Size: 8, Align: align.Right})),
		col.New(3).Add(text.New(req.TotalRequired.String(), props.Text{Size: 8, Align: align.Right})),
	)
}

func receiptsHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(4).Add(text.New("FECHA", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary})),
		col.New(3).Add(text.New("CANTIDAD", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary})),
		col.New(5).Add(text.New("NOTA", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary})),
	)
}

func receiptRow(rec production.PrintReceipt) core.Row {
	return row.New(6).Add(
		col.New(4).Add(text.New(rec.Date.Format("02/01/2006 15:04"), props.Text{Size: 8})),
		col.New(3).Add(text.New(rec.Quantity.String(), props.Text{Size: 8, Align: align.Right})),
		col.New(5).Add(text.New(nonEmpty(rec.Note, "—"), props.Text{Size: 8, Color: colorGray})),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
