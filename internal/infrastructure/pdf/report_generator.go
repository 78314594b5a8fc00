// Package pdf implementa la generación del reporte imprimible de alertas
// de stock bajo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa │ Fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Bodega | Stock | Umbral | Días      │
//	│         | Proveedor                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE ALERTAS                                            │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/tu-usuario/inventory-alerts/internal/application/alerts"
	"github.com/tu-usuario/inventory-alerts/internal/application/dto"
)

var _ alerts.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa alerts.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLowStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLowStockReport(
	_ context.Context,
	companyName string,
	alertList []dto.LowStockAlertDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Alertas de Stock Bajo", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, a := range alertList {
		m.AddRows(alertRow(a))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(len(alertList)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y fecha de generación (der).
func headerRow(companyName string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Alertas de stock bajo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 9, Top: 1, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		col.New(2).Add(text.New("SKU", header)),
		col.New(3).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Bodega", header)),
		col.New(1).Add(text.New("Stock", headerRight)),
		col.New(1).Add(text.New("Umbral", headerRight)),
		col.New(1).Add(text.New("Días", headerRight)),
		col.New(2).Add(text.New("Proveedor", header)),
	)
}

func alertRow(a dto.LowStockAlertDTO) core.Row {
	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}
	supplier := "—"
	if a.Supplier != nil {
		supplier = a.Supplier.Name
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(a.SKU, cell)),
		col.New(3).Add(text.New(a.ProductName, cell)),
		col.New(2).Add(text.New(a.WarehouseName, cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", a.CurrentQuantity), cellRight)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", a.LowStockThreshold), cellRight)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", a.DaysUntilStockout), cellRight)),
		col.New(2).Add(text.New(supplier, cell)),
	)
}

func totalRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("TOTAL DE ALERTAS: %d", total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
		),
	)
}
