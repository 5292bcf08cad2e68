// Package pdf genera el catálogo público de anuncios aprobados usando
// Maroto v2: encabezado de la plataforma, tabla producto/vendedor/categoría/
// precio y pie con el total de anuncios.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/cafes-platform-api/internal/application/usecase"
	"github.com/jhoicas/cafes-platform-api/internal/domain/repository"
)

var _ usecase.CatalogPDFGenerator = (*CatalogGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 84, Green: 48, Blue: 5}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// CatalogGenerator implementa usecase.CatalogPDFGenerator con Maroto v2.
type CatalogGenerator struct {
	platformName string
}

// NewCatalogGenerator construye el generador.
func NewCatalogGenerator(platformName string) *CatalogGenerator {
	return &CatalogGenerator{platformName: platformName}
}

// GenerateCatalogPDF genera el catálogo y devuelve sus bytes.
func (g *CatalogGenerator) GenerateCatalogPDF(_ context.Context, ads []repository.ProductAdRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de productos", true).
		WithAuthor(g.platformName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.platformName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, ad := range ads {
		m.AddRows(detailRow(ad))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(ads)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar catálogo PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(platformName string) core.Row {
	return row.New(12).Add(
		text.NewCol(8, platformName, props.Text{
			Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
		}),
		text.NewCol(4, "Catálogo de productos aprobados", props.Text{
			Size: 9, Align: align.Right, Color: colorGray, Top: 3,
		}),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(7).Add(
		text.NewCol(4, "Producto", header),
		text.NewCol(3, "Vendedor", header),
		text.NewCol(3, "Categoría", header),
		text.NewCol(2, "Precio", props.Text{
			Size: 9, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right,
		}),
	)
}

func detailRow(ad repository.ProductAdRow) core.Row {
	cell := props.Text{Size: 8}
	return row.New(6).Add(
		text.NewCol(4, ad.ProductName, cell),
		text.NewCol(3, ad.VendorName, cell),
		text.NewCol(3, ad.Category, cell),
		text.NewCol(2, ad.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right}),
	)
}

func footerRow(count int) core.Row {
	return row.New(6).Add(
		text.NewCol(12, fmt.Sprintf("%d productos publicados", count), props.Text{
			Size: 7, Color: colorGray, Align: align.Right, Top: 2,
		}),
	)
}
