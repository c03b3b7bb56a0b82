package report

import "time"

// GroupBy selects the aggregation dimension of a report.
type GroupBy string

const (
	GroupByProduct  GroupBy = "product"
	GroupByCustomer GroupBy = "customer"
	GroupByCategory GroupBy = "category"
	GroupByNone     GroupBy = "none"
)

// Format selects the output encoding of a report.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
)

// Intent is the structured interpretation of a free-text report request.
// It is produced fresh per request and never mutated afterwards.
type Intent struct {
	From    *time.Time
	To      *time.Time
	Format  Format
	GroupBy GroupBy
}

// Plan describes how one report variant is queried and presented: its
// grouping dimension, column headers, section title and the print layout's
// fixed column widths (in millimeters). There are exactly four plans, one
// per GroupBy value.
type Plan struct {
	GroupBy   GroupBy
	Title     string
	Headers   []string
	ColWidths []int
}

var plans = map[GroupBy]Plan{
	GroupByProduct: {
		GroupBy:   GroupByProduct,
		Title:     "Reporte de Ventas por Producto",
		Headers:   []string{"Producto", "Cantidad Total Vendida", "Monto Total (Bs)"},
		ColWidths: []int{76, 51, 51},
	},
	GroupByCustomer: {
		GroupBy:   GroupByCustomer,
		Title:     "Reporte de Ventas por Cliente",
		Headers:   []string{"Cliente (Correo)", "Cantidad de Ventas", "Monto Total (Bs)"},
		ColWidths: []int{76, 51, 51},
	},
	GroupByCategory: {
		GroupBy:   GroupByCategory,
		Title:     "Reporte de Ventas por Categoría",
		Headers:   []string{"Categoría", "Cantidad Total Vendida", "Monto Total (Bs)"},
		ColWidths: []int{76, 51, 51},
	},
	GroupByNone: {
		GroupBy:   GroupByNone,
		Title:     "Reporte General de Ventas",
		Headers:   []string{"ID Venta", "Fecha", "Cliente", "Método", "Total (Bs)"},
		ColWidths: []int{25, 38, 64, 38, 38},
	},
}

// PlanFor returns the plan for the given grouping dimension. Selection is
// total: unknown values fall back to the ungrouped plan.
func PlanFor(g GroupBy) Plan {
	if p, ok := plans[g]; ok {
		return p
	}
	return plans[GroupByNone]
}
