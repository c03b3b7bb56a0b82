package render

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// defaultReportTemplate is the built-in print layout: banner, generation
// timestamp, KPI band, section title and the data table. Deployments can
// override it with their own "report.html" on disk.
const defaultReportTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1f2933; margin: 0; }
  .banner { background: #1d4ed8; color: #ffffff; padding: 14px 18px; }
  .banner h1 { margin: 0; font-size: 20px; }
  .banner p { margin: 4px 0 0; font-size: 11px; }
  .stats { display: flex; gap: 10px; margin: 16px 18px 0; }
  .stat { flex: 1; border: 1px solid #cbd5e1; border-radius: 4px; padding: 10px; text-align: center; }
  .stat .label { display: block; font-size: 10px; text-transform: uppercase; color: #64748b; }
  .stat .value { display: block; font-size: 16px; font-weight: bold; margin-top: 4px; }
  h2 { margin: 18px 18px 8px; font-size: 14px; }
  table { border-collapse: collapse; margin: 0 18px; font-size: 10px; }
  th { background: #e2e8f0; text-align: left; }
  th, td { border: 1px solid #cbd5e1; padding: 4px 6px; }
  .note { margin: 8px 18px; font-size: 9px; color: #64748b; }
</style>
</head>
<body>
<div class="banner">
  <h1>SmartSales 365</h1>
  <p>Generado: {{.GeneratedAt}}</p>
</div>
<div class="stats">
  <div class="stat"><span class="label">Total de Ventas</span><span class="value">{{.TicketCount}}</span></div>
  <div class="stat"><span class="label">Cantidad Total</span><span class="value">{{.TotalQuantity}}</span></div>
  <div class="stat"><span class="label">Monto Total (Bs)</span><span class="value">{{.TotalAmount}}</span></div>
</div>
<h2>{{.Title}}</h2>
<table>
  <tr>
  {{- range $i, $h := .Headers}}
    <th style="width: {{index $.ColWidths $i}}mm">{{$h}}</th>
  {{- end}}
  </tr>
  {{- range .Rows}}
  <tr>
    {{- range .}}
    <td>{{.}}</td>
    {{- end}}
  </tr>
  {{- end}}
</table>
{{- if .Truncated}}
<p class="note">Mostrando las primeras {{len .Rows}} filas de {{.TotalRows}}.</p>
{{- end}}
</body>
</html>
`

// documentView is the data handed to the report template. All values are
// pre-formatted strings, the template does layout only.
type documentView struct {
	Title         string
	GeneratedAt   string
	TicketCount   int64
	TotalQuantity string
	TotalAmount   string
	Headers       []string
	ColWidths     []int
	Rows          [][]string
	TotalRows     int
	Truncated     bool
}

// TemplateEngine renders the report print layout to HTML.
type TemplateEngine struct {
	tpl *template.Template
}

// NewTemplateEngine creates a template engine. When glob matches files on
// disk those templates replace the built-in layout, otherwise the default
// is used.
func NewTemplateEngine(glob string) (*TemplateEngine, error) {
	root := template.New("report.html").Funcs(reportFuncMap())

	if glob != "" {
		if matches, _ := filepath.Glob(glob); len(matches) > 0 {
			parsed, err := root.ParseGlob(glob)
			if err != nil {
				return nil, fmt.Errorf("failed to parse report templates: %w", err)
			}
			return &TemplateEngine{tpl: parsed}, nil
		}
	}

	parsed, err := root.Parse(defaultReportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in report template: %w", err)
	}
	return &TemplateEngine{tpl: parsed}, nil
}

func (e *TemplateEngine) render(view *documentView) (string, error) {
	var buf bytes.Buffer
	if err := e.tpl.ExecuteTemplate(&buf, "report.html", view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func reportFuncMap() template.FuncMap {
	return template.FuncMap{
		"formatMoney": formatMoney,
		"formatQty":   formatQty,
		"upper":       strings.ToUpper,
	}
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatQty(d decimal.Decimal) string {
	return d.StringFixed(0)
}

func formatTimestamp(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
