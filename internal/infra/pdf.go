package infra

// pdf.go — document generation with go-pdf/fpdf.
// Three documents mirror the shop's print views:
//   - Factura: 80mm thermal-style invoice for a single sale.
//   - Reporte gerencial: A4 sales table for a filtered period.
//   - Estado de inventario: A4 catalog table with totals block.

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
)

// Negocio is the shop identity printed on every document.
type Negocio struct {
	Nombre string
	NIT    string
	Ciudad string
}

// GenerateFacturaPDF renders a thermal receipt-style invoice for a committed
// sale: shop header, invoice id and date, customer block, itemized lines and
// bold total.
func GenerateFacturaPDF(negocio Negocio, venta model.Venta, cliente model.Cliente) ([]byte, error) {
	// 74mm wide, roughly thermal paper; height grows with the item count.
	alto := 95.0 + float64(len(venta.Items))*5.0
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: alto},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, negocio.Nombre, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 4, "NIT: "+negocio.NIT, "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 4, negocio.Ciudad, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Invoice info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, "Factura: #"+venta.ID.String()[:8], "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, "Fecha: "+venta.Fecha.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(1)

	// ── Customer block ───────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, "CLIENTE: "+cliente.Nombre, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, "CC/NIT: "+valorODefecto(cliente.Documento), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, "TEL: "+valorODefecto(cliente.Telefono), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Item rows ────────────────────────────────────────────────────────────
	col1 := contentW * 0.62
	col2 := contentW * 0.38

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range venta.Items {
		nombre := item.Nombre
		if len(nombre) > 22 {
			nombre = nombre[:21] + "…"
		}
		etiqueta := fmt.Sprintf("%s x%s", nombre, item.Cantidad.String())
		pdf.CellFormat(col1, 5, etiqueta, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, model.FormatCOP(item.Subtotal()), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, model.FormatCOP(venta.Total), "", 1, "R", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Gracias por su compra.", "", 1, "C", false, 0, "")

	return pdfBytes(pdf)
}

// GenerateReporteVentasPDF renders the management sales report for an
// already-filtered period: one row per invoice plus revenue/profit summary.
func GenerateReporteVentasPDF(negocio Negocio, ventas []model.Venta, periodo string, generado time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "REPORTE GERENCIAL - "+negocio.Nombre, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Filtro: "+periodo, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Generado el: "+generado.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	cols := []float64{contentW * 0.18, contentW * 0.14, contentW * 0.28, contentW * 0.20, contentW * 0.20}
	headers := []string{"Factura", "Fecha", "Cliente", "Total", "Utilidad"}

	pdf.SetFont("Helvetica", "B", 8)
	for i, h := range headers {
		pdf.CellFormat(cols[i], 6, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	ingresos := decimal.Zero
	utilidad := decimal.Zero
	pdf.SetFont("Helvetica", "", 8)
	for _, v := range ventas {
		ingresos = ingresos.Add(v.Total)
		utilidad = utilidad.Add(v.Utilidad())
		fila := []string{
			v.ID.String()[:8],
			v.Fecha.Format("02/01/2006"),
			v.ClienteNombre,
			model.FormatCOP(v.Total),
			model.FormatCOP(v.Utilidad()),
		}
		for i, celda := range fila {
			pdf.CellFormat(cols[i], 6, celda, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Total Ventas: "+model.FormatCOP(ingresos), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW, 6, "Utilidad Bruta Total: "+model.FormatCOP(utilidad), "", 1, "R", false, 0, "")

	return pdfBytes(pdf)
}

// GenerateInventarioPDF renders the inventory-state report: catalog rows and
// a totals block with invested cost and expected sale value.
func GenerateInventarioPDF(negocio Negocio, productos []model.Producto, generado time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "ESTADO DE INVENTARIO - "+negocio.Nombre, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Generado el: "+generado.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	cols := []float64{contentW * 0.26, contentW * 0.14, contentW * 0.14, contentW * 0.15, contentW * 0.15, contentW * 0.16}
	headers := []string{"Producto", "Categoria", "Stock", "Costo", "Venta", "Vlr. Total"}

	pdf.SetFont("Helvetica", "B", 8)
	for i, h := range headers {
		pdf.CellFormat(cols[i], 6, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	costoTotal := decimal.Zero
	ventaTotal := decimal.Zero
	pdf.SetFont("Helvetica", "", 8)
	for _, p := range productos {
		valorVenta := p.PrecioVenta.Mul(p.Stock)
		costoTotal = costoTotal.Add(p.PrecioCosto.Mul(p.Stock))
		ventaTotal = ventaTotal.Add(valorVenta)
		fila := []string{
			p.Nombre,
			string(p.Categoria),
			p.Stock.String() + " " + string(p.Unidad),
			model.FormatCOP(p.PrecioCosto),
			model.FormatCOP(p.PrecioVenta),
			model.FormatCOP(valorVenta),
		}
		for i, celda := range fila {
			pdf.CellFormat(cols[i], 6, celda, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Costo Total del Inventario (Inversion): "+model.FormatCOP(costoTotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW, 6, "Valor Total a la Venta (Ingreso Esperado): "+model.FormatCOP(ventaTotal), "", 1, "R", false, 0, "")

	return pdfBytes(pdf)
}

func pdfBytes(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}

func valorODefecto(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
