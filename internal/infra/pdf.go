package infra

import (
	"bytes"
	"strconv"

	"agronat/internal/model"

	"github.com/go-pdf/fpdf"
)

// BuildTicketPDF renders the printable receipt of one sale, sized for an
// 80mm thermal roll.
func BuildTicketPDF(v *model.Venta) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "mm",
		Size:    fpdf.SizeType{Wd: 80, Ht: 200},
	})
	pdf.SetMargins(5, 8, 5)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, "AGRONAT", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 4, tr("Comprobante de venta"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 4, tr("N° "+v.SaleID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 4, v.Fecha.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 4, tr("Cliente: "+v.Cliente), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 4, tr(v.Comprobante+" / "+v.MedioPago), "", 1, "L", false, 0, "")
	if v.EmpleadoNombre != "" {
		pdf.CellFormat(0, 4, tr("Atendido por: "+v.EmpleadoNombre), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(34, 4, tr("Producto"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(10, 4, "Cant", "B", 0, "R", false, 0, "")
	pdf.CellFormat(13, 4, "Precio", "B", 0, "R", false, 0, "")
	pdf.CellFormat(13, 4, "Subt", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, it := range v.Items {
		name := it.ProductoID.String()[:8]
		if it.Producto != nil {
			name = it.Producto.Name
		}
		if len(name) > 20 {
			name = name[:20]
		}
		pdf.CellFormat(34, 4, tr(name), "", 0, "L", false, 0, "")
		pdf.CellFormat(10, 4, strconv.Itoa(it.Cantidad), "", 0, "R", false, 0, "")
		pdf.CellFormat(13, 4, it.PrecioUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(13, 4, it.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(1)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(44, 5, "TOTAL", "T", 0, "L", false, 0, "")
	pdf.CellFormat(26, 5, "$ "+v.Total.StringFixed(2), "T", 1, "R", false, 0, "")

	estado := "PENDIENTE DE PAGO"
	if v.Abonado {
		estado = "PAGADO"
	}
	pdf.SetFont("Helvetica", "", 8)
	pdf.Ln(2)
	pdf.CellFormat(0, 4, estado, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4, tr("¡Gracias por su compra!"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
