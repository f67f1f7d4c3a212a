package infra

import (
	"bytes"
	"fmt"

	"agronat/internal/model"

	"github.com/xuri/excelize/v2"
)

var ventasHeader = []string{
	"N° Venta", "Fecha", "Cliente", "Comprobante", "Medio de pago",
	"Empleado", "Abonado", "Items", "Total",
}

var productosHeader = []string{
	"Código", "Nombre", "Proveedor", "Categoría", "Stock", "Medida", "Precio final", "Activo",
}

// BuildVentasWorkbook renders the sales report spreadsheet: one sheet with
// the sale ledger, one with the current product catalog and its stock.
func BuildVentasWorkbook(ventas []model.Venta, productos []model.Producto) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, err
	}

	if err := writeVentasSheet(f, ventas, headerStyle); err != nil {
		return nil, err
	}
	if err := writeProductosSheet(f, productos, headerStyle); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeVentasSheet(f *excelize.File, ventas []model.Venta, headerStyle int) error {
	const sheet = "Ventas"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	for col, title := range ventasHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "I1", headerStyle); err != nil {
		return err
	}

	for i, v := range ventas {
		row := i + 2
		abonado := "No"
		if v.Abonado {
			abonado = "Sí"
		}
		items := 0
		for _, it := range v.Items {
			items += it.Cantidad
		}
		total, _ := v.Total.Float64()
		values := []interface{}{
			v.SaleID,
			v.Fecha.Format("2006-01-02 15:04"),
			v.Cliente,
			v.Comprobante,
			v.MedioPago,
			v.EmpleadoNombre,
			abonado,
			items,
			total,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(sheet, "A", "I", 16)
}

func writeProductosSheet(f *excelize.File, productos []model.Producto, headerStyle int) error {
	const sheet = "Productos"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	for col, title := range productosHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "H1", headerStyle); err != nil {
		return err
	}

	for i, p := range productos {
		row := i + 2
		activo := "No"
		if p.Active {
			activo = "Sí"
		}
		precio, _ := p.PriceFinal.Float64()
		values := []interface{}{
			p.Code, p.Name, p.Provider, p.Category, p.Quantity, p.Medida, precio, activo,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(sheet, "A", "H", 16)
}

// SheetRowCount is a helper for tests: data rows of a sheet, excluding the
// header.
func SheetRowCount(data []byte, sheet string) (int, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	defer f.Close()
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("hoja vacia: %s", sheet)
	}
	return len(rows) - 1, nil
}
