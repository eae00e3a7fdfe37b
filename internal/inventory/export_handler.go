package inventory

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"oktodeck-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/stock/export?format=xlsx|csv
// Exports the full stock list in store order. Filename follows the
// original app's OKTO-DECK-YYYY-MM-DD convention.
func ExportStockHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items := s.Items()
		if len(items) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "No items to export")
		}

		name := "OKTO-DECK-" + time.Now().Format("2006-01-02")

		switch c.Query("format", "csv") {
		case "csv":
			var buf bytes.Buffer
			w := csv.NewWriter(&buf)
			_ = w.Write([]string{"Item Name", "Quantity", "Box"})
			for _, it := range items {
				_ = w.Write([]string{it.Name, strconv.Itoa(it.Quantity), it.Box})
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not build CSV")
			}

			c.Set(fiber.HeaderContentType, "text/csv")
			c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name+".csv"))
			return c.Send(buf.Bytes())

		case "xlsx":
			f := excelize.NewFile()
			defer f.Close()

			const sheet = "Stock"
			f.SetSheetName("Sheet1", sheet)
			_ = f.SetSheetRow(sheet, "A1", &[]any{"Item Name", "Quantity", "Box"})
			for i, it := range items {
				cell, _ := excelize.CoordinatesToCellName(1, i+2)
				_ = f.SetSheetRow(sheet, cell, &[]any{it.Name, it.Quantity, it.Box})
			}

			var buf bytes.Buffer
			if err := f.Write(&buf); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not build spreadsheet")
			}

			c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name+".xlsx"))
			return c.Send(buf.Bytes())

		default:
			return fiber.NewError(fiber.StatusBadRequest, "format must be csv or xlsx")
		}
	}
}
