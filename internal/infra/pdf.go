package infra

// pdf.go — Printable work order sheet using go-pdf/fpdf.
// A5 maintenance sheet with:
//   - Fleet header
//   - Work order id, vehicle VIN and status
//   - Description block
//   - Consumed parts table (part number, quantity)
//
// The output file is saved to storagePath/workorder_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateWorkOrderPDF renders a printable sheet for a work order.
// storagePath is the directory where the PDF will be written (created if needed).
// Returns the absolute path to the generated file.
func GenerateWorkOrderPDF(wo *model.WorkOrder, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("workorder_%s.pdf", wo.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Bus Fleet Maintenance", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Work Order Sheet", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Order info ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Order %s", wo.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Vehicle VIN: %s", wo.VehicleVIN), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Status: %s", wo.Status), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, wo.CreatedAt.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)

	// ── Description ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, "Description", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(contentW, 5, wo.Description, "", "L", false)
	pdf.Ln(2)

	// ── Parts table ──────────────────────────────────────────────────────────
	col1 := contentW * 0.7
	col2 := contentW * 0.3

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Part Number", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Qty Used", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range wo.ItemsUsed {
		pdf.CellFormat(col1, 6, item.PartNumber, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", item.QuantityUsed), "", 1, "R", false, 0, "")
	}
	if len(wo.ItemsUsed) == 0 {
		pdf.CellFormat(contentW, 6, "No parts consumed", "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
