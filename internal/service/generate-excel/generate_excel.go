package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"kitchen-calc/internal/storage"
)

type GenerateExcelStorage interface {
	GetUnit(ctx context.Context, unitID string) (*storage.UnitDocument, error)
	GetSummaryByUnit(ctx context.Context, unitID string) (*storage.SummaryDocument, error)
}

type GenerateExcelService struct {
	storage GenerateExcelStorage
}

func NewGenerateService(storage GenerateExcelStorage) *GenerateExcelService {
	return &GenerateExcelService{storage: storage}
}

// GenerateExcel renders the stored summary of a unit as an xlsx workbook.
// The summary must have been generated first; the workshop prints this
// sheet and cuts from it.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, unitID string) ([]byte, error) {
	unit, err := g.storage.GetUnit(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("fetch unit: %w", err)
	}
	summaryDoc, err := g.storage.GetSummaryByUnit(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("fetch summary: %w", err)
	}
	summary := summaryDoc.Summary

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Cut list"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 2}},
	})

	headers := []string{"Part", "Width, mm", "Height, mm", "Thickness, mm", "Qty", "Area, m²", "Edge band, m"}
	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	lastCol := cellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, item := range summary.Items {
		rowNum := rowIdx + 2
		f.SetCellValue(sheet, cellName(1, rowNum), item.PartName)
		f.SetCellValue(sheet, cellName(2, rowNum), item.WidthMM)
		f.SetCellValue(sheet, cellName(3, rowNum), item.HeightMM)
		if item.DepthMM > 0 {
			f.SetCellValue(sheet, cellName(4, rowNum), item.DepthMM)
		}
		f.SetCellValue(sheet, cellName(5, rowNum), item.Qty)
		f.SetCellValue(sheet, cellName(6, rowNum), item.AreaM2)
		f.SetCellValue(sheet, cellName(7, rowNum), item.EdgeBandM)
	}

	totalsRow := len(summary.Items) + 2
	f.SetCellValue(sheet, cellName(1, totalsRow), "Total")
	f.SetCellValue(sheet, cellName(5, totalsRow), summary.Totals.TotalQty)
	f.SetCellValue(sheet, cellName(6, totalsRow), summary.Totals.TotalAreaM2)
	f.SetCellValue(sheet, cellName(7, totalsRow), summary.Totals.TotalEdgeBandM)
	f.SetCellStyle(sheet, cellName(1, totalsRow), cellName(len(headers), totalsRow), totalStyle)

	infoRow := totalsRow + 2
	f.SetCellValue(sheet, cellName(1, infoRow), fmt.Sprintf("Unit %s (%s, %d×%d×%d mm)",
		unit.ID, unit.Type, unit.WidthMM, unit.HeightMM, unit.DepthMM))
	f.SetCellValue(sheet, cellName(1, infoRow+1), fmt.Sprintf("Plywood sheets: %.0f", summary.MaterialUsage.PlywoodSheets))
	f.SetCellValue(sheet, cellName(1, infoRow+2), fmt.Sprintf("Estimated cost: %.2f", summary.Costs.TotalCost))

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "",
		Selection:   nil,
	})

	f.SetColWidth(sheet, "A", "G", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
