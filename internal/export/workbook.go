package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/app/material/domain/services"
	"github.com/murkotick/material-tracking-service/internal/app/material/utils"
)

const (
	SheetMaterials = "Materials"
	SheetHistory   = "History"
	SheetSummary   = "Summary"
)

var (
	materialHeader = []interface{}{"material_id", "name", "category", "quantity", "unit", "price", "supplier", "status", "confirmed", "line_cost", "updated_at"}
	historyHeader  = []interface{}{"material_id", "material", "field", "old_value", "new_value", "changed_at", "changed_by", "confirmed", "confirmed_by", "confirmed_at"}
)

// BuildWorkbook renders a project with its materials, their change history and
// the status and cost summary as an xlsx document.
func BuildWorkbook(project *domain.Project) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetMaterials); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetHistory, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("new sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	cost := services.NewCostCalculator()
	materialRows := make([][]interface{}, 0, len(project.Materials()))
	var historyRows [][]interface{}
	for _, m := range project.Materials() {
		var price interface{}
		if p := m.Price(); p != nil {
			price = *p
		}
		lineCost, _ := cost.LineCost(m).Float64()
		materialRows = append(materialRows, []interface{}{
			m.ID(), m.Name(), m.Category(), m.Quantity(), m.Unit(), price, m.Supplier(),
			string(m.Status()), m.Confirmed(), lineCost, utils.FormatTime(m.UpdatedAt()),
		})

		for _, h := range m.History() {
			confirmedAt := ""
			if h.ConfirmedAt != nil {
				confirmedAt = utils.FormatTime(*h.ConfirmedAt)
			}
			historyRows = append(historyRows, []interface{}{
				m.ID(), m.Name(), string(h.Field), h.OldValue.String(), h.NewValue.String(),
				utils.FormatTime(h.ChangedAt), h.ChangedBy, h.Confirmed, h.ConfirmedBy, confirmedAt,
			})
		}
	}

	if err := writeTable(f, SheetMaterials, materialHeader, materialRows, bold); err != nil {
		return nil, err
	}
	if err := writeTable(f, SheetHistory, historyHeader, historyRows, bold); err != nil {
		return nil, err
	}

	s := services.NewSummaryCalculator().Summarize(project)
	c := cost.ProjectCost(project)
	summaryRows := [][]interface{}{
		{"project_id", project.ID()},
		{"project", project.Name()},
		{"status", string(project.Status())},
		{"total_materials", s.TotalMaterials},
		{"pending_materials", s.PendingMaterials},
		{"ordered_materials", s.OrderedMaterials},
		{"delivered_materials", s.DeliveredMaterials},
		{"recent_changes", s.RecentChanges},
		{"total_cost", c.Total.StringFixed(2)},
		{"pending_cost", c.Pending.StringFixed(2)},
		{"ordered_cost", c.Ordered.StringFixed(2)},
		{"delivered_cost", c.Delivered.StringFixed(2)},
		{"unpriced_materials", c.Unpriced},
	}
	if err := writeTable(f, SheetSummary, []interface{}{"key", "value"}, summaryRows, bold); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("%s header style: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
