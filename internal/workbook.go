package internal

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"prodmix/tables"
)

// LoadWorkbook reads one worksheet of an .xlsx workbook into a source
// table. An empty sheet name selects the workbook's first sheet. The first
// row is taken as headers; structural problems (missing columns) surface
// later in Normalize, not here.
func LoadWorkbook(path, sheet string) (tables.SourceTableSpec, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return tables.SourceTableSpec{}, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer file.Close()

	if sheet == "" {
		sheet = file.GetSheetName(0)
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return tables.SourceTableSpec{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return tables.SourceTableSpec{}, fmt.Errorf("sheet %q is empty", sheet)
	}

	return tables.SourceTableSpec{
		Headers: rows[0],
		Rows:    rows[1:],
	}, nil
}
