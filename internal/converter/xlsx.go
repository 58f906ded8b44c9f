package converter

import (
	"fmt"
	"io"

	"github.com/nconklindev/rowify/internal/types"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet name of a fresh excelize workbook.
const DefaultSheet = "Sheet1"

// Serializer turns a table into a workbook payload.
type Serializer interface {
	Serialize(table types.OutputTable, sheet string) ([]byte, error)
}

// XLSXSerializer writes a single-sheet .xlsx workbook.
type XLSXSerializer struct{}

// Serialize writes table into sheet starting at A1. Every cell is stored as
// a string, numbers included.
func (XLSXSerializer) Serialize(table types.OutputTable, sheet string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = DefaultSheet
	}
	if sheet != DefaultSheet {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
		}
		f.SetActiveSheet(idx)
		if err := f.DeleteSheet(DefaultSheet); err != nil {
			return nil, fmt.Errorf("delete default sheet: %w", err)
		}
	}

	for rowIdx, row := range table {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("write %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// ReadTable reads the first sheet of a workbook back into a table.
func ReadTable(r io.Reader) (string, types.OutputTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", nil, err
	}

	if len(rows) == 0 {
		return sheetName, nil, fmt.Errorf("empty sheet %q", sheetName)
	}

	return sheetName, types.OutputTable(rows), nil
}
