package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// dataBounds is the bounding box of non-empty cells (0-based, inclusive).
type dataBounds struct {
	minRow, maxRow, minCol, maxCol int
}

func (b dataBounds) empty() bool {
	return b.minRow < 0
}

// rangeRef converts the bounds to Excel range notation (e.g. "A1:D10").
func (b dataBounds) rangeRef() string {
	if b.empty() {
		return ""
	}
	startCell, _ := excelize.CoordinatesToCellName(b.minCol+1, b.minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(b.maxCol+1, b.maxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) dataBounds {
	b := dataBounds{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if b.minRow < 0 || rowIdx < b.minRow {
					b.minRow = rowIdx
				}
				if b.maxRow < 0 || rowIdx > b.maxRow {
					b.maxRow = rowIdx
				}
				if b.minCol < 0 || colIdx < b.minCol {
					b.minCol = colIdx
				}
				if b.maxCol < 0 || colIdx > b.maxCol {
					b.maxCol = colIdx
				}
			}
		}
	}

	return b
}

// cellAt returns the cell at colIdx, or "" past the end of a ragged row.
func cellAt(row []string, colIdx int) string {
	if colIdx < len(row) {
		return row[colIdx]
	}
	return ""
}

// rowIsEmpty reports whether row has no data within [minCol, maxCol].
func rowIsEmpty(row []string, minCol, maxCol int) bool {
	for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
		if row[colIdx] != "" {
			return false
		}
	}
	return true
}
