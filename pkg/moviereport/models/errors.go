package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates the requested sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptyDataset indicates statistics were requested over zero rows.
var ErrEmptyDataset = errors.New("empty dataset")

// IOError represents a failure to open, read or write a workbook or image.
type IOError struct {
	Op   string // "open", "read", "save", "mkdir", "render", "embed"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(op, path string, err error) *IOError {
	return &IOError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// DataShapeError reports a sheet that is absent or lacks required columns.
type DataShapeError struct {
	SheetName string
	Missing   []string
}

func (e *DataShapeError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("sheet %q: %v", e.SheetName, ErrSheetNotFound)
	}
	return fmt.Sprintf("sheet %q: missing columns %s", e.SheetName, strings.Join(e.Missing, ", "))
}

// Unwrap returns ErrSheetNotFound when the sheet itself was absent.
func (e *DataShapeError) Unwrap() error {
	if len(e.Missing) == 0 {
		return ErrSheetNotFound
	}
	return nil
}

// NewDataShapeError creates a new DataShapeError.
func NewDataShapeError(sheetName string, missing ...string) *DataShapeError {
	return &DataShapeError{
		SheetName: sheetName,
		Missing:   missing,
	}
}
