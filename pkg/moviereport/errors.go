package moviereport

import (
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
)

// ErrFileNotFound indicates the input or report workbook does not exist.
var ErrFileNotFound = models.ErrFileNotFound

// ErrSheetNotFound indicates the movie sheet is absent from the workbook.
var ErrSheetNotFound = models.ErrSheetNotFound

// ErrEmptyDataset indicates the loaded dataset has no rows.
var ErrEmptyDataset = models.ErrEmptyDataset

// IOError represents a workbook or image that could not be read or written.
type IOError = models.IOError

// DataShapeError represents a sheet that is absent or lacks required columns.
type DataShapeError = models.DataShapeError
