package importer

import "errors"

var (
	ErrImportFileName = errors.New("the name of the imported file must not be empty")
	ErrCSVHeader      = errors.New("the CSV file has no header row with known columns")
	ErrRowInvalid     = errors.New("the row is not valid")
)
