package dataset

import "fmt"

// DataLoadError reports a dataset file that is missing, unreadable, or not
// parseable as delimited text. It aborts the run; there is no partial mode.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// MissingColumnError reports an expected column absent from the CSV header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("dataset is missing required column %q", e.Column)
}
