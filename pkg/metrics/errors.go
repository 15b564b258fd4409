package metrics

import "errors"

// ErrExportFailed is returned when the textfile export cannot be written.
var ErrExportFailed = errors.New("metrics textfile export failed")
