package simfiles

import "errors"

// Sentinel kinds for simulation file discovery.
var (
	ErrPatternMissingPlaceholder   = errors.New("file name pattern does not contain %d")
	ErrPatternMultiplePlaceholders = errors.New("file name pattern contains more than one %d")
	ErrNotDirectory                = errors.New("not a directory")
	ErrNoFiles                     = errors.New("no simulation files found")
	ErrRangeInvalid                = errors.New("minimum file number is greater than maximum")
	ErrOutOfRange                  = errors.New("file number outside the files found")
	ErrMissingFile                 = errors.New("missing file number")
	ErrDuplicateNumber             = errors.New("several files share a file number")
)
