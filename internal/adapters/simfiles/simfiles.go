// Package simfiles discovers the numbered simulation files of a directory.
//
// A pattern such as "%d.csv" or "day-%d.csv" selects the files; the number
// captured by %d orders them. A simulation covers a contiguous range of
// numbers and fails if any file of the range is missing.
package simfiles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const placeholder = "%d"

// File is one numbered simulation file.
type File struct {
	Number int
	Name   string
	Path   string
}

// Set is the contiguous range of files selected for a simulation.
type Set struct {
	Min   int
	Max   int
	files map[int]File
}

// Paths returns the selected files in numeric order.
func (s Set) Paths() []File {
	out := make([]File, 0, s.Max-s.Min+1)
	for i := s.Min; i <= s.Max; i++ {
		out = append(out, s.files[i])
	}
	return out
}

// Len returns the number of selected files.
func (s Set) Len() int { return s.Max - s.Min + 1 }

// Pattern compiles fileNames into an anchored regular expression whose only
// group captures the file number. Everything outside %d matches literally.
func Pattern(fileNames string) (*regexp.Regexp, error) {
	parts := strings.Split(fileNames, placeholder)
	switch {
	case len(parts) < 2:
		return nil, fmt.Errorf("%w: %q", ErrPatternMissingPlaceholder, fileNames)
	case len(parts) > 2:
		return nil, fmt.Errorf("%w: %q", ErrPatternMultiplePlaceholders, fileNames)
	}
	expr := "^" + regexp.QuoteMeta(parts[0]) + "([0-9]+)" + regexp.QuoteMeta(parts[1]) + "$"
	return regexp.Compile(expr)
}

// Discover lists the regular files of dir matching fileNames and selects the
// range [min, max]. A nil bound defaults to the lowest or highest number found.
func Discover(ctx context.Context, dir, fileNames string, min, max *int) (Set, error) {
	if min != nil && max != nil && *min > *max {
		return Set{}, fmt.Errorf("%w: %d > %d", ErrRangeInvalid, *min, *max)
	}

	re, err := Pattern(fileNames)
	if err != nil {
		return Set{}, err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return Set{}, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return Set{}, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Set{}, fmt.Errorf("read %s: %w", dir, err)
	}

	set := Set{files: make(map[int]File, len(entries))}
	// Padded numbers such as 01 and 1 collide; only collisions inside the
	// selected range are an error.
	dups := make(map[int]string)
	found := false
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return Set{}, err
		}
		if !e.Type().IsRegular() {
			continue
		}
		m := re.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// Numbers too large for int cannot be part of a range.
			continue
		}
		if prev, ok := set.files[n]; ok {
			dups[n] = prev.Name + ", " + e.Name()
		}
		set.files[n] = File{Number: n, Name: e.Name(), Path: filepath.Join(dir, e.Name())}
		if !found || n < set.Min {
			set.Min = n
		}
		if !found || n > set.Max {
			set.Max = n
		}
		found = true
	}
	if !found {
		return Set{}, fmt.Errorf("%s: %w", dir, ErrNoFiles)
	}

	if min != nil {
		if *min < set.Min {
			return Set{}, fmt.Errorf("%w: %d (minimum file number found was %d)", ErrOutOfRange, *min, set.Min)
		}
		set.Min = *min
	}
	if max != nil {
		if *max > set.Max {
			return Set{}, fmt.Errorf("%w: %d (maximum file number found was %d)", ErrOutOfRange, *max, set.Max)
		}
		set.Max = *max
	}
	if set.Min > set.Max {
		return Set{}, fmt.Errorf("%w: range %d..%d is empty", ErrOutOfRange, set.Min, set.Max)
	}

	for i := set.Min; i <= set.Max; i++ {
		if _, ok := set.files[i]; !ok {
			return Set{}, fmt.Errorf("%w: %d", ErrMissingFile, i)
		}
		if names, ok := dups[i]; ok {
			return Set{}, fmt.Errorf("%w: %d (%s)", ErrDuplicateNumber, i, names)
		}
	}
	return set, nil
}
