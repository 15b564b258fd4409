package simfiles_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/bacrama/internal/adapters/simfiles"
	. "github.com/smartystreets/goconvey/convey"
)

func intp(v int) *int { return &v }

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("Equal,Opposite,EqualPoints,OppositePoints\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

func TestPattern(t *testing.T) {
	Convey("Given file name patterns", t, func() {
		Convey("When the pattern has one placeholder", func() {
			re, err := simfiles.Pattern("day.%d.csv")

			Convey("Then it matches numbered names literally", func() {
				So(err, ShouldBeNil)
				So(re.FindStringSubmatch("day.12.csv"), ShouldResemble, []string{"day.12.csv", "12"})
				So(re.MatchString("dayX12.csv"), ShouldBeFalse)
				So(re.MatchString("day.12.csv.bak"), ShouldBeFalse)
				So(re.MatchString("day..csv"), ShouldBeFalse)
			})
		})

		Convey("When the pattern has no placeholder", func() {
			_, err := simfiles.Pattern("day.csv")
			So(errors.Is(err, simfiles.ErrPatternMissingPlaceholder), ShouldBeTrue)
		})

		Convey("When the pattern has two placeholders", func() {
			_, err := simfiles.Pattern("%d-%d.csv")
			So(errors.Is(err, simfiles.ErrPatternMultiplePlaceholders), ShouldBeTrue)
		})
	})
}

func TestDiscover(t *testing.T) {
	ctx := context.Background()

	Convey("Given a directory with numbered simulation files", t, func() {
		dir := t.TempDir()
		writeFiles(t, dir, "1.csv", "2.csv", "3.csv", "10.csv", "notes.txt")
		So(os.Mkdir(filepath.Join(dir, "4.csv"), 0o700), ShouldBeNil)

		Convey("When discovering without bounds", func() {
			_, err := simfiles.Discover(ctx, dir, "%d.csv", nil, nil)

			Convey("Then the gap between 3 and 10 is reported", func() {
				So(errors.Is(err, simfiles.ErrMissingFile), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "4")
			})
		})

		Convey("When discovering up to 3", func() {
			set, err := simfiles.Discover(ctx, dir, "%d.csv", nil, intp(3))

			Convey("Then files 1..3 are returned in order", func() {
				So(err, ShouldBeNil)
				So(set.Min, ShouldEqual, 1)
				So(set.Max, ShouldEqual, 3)
				So(set.Len(), ShouldEqual, 3)
				files := set.Paths()
				So(files[0].Name, ShouldEqual, "1.csv")
				So(files[2].Number, ShouldEqual, 3)
				So(files[2].Path, ShouldEqual, filepath.Join(dir, "3.csv"))
			})
		})

		Convey("When discovering a single file", func() {
			set, err := simfiles.Discover(ctx, dir, "%d.csv", intp(10), intp(10))

			So(err, ShouldBeNil)
			So(set.Paths(), ShouldHaveLength, 1)
		})

		Convey("When the minimum is below the files found", func() {
			_, err := simfiles.Discover(ctx, dir, "%d.csv", intp(0), intp(3))
			So(errors.Is(err, simfiles.ErrOutOfRange), ShouldBeTrue)
		})

		Convey("When the maximum is above the files found", func() {
			_, err := simfiles.Discover(ctx, dir, "%d.csv", nil, intp(11))
			So(errors.Is(err, simfiles.ErrOutOfRange), ShouldBeTrue)
		})

		Convey("When only a minimum beyond the found maximum is given", func() {
			_, err := simfiles.Discover(ctx, dir, "%d.csv", intp(20), nil)
			So(err, ShouldNotBeNil)
		})

		Convey("When the minimum exceeds the maximum", func() {
			_, err := simfiles.Discover(ctx, dir, "%d.csv", intp(3), intp(1))
			So(errors.Is(err, simfiles.ErrRangeInvalid), ShouldBeTrue)
		})

		Convey("When no file matches the pattern", func() {
			_, err := simfiles.Discover(ctx, dir, "day-%d.csv", nil, nil)
			So(errors.Is(err, simfiles.ErrNoFiles), ShouldBeTrue)
		})
	})

	Convey("Given two files sharing a number", t, func() {
		dir := t.TempDir()
		writeFiles(t, dir, "01.csv", "1.csv", "2.csv", "7.csv", "07.csv")

		Convey("When the shared number is in range", func() {
			_, err := simfiles.Discover(ctx, dir, "%d.csv", nil, intp(2))

			Convey("Then discovery fails naming both files", func() {
				So(errors.Is(err, simfiles.ErrDuplicateNumber), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "01.csv")
				So(err.Error(), ShouldContainSubstring, "1.csv")
			})
		})

		Convey("When only an unshared number is selected", func() {
			set, err := simfiles.Discover(ctx, dir, "%d.csv", intp(2), intp(2))

			So(err, ShouldBeNil)
			So(set.Paths()[0].Name, ShouldEqual, "2.csv")
		})
	})

	Convey("Given a path that is not a directory", t, func() {
		dir := t.TempDir()
		writeFiles(t, dir, "1.csv")

		_, err := simfiles.Discover(ctx, filepath.Join(dir, "1.csv"), "%d.csv", nil, nil)
		So(errors.Is(err, simfiles.ErrNotDirectory), ShouldBeTrue)
	})

	Convey("Given a cancelled context", t, func() {
		dir := t.TempDir()
		writeFiles(t, dir, "1.csv")
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := simfiles.Discover(cctx, dir, "%d.csv", nil, nil)
		So(errors.Is(err, context.Canceled), ShouldBeTrue)
	})
}
