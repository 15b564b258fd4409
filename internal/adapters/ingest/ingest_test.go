package ingest_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/bacrama/internal/adapters/ingest"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	Convey("Given a well formed simulation file", t, func() {
		data := "Bacchiatori,Equal,Opposite,EqualPoints,OppositePoints\n" +
			",anna,bruno,3,1\n" +
			",carla, anna ,2,2\n" +
			",bruno,carla,0,5\n"

		batch, err := ingest.Load(ctx, "1.csv", strings.NewReader(data))

		Convey("Then every duel is parsed in file order", func() {
			So(err, ShouldBeNil)
			So(batch.Source, ShouldEqual, "1.csv")
			So(batch.Duels, ShouldHaveLength, 3)
			So(batch.Duels[0].Equal, ShouldEqual, "anna")
			So(batch.Duels[0].EqualPoints, ShouldEqual, 3)
			So(batch.Duels[1].Opposite, ShouldEqual, "anna")
			So(batch.Duels[2].OppositePoints, ShouldEqual, 5)
			So(batch.Duels[2].Evaluated(), ShouldBeFalse)
		})

		Convey("Then competitors are listed once in first-seen order", func() {
			So(batch.Bacchiatori, ShouldResemble, []string{"anna", "bruno", "carla"})
		})
	})

	Convey("Given columns in a different order without Bacchiatori", t, func() {
		data := "OppositePoints,EqualPoints,Opposite,Equal\n4,1,bruno,anna\n"

		batch, err := ingest.Load(ctx, "2.csv", strings.NewReader(data))

		So(err, ShouldBeNil)
		So(batch.Duels[0].Equal, ShouldEqual, "anna")
		So(batch.Duels[0].EqualPoints, ShouldEqual, 1)
		So(batch.Duels[0].OppositePoints, ShouldEqual, 4)
	})

	Convey("Given a header only file", t, func() {
		batch, err := ingest.Load(ctx, "3.csv", strings.NewReader("Equal,Opposite,EqualPoints,OppositePoints\n"))

		So(err, ShouldBeNil)
		So(batch.Duels, ShouldBeEmpty)
		So(batch.Bacchiatori, ShouldBeEmpty)
	})

	Convey("Given malformed input", t, func() {
		cases := []struct {
			name string
			data string
			want error
		}{
			{"an empty file", "", ingest.ErrMissingColumn},
			{"a missing points column", "Equal,Opposite,EqualPoints\nanna,bruno,1\n", ingest.ErrMissingColumn},
			{"non numeric points", "Equal,Opposite,EqualPoints,OppositePoints\nanna,bruno,x,1\n", ingest.ErrMalformedRow},
			{"a short row", "Equal,Opposite,EqualPoints,OppositePoints\nanna,bruno,1\n", ingest.ErrMalformedRow},
			{"an empty name", "Equal,Opposite,EqualPoints,OppositePoints\n,bruno,1,2\n", ingest.ErrEmptyName},
			{"a repeated column", "Equal,Equal,Opposite,EqualPoints,OppositePoints\nanna,carla,bruno,1,2\n", ingest.ErrMalformedRow},
		}

		for _, tc := range cases {
			Convey("When the file has "+tc.name, func() {
				_, err := ingest.Load(ctx, "bad.csv", strings.NewReader(tc.data))

				Convey("Then the matching error is returned", func() {
					So(errors.Is(err, tc.want), ShouldBeTrue)
					So(err.Error(), ShouldContainSubstring, "bad.csv")
				})
			})
		}

		Convey("When the bad row is not the first", func() {
			data := "Equal,Opposite,EqualPoints,OppositePoints\nanna,bruno,1,2\nanna,carla,1,z\n"
			_, err := ingest.Load(ctx, "bad.csv", strings.NewReader(data))

			Convey("Then the error names its line", func() {
				So(err.Error(), ShouldContainSubstring, "line 3")
			})
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a simulation file on disk", t, func() {
		path := filepath.Join(t.TempDir(), "1.csv")
		So(os.WriteFile(path, []byte("Equal,Opposite,EqualPoints,OppositePoints\nanna,bruno,1,0\n"), 0o600), ShouldBeNil)

		batch, err := ingest.LoadFile(context.Background(), path)

		So(err, ShouldBeNil)
		So(batch.Source, ShouldEqual, path)
		So(batch.Duels, ShouldHaveLength, 1)
	})

	Convey("Given a missing file", t, func() {
		_, err := ingest.LoadFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))

		So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)
	})
}
