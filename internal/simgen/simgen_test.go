package simgen_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/bacrama/internal/adapters/ingest"
	"github.com/okian/bacrama/internal/adapters/simfiles"
	"github.com/okian/bacrama/internal/simgen"
	"github.com/okian/bacrama/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.InitWithWriter(io.Discard); err != nil {
		panic(err)
	}
}

func smallConfig(dir string) simgen.Config {
	cfg := simgen.DefaultConfig()
	cfg.OutDir = dir
	cfg.Days = 3
	cfg.Players = 8
	cfg.DuelsPerDay = 12
	cfg.Seed = 99
	return cfg
}

func TestGenerator(t *testing.T) {
	Convey("Given two generators with the same seed", t, func() {
		cfg := smallConfig("unused")
		a := simgen.NewGenerator(cfg).Days()
		b := simgen.NewGenerator(cfg).Days()

		Convey("Then they draw identical seasons", func() {
			So(a, ShouldResemble, b)
		})

		Convey("Then every duel is between two players and has a winner", func() {
			So(a, ShouldHaveLength, 3)
			for _, day := range a {
				So(day.Duels, ShouldHaveLength, 12)
				for _, d := range day.Duels {
					So(d.Equal, ShouldNotEqual, d.Opposite)
					So(d.EqualPoints+d.OppositePoints, ShouldBeGreaterThan, 0)
					So(d.EqualPoints == cfg.Touches || d.OppositePoints == cfg.Touches, ShouldBeTrue)
				}
			}
		})
	})

	Convey("Given a generator", t, func() {
		players := simgen.NewGenerator(smallConfig("unused")).Players()

		Convey("Then players are listed strongest first", func() {
			So(players, ShouldHaveLength, 8)
			for i := 1; i < len(players); i++ {
				So(players[i-1].Strength, ShouldBeGreaterThanOrEqualTo, players[i].Strength)
			}
		})
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	Convey("Given an output directory", t, func() {
		dir := filepath.Join(t.TempDir(), "season")
		cfg := smallConfig(dir)

		stats, err := simgen.Run(ctx, cfg)

		Convey("Then one readable file per day is written", func() {
			So(err, ShouldBeNil)
			So(stats.Files, ShouldEqual, 3)
			So(stats.Duels, ShouldEqual, 36)

			set, err := simfiles.Discover(ctx, dir, cfg.FileNames, nil, nil)
			So(err, ShouldBeNil)
			So(set.Min, ShouldEqual, 1)
			So(set.Max, ShouldEqual, 3)

			batch, err := ingest.LoadFile(ctx, filepath.Join(dir, "2.csv"))
			So(err, ShouldBeNil)
			So(batch.Duels, ShouldHaveLength, 12)
		})
	})

	Convey("Given invalid configurations", t, func() {
		cfg := smallConfig(t.TempDir())

		Convey("When there is a single player", func() {
			cfg.Players = 1
			_, err := simgen.Run(ctx, cfg)
			So(errors.Is(err, simgen.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("When the pattern has no placeholder", func() {
			cfg.FileNames = "day.csv"
			_, err := simgen.Run(ctx, cfg)
			So(errors.Is(err, simgen.ErrInvalidConfig), ShouldBeTrue)
			So(errors.Is(err, simfiles.ErrPatternMissingPlaceholder), ShouldBeTrue)
		})
	})

	Convey("Given an output path that is a file", t, func() {
		path := filepath.Join(t.TempDir(), "taken")
		So(os.WriteFile(path, nil, 0o600), ShouldBeNil)

		_, err := simgen.Run(ctx, smallConfig(path))
		So(err, ShouldNotBeNil)
	})
}
