package config_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/okian/bacrama/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.FileNames, convey.ShouldEqual, "%d.csv")
			convey.So(cfg.MinFile, convey.ShouldEqual, config.Unset)
			convey.So(cfg.MaxFile, convey.ShouldEqual, config.Unset)
			convey.So(cfg.LoadWorkers, convey.ShouldEqual, runtime.NumCPU())
			convey.So(cfg.ShowPlacing, convey.ShouldBeTrue)
			convey.So(cfg.Output, convey.ShouldEqual, config.OutputTable)
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.MaxLeaderboardLimit, convey.ShouldEqual, 100)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then unset bounds are nil", func() {
			convey.So(cfg.MinBound(), convey.ShouldBeNil)
			convey.So(cfg.MaxBound(), convey.ShouldBeNil)
		})

		convey.Convey("When bounds are set", func() {
			cfg.MinFile, cfg.MaxFile = 0, 7

			convey.Convey("Then they are returned as pointers", func() {
				convey.So(*cfg.MinBound(), convey.ShouldEqual, 0)
				convey.So(*cfg.MaxBound(), convey.ShouldEqual, 7)
			})
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given invalid configurations", t, func() {
		cases := []struct {
			name   string
			mutate func(*config.Config)
		}{
			{"pattern without placeholder", func(c *config.Config) { c.FileNames = "day.csv" }},
			{"pattern with two placeholders", func(c *config.Config) { c.FileNames = "%d-%d.csv" }},
			{"inverted range", func(c *config.Config) { c.MinFile, c.MaxFile = 5, 2 }},
			{"negative bound", func(c *config.Config) { c.MinFile = -3 }},
			{"no workers", func(c *config.Config) { c.LoadWorkers = 0 }},
			{"negative limit", func(c *config.Config) { c.LeaderboardLimit = -1 }},
			{"unknown output", func(c *config.Config) { c.Output = "xml" }},
			{"empty addr", func(c *config.Config) { c.Addr = " " }},
			{"zero max limit", func(c *config.Config) { c.MaxLeaderboardLimit = 0 }},
		}

		for _, tc := range cases {
			convey.Convey("When the config has "+tc.name, func() {
				cfg := config.New()
				tc.mutate(cfg)

				convey.Convey("Then validation fails with ErrInvalidConfig", func() {
					err := cfg.Validate()
					convey.So(err, convey.ShouldNotBeNil)
					convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				})
			})
		}

		convey.Convey("When only a maximum is set", func() {
			cfg := config.New()
			cfg.MaxFile = 3

			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
