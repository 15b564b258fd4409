package types_test

import (
	"testing"

	"github.com/okian/bacrama/internal/domain/model"
	"github.com/okian/bacrama/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewEntry(t *testing.T) {
	Convey("Given an established bacchiatore record", t, func() {
		b := &model.Bacchiatore{Name: "tito", Elo: 1333, Duels: 14, Days: 3, Victories: 8}

		Convey("When it is snapshotted into an entry", func() {
			entry := types.NewEntry(2, b)

			Convey("Then the entry copies the record", func() {
				So(entry, ShouldResemble, types.Entry{
					Rank: 2, Name: "tito", Elo: 1333, Duels: 14, Days: 3, Victories: 8, Placing: false,
				})
			})

			Convey("And later record changes do not leak into it", func() {
				b.Elo = 900
				So(entry.Elo, ShouldEqual, 1333)
			})
		})
	})

	Convey("Given a placing bacchiatore record", t, func() {
		entry := types.NewEntry(1, model.NewBacchiatore("nuovo"))

		Convey("Then the entry is marked placing", func() {
			So(entry.Placing, ShouldBeTrue)
		})
	})
}
