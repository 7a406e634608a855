package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	store "github.com/okian/pulse/internal/adapters/store"
	app "github.com/okian/pulse/internal/app"
	model "github.com/okian/pulse/internal/domain/model"
	validate "github.com/okian/pulse/internal/domain/validate"
	"github.com/okian/pulse/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

// failingStore rejects every write, simulating a broken document base.
type failingStore struct{}

func (failingStore) FetchAll(context.Context) ([]model.Reading, error) {
	return nil, store.ErrStoreUnavailable
}

func (failingStore) Insert(context.Context, model.Reading) (string, error) {
	return "", store.ErrStoreWrite
}

func startedService(t *testing.T, opts ...app.Option) *app.Service {
	t.Helper()
	svc := app.New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func TestServiceRoundTrip(t *testing.T) {
	Convey("Given a started service over the in-memory store", t, func() {
		svc := startedService(t,
			app.WithKnownNames([]string{"alice", "bob"}),
			app.WithAdmin("boss"),
		)
		ctx := context.Background()

		Convey("When submitting a valid reading and fetching the series", func() {
			saved, err := svc.SubmitReading(ctx, validate.Submission{
				Date: "2023-05-01", Time: "08:30:00", Systolic: 135, Diastolic: 85, Name: "alice",
			})
			So(err, ShouldBeNil)

			s, err := svc.GetSeries(ctx, "alice")

			Convey("Then the series contains exactly the classified new entry", func() {
				So(err, ShouldBeNil)
				So(len(s.Readings), ShouldEqual, 1)
				So(s.Readings[0].Key, ShouldEqual, saved.Key)
				So(s.Readings[0].Timestamp, ShouldEqual, "2023-05-01 08:30:00")
				So(s.Readings[0].Category, ShouldEqual, model.CategoryHBPS1)
			})

			Convey("And a second insert is visible immediately despite the cache", func() {
				_, err := svc.SubmitReading(ctx, validate.Submission{
					Date: "2023-05-02", Time: "09:00:00", Systolic: 118, Diastolic: 76, Name: "alice",
				})
				So(err, ShouldBeNil)

				s, err := svc.GetSeries(ctx, "alice")
				So(err, ShouldBeNil)
				So(len(s.Readings), ShouldEqual, 2)
				So(s.Readings[1].Category, ShouldEqual, model.CategoryNormal)
			})
		})

		Convey("When fetching a series for a subject with no readings", func() {
			s, err := svc.GetSeries(ctx, "bob")

			Convey("Then the empty sentinel is returned", func() {
				So(err, ShouldBeNil)
				So(s.Empty(), ShouldBeTrue)
			})
		})

		Convey("When fetching a series for an unknown subject", func() {
			_, err := svc.GetSeries(ctx, "mallory")

			Convey("Then ErrUnknownName is returned", func() {
				So(errors.Is(err, app.ErrUnknownName), ShouldBeTrue)
			})
		})

		Convey("When submitting an invalid reading", func() {
			_, err := svc.SubmitReading(ctx, validate.Submission{
				Date: "2023-05-01", Time: "08:30:00", Systolic: 250, Diastolic: 85, Name: "alice",
			})

			Convey("Then a field error surfaces and nothing is stored", func() {
				var fieldErr *validate.FieldError
				So(errors.As(err, &fieldErr), ShouldBeTrue)
				So(fieldErr.Field, ShouldEqual, "systolic")

				s, serr := svc.GetSeries(ctx, "alice")
				So(serr, ShouldBeNil)
				So(s.Empty(), ShouldBeTrue)
			})
		})
	})

	Convey("Given a service over a failing store", t, func() {
		svc := startedService(t, app.WithStore(failingStore{}))
		ctx := context.Background()

		Convey("When submitting a valid reading", func() {
			_, err := svc.SubmitReading(ctx, validate.Submission{
				Date: "2023-05-01", Time: "08:30:00", Systolic: 120, Diastolic: 80, Name: "alice",
			})

			Convey("Then the write error surfaces unwrapped-able", func() {
				So(errors.Is(err, store.ErrStoreWrite), ShouldBeTrue)
			})
		})

		Convey("When fetching a series", func() {
			_, err := svc.GetSeries(ctx, "alice")

			Convey("Then the fetch error surfaces", func() {
				So(errors.Is(err, store.ErrStoreUnavailable), ShouldBeTrue)
			})
		})
	})
}

func TestServiceIdentity(t *testing.T) {
	Convey("Given a service with a configured admin", t, func() {
		svc := startedService(t,
			app.WithAdmin("Boss"),
			app.WithKnownNames([]string{"alice", "bob"}),
			app.WithDashboardNames([]string{"bob", "alice"}),
		)

		Convey("Then admin checks are case-insensitive", func() {
			So(svc.IsAdmin("boss"), ShouldBeTrue)
			So(svc.IsAdmin("BOSS"), ShouldBeTrue)
			So(svc.IsAdmin("intern"), ShouldBeFalse)
			So(svc.IsAdmin(""), ShouldBeFalse)
		})

		Convey("Then configured name sets are exposed as copies", func() {
			names := svc.KnownNames()
			names[0] = "tampered"
			So(svc.KnownNames()[0], ShouldEqual, "alice")
			So(svc.DashboardNames(), ShouldResemble, []string{"bob", "alice"})
		})
	})
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := app.New(app.WithSeriesTTL(5 * time.Second))

		Convey("When started twice", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			So(svc.Start(context.Background()), ShouldBeNil)

			Convey("Then stats report a started service", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["seriesTTLSec"], ShouldEqual, 5)
				svc.Stop()
			})
		})

		Convey("When stopped without starting", func() {
			Convey("Then Stop is a no-op", func() {
				So(svc.Stop, ShouldNotPanic)
			})
		})
	})
}

func TestServiceLegend(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService(t)

		Convey("When fetching the legend twice", func() {
			first := svc.GetLegend()
			second := svc.GetLegend()

			Convey("Then the static five-row table is served consistently", func() {
				So(len(first), ShouldEqual, 5)
				So(second, ShouldResemble, first)
			})
		})
	})
}
