package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording business metrics", func() {
			Convey("Then recording should not panic", func() {
				So(func() { RecordReadingInserted() }, ShouldNotPanic)
				So(func() { RecordReadingRejected("systolic") }, ShouldNotPanic)
				So(func() { RecordSeriesBuildLatency(12.5) }, ShouldNotPanic)
			})
		})

		Convey("When recording store metrics", func() {
			Convey("Then recording should not panic", func() {
				So(func() { RecordStoreFetch() }, ShouldNotPanic)
				So(func() { RecordStoreError("fetch") }, ShouldNotPanic)
				So(func() { RecordStoreError("insert") }, ShouldNotPanic)
			})
		})

		Convey("When recording cache metrics", func() {
			Convey("Then recording should not panic", func() {
				So(func() { RecordCacheHit("series") }, ShouldNotPanic)
				So(func() { RecordCacheMiss("legend") }, ShouldNotPanic)
				So(func() { UpdateCacheEntries(2) }, ShouldNotPanic)
				So(func() { UpdateStoredReadings(5) }, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then recording should not panic", func() {
				So(func() { RecordHTTPRequest("series", "GET", "200") }, ShouldNotPanic)
				So(func() { RecordHTTPRequestDuration("series", "GET", "200", 3.5) }, ShouldNotPanic)
				So(func() { RecordErrorByEndpoint("readings", "POST", "client_error") }, ShouldNotPanic)
				So(func() { RecordErrorByType("client_error", "medium") }, ShouldNotPanic)
				So(func() { RecordErrorLatency("http", "client_error", 1.0) }, ShouldNotPanic)
			})
		})

		Convey("When updating system metrics", func() {
			Convey("Then updating should not panic", func() {
				So(func() { UpdateSystemMemoryUsage(1024) }, ShouldNotPanic)
				So(func() { UpdateSystemGoroutineCount(8) }, ShouldNotPanic)
				So(func() { RecordSystemGCPauseTime(0.2) }, ShouldNotPanic)
			})
		})

		Convey("When fetching the registry", func() {
			Convey("Then the custom registry should be returned", func() {
				So(GetRegistry(), ShouldNotBeNil)
			})
		})

		Convey("When inspecting error sentinels", func() {
			Convey("Then ErrObserveFailed should be defined", func() {
				So(ErrObserveFailed, ShouldNotBeNil)
				So(ErrObserveFailed.Error(), ShouldEqual, "metrics observe failed")
			})
		})
	})
}
