package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
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
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the package-level recorders", t, func() {
		Convey("When recording match metrics", func() {
			Convey("Then recording should not panic", func() {
				So(func() {
					RecordMatchRequest()
					RecordProductScored()
					RecordFloorDiscard()
					RecordRankLatency(12.5)
					RecordComposeLatency(0.4)
					RecordTotalScore(87)
					RecordSubScore("goal_fit", 100)
					RecordSubScore("safety_profile", 60)
				}, ShouldNotPanic)
			})
		})

		Convey("When updating gauges", func() {
			Convey("Then updates should not panic", func() {
				So(func() {
					UpdateCatalogSize(42)
					UpdateWorkerCount(8)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP and error metrics", func() {
			Convey("Then recording should not panic", func() {
				So(func() {
					RecordHTTPRequest("match", "POST", "200")
					RecordHTTPRequestDuration("match", "POST", "200", 3.5)
					RecordScoringError()
					RecordErrorByComponent("match", "client_error")
				}, ShouldNotPanic)
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the package registry", t, func() {
		Convey("When gathering", func() {
			registry := GetRegistry()
			So(registry, ShouldNotBeNil)

			RecordMatchRequest()
			families, err := registry.Gather()

			Convey("Then registered metrics are exposed", func() {
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}
