package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"

	"github.com/josaa-tools/seatcast/internal/adapters/http/api"
	"github.com/josaa-tools/seatcast/internal/adapters/http/site"
	"github.com/josaa-tools/seatcast/internal/adapters/http/swagger"
	app "github.com/josaa-tools/seatcast/internal/app"
	"github.com/josaa-tools/seatcast/internal/config"
	"github.com/josaa-tools/seatcast/pkg/metrics"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("SEATCAST_ADDR", ":8080")
			_ = os.Setenv("SEATCAST_DATA_PATH", "/tmp/cutoffs.csv")
			_ = os.Setenv("SEATCAST_WINDOW_SPAN", "300")
			defer func() {
				_ = os.Unsetenv("SEATCAST_ADDR")
				_ = os.Unsetenv("SEATCAST_DATA_PATH")
				_ = os.Unsetenv("SEATCAST_WINDOW_SPAN")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DataPath, convey.ShouldEqual, "/tmp/cutoffs.csv")
				convey.So(cfg.WindowSpan, convey.ShouldEqual, 300)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithDataPath("/tmp/cutoffs.csv"),
					app.WithWindowSpan(500),
					app.WithTierCaps(5, 10, 10),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc, svc)
				convey.So(server, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				registry := prometheus.NewRegistry()
				manager := metrics.NewManager(metrics.WithPrometheusRegistry(registry))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given main application integration", t, func() {
		convey.Convey("When testing full application setup", func() {
			_ = os.Setenv("SEATCAST_ADDR", ":8080")
			defer func() { _ = os.Unsetenv("SEATCAST_ADDR") }()

			convey.Convey("Then all components should work together", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)

				// Create service (without starting to avoid needing a dataset)
				svc := app.New(
					app.WithDataPath(cfg.DataPath),
					app.WithWindowSpan(float64(cfg.WindowSpan)),
					app.WithTierCaps(cfg.NearOpeningCap, cfg.InWindowCap, cfg.NearClosingCap),
				)
				convey.So(svc, convey.ShouldNotBeNil)

				server := api.NewServer(svc, svc)
				convey.So(server, convey.ShouldNotBeNil)

				r := chi.NewRouter()
				convey.So(r, convey.ShouldNotBeNil)

				swagger.Register(ctx, r)
				server.Register(ctx, r)
				site.Register(ctx, r)

				svc.Stop()
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When testing invalid configuration", func() {
			_ = os.Setenv("SEATCAST_ADDR", "")
			defer func() { _ = os.Unsetenv("SEATCAST_ADDR") }()

			convey.Convey("Then configuration loading should fail", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When testing service creation with invalid options", func() {
			convey.Convey("Then service should handle invalid options gracefully", func() {
				svc := app.New(
					app.WithDataPath(""),
					app.WithWindowSpan(-1),
					app.WithTierCaps(0, 0, 0),
				)
				convey.So(svc, convey.ShouldNotBeNil)

				stats := svc.GetStats()
				convey.So(stats, convey.ShouldNotBeNil)
				convey.So(stats["started"], convey.ShouldBeFalse)
			})
		})
	})
}
