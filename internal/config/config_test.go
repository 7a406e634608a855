package config_test

import (
	"testing"

	"github.com/okian/pulse/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.DetaProjectKey, convey.ShouldEqual, "")
			convey.So(cfg.DetaBaseName, convey.ShouldEqual, "health")
			convey.So(cfg.Names, convey.ShouldResemble, []string{"alice", "bob"})
			convey.So(cfg.Admin, convey.ShouldEqual, "admin")
			convey.So(cfg.DashboardNames, convey.ShouldResemble, []string{"alice", "bob"})
			convey.So(cfg.SeriesTTLSeconds, convey.ShouldEqual, 60)
			convey.So(cfg.LegendTTLSeconds, convey.ShouldEqual, 600)
			convey.So(cfg.StoreTimeoutSeconds, convey.ShouldEqual, 10)
		})
	})
}
