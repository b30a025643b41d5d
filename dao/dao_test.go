package dao

import (
	"testing"

	"github.com/companieshouse/wallet-payments.web.ch.gov.uk/config"
	"go.mongodb.org/mongo-driver/mongo"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitNewDAO(t *testing.T) {
	Convey("Memory store by default", t, func() {
		dao, err := NewDAO(config.DefaultConfig())
		So(err, ShouldBeNil)
		_, ok := dao.(*MemoryStore)
		So(ok, ShouldBeTrue)
	})

	Convey("Mongo store when configured", t, func() {
		client = &mongo.Client{}
		defer func() { client = nil }()

		cfg := config.DefaultConfig()
		cfg.SessionStore = config.MongoSessionStore
		dao, err := NewDAO(cfg)
		So(err, ShouldBeNil)
		mongoService, ok := dao.(*MongoService)
		So(ok, ShouldBeTrue)
		So(mongoService.CollectionName, ShouldEqual, "payment_sessions")
	})

	Convey("Unknown store", t, func() {
		cfg := config.DefaultConfig()
		cfg.SessionStore = "redis"
		dao, err := NewDAO(cfg)
		So(dao, ShouldBeNil)
		So(err.Error(), ShouldEqual, "session store [redis] not recognised")
	})
}
