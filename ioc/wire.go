//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/campus/internal/cdk"
	"github.com/ecodeclub/campus/internal/course"
	"github.com/ecodeclub/campus/internal/plan"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitMQ,
		InitSession,
		course.InitModule,
		plan.InitModule,
		cdk.InitModule,
		wire.FieldsOf(new(*cdk.Module), "Hdl", "AdminHdl"),
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
