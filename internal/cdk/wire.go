// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package cdk

import (
	"sync"

	"github.com/ecodeclub/campus/internal/cdk/internal/event/producer"
	"github.com/ecodeclub/campus/internal/cdk/internal/repository"
	"github.com/ecodeclub/campus/internal/cdk/internal/repository/cache"
	"github.com/ecodeclub/campus/internal/cdk/internal/repository/dao"
	"github.com/ecodeclub/campus/internal/cdk/internal/service"
	"github.com/ecodeclub/campus/internal/cdk/internal/web"
	"github.com/ecodeclub/campus/internal/course"
	"github.com/ecodeclub/campus/internal/pkg/codegen"
	"github.com/ecodeclub/campus/internal/pkg/rlock"
	"github.com/ecodeclub/campus/internal/plan"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	ec ecache.Cache,
	rdb redis.Cmdable,
	cm *course.Module,
	pm *plan.Module) (*Module, error) {
	wire.Build(
		initDAO,
		cache.NewCDKCache,
		repository.NewCDKRepository,
		rlock.NewClient,
		producer.NewCDKRedeemedProducer,
		codegen.NewGenerator,
		initService,
		wire.FieldsOf(new(*course.Module), "Svc"),
		wire.FieldsOf(new(*plan.Module), "Svc"),
		service.NewAdminService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.CDKDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMCDKDAO(db)
}

// initService 兑换链路包一层审计日志
func initService(repo repository.CDKRepository,
	lock *rlock.Client,
	p producer.CDKRedeemedProducer) Service {
	return service.NewAuditService(service.NewService(repo, lock, p))
}
