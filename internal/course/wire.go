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

package course

import (
	"context"
	"sync"

	"github.com/ecodeclub/campus/internal/course/internal/event"
	"github.com/ecodeclub/campus/internal/course/internal/repository"
	"github.com/ecodeclub/campus/internal/course/internal/repository/dao"
	"github.com/ecodeclub/campus/internal/course/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		InitService,
		initCDKRedeemedConsumer,
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewGORMCourseDAO(db)
		r := repository.NewCourseRepository(d)
		svc = service.NewService(r)
	})
	return svc
}

func initCDKRedeemedConsumer(svc Service, q mq.MQ) *event.CDKRedeemedConsumer {
	c, err := event.NewCDKRedeemedConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
