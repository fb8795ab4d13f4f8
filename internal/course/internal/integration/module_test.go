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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/campus/internal/course/internal/domain"
	"github.com/ecodeclub/campus/internal/course/internal/event"
	"github.com/ecodeclub/campus/internal/course/internal/repository"
	"github.com/ecodeclub/campus/internal/course/internal/repository/dao"
	"github.com/ecodeclub/campus/internal/course/internal/service"
	testioc "github.com/ecodeclub/campus/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testID = 331001

func TestCourseModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db   *egorm.Component
	q    mq.MQ
	dao  dao.CourseDAO
	repo repository.CourseRepository
	svc  service.Service
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.NoError(dao.InitTables(s.db))
	s.dao = dao.NewGORMCourseDAO(s.db)
	s.repo = repository.NewCourseRepository(s.dao)
	s.svc = service.NewService(s.repo)
	s.q = testioc.InitMQ()
}

func (s *ModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `courses`").Error
	s.NoError(err)
	err = s.db.Exec("DROP TABLE `course_members`").Error
	s.NoError(err)
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `courses`").Error
	s.NoError(err)
	err = s.db.Exec("TRUNCATE TABLE `course_members`").Error
	s.NoError(err)
}

func (s *ModuleTestSuite) newCourse(sn, name string) int64 {
	id, err := s.svc.Save(context.Background(), domain.Course{
		SN:     sn,
		Name:   name,
		Desc:   "从零到一",
		Status: domain.StatusOnShelf,
	})
	s.NoError(err)
	return id
}

func (s *ModuleTestSuite) TestService_SaveAndList() {
	t := s.T()
	ctx := context.Background()

	id1 := s.newCourse("course-go", "Go实战")
	s.newCourse("course-k8s", "K8s实战")

	c, err := s.svc.FindById(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, "Go实战", c.Name)
	assert.Equal(t, domain.StatusOnShelf, c.Status)

	// 更新已有课程不会新增记录
	c.Name = "Go进阶实战"
	_, err = s.svc.Save(ctx, c)
	require.NoError(t, err)

	courses, total, err := s.svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, courses, 2)

	_, err = s.svc.FindById(ctx, 99999)
	assert.ErrorIs(t, err, service.ErrCourseNotFound)
}

func (s *ModuleTestSuite) TestService_GrantIdempotent() {
	t := s.T()
	ctx := context.Background()

	courseID := s.newCourse("course-grant", "Go实战")

	err := s.svc.Grant(ctx, testID, courseID, "key-1")
	require.NoError(t, err)
	// 同一用户同一课程重复开通不报错也不加行
	err = s.svc.Grant(ctx, testID, courseID, "key-1")
	require.NoError(t, err)
	err = s.svc.Grant(ctx, testID, courseID, "key-2")
	require.NoError(t, err)

	ok, err := s.svc.HasAccess(ctx, testID, courseID)
	require.NoError(t, err)
	assert.True(t, ok)

	var count int64
	err = s.db.Model(&dao.CourseMember{}).
		Where("uid = ? AND course_id = ?", testID, courseID).
		Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	ok, err = s.svc.HasAccess(ctx, testID+1, courseID)
	require.NoError(t, err)
	assert.False(t, ok)

	err = s.svc.Grant(ctx, testID, 99999, "key-3")
	assert.ErrorIs(t, err, service.ErrCourseNotFound)
}

func (s *ModuleTestSuite) TestConsumer_ConsumeCDKRedeemedEvent() {
	t := s.T()
	ctx := context.Background()

	courseID := s.newCourse("course-consume", "Go实战")

	consumer, err := event.NewCDKRedeemedConsumer(s.svc, s.q)
	require.NoError(t, err)
	p, err := s.q.Producer(event.CDKRedeemedEventName)
	require.NoError(t, err)

	produce := func(evt event.CDKRedeemedEvent) {
		data, err := json.Marshal(evt)
		require.NoError(t, err)
		_, err = p.Produce(ctx, &mq.Message{Key: []byte(evt.Key), Value: data})
		require.NoError(t, err)
	}
	consume := func() error {
		cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		return consumer.Consume(cctx)
	}

	evt := event.CDKRedeemedEvent{
		Key:        "cdk-331001-TESTCODE00000001",
		Uid:        testID,
		Code:       "TESTCODE00000001",
		Type:       "course",
		TargetID:   courseID,
		RedeemTime: time.Now().UnixMilli(),
	}
	produce(evt)
	require.NoError(t, consume())

	ok, err := s.svc.HasAccess(ctx, testID, courseID)
	require.NoError(t, err)
	assert.True(t, ok)

	// 重复投递同一事件,消费幂等
	produce(evt)
	require.NoError(t, consume())
	var count int64
	err = s.db.Model(&dao.CourseMember{}).
		Where("uid = ? AND course_id = ?", testID, courseID).
		Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 套餐类事件与本消费组无关
	produce(event.CDKRedeemedEvent{
		Key:      "cdk-331001-TESTCODE00000002",
		Uid:      testID,
		Code:     "TESTCODE00000002",
		Type:     "plan",
		TargetID: 2001,
	})
	require.NoError(t, consume())
	err = s.db.Model(&dao.CourseMember{}).Where("uid = ?", testID).Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
