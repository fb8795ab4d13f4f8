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

	"github.com/ecodeclub/campus/internal/plan/internal/domain"
	"github.com/ecodeclub/campus/internal/plan/internal/event"
	"github.com/ecodeclub/campus/internal/plan/internal/repository"
	"github.com/ecodeclub/campus/internal/plan/internal/repository/dao"
	"github.com/ecodeclub/campus/internal/plan/internal/service"
	testioc "github.com/ecodeclub/campus/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testID = 445001

func TestPlanModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db   *egorm.Component
	q    mq.MQ
	dao  dao.PlanDAO
	repo repository.PlanRepository
	svc  service.Service
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.NoError(dao.InitTables(s.db))
	s.dao = dao.NewGORMPlanDAO(s.db)
	s.repo = repository.NewPlanRepository(s.dao)
	s.svc = service.NewService(s.repo)
	s.q = testioc.InitMQ()
}

func (s *ModuleTestSuite) TearDownSuite() {
	for _, table := range []string{"plans", "memberships", "membership_records"} {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		s.NoError(err)
	}
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range []string{"plans", "memberships", "membership_records"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		s.NoError(err)
	}
}

func (s *ModuleTestSuite) newPlan(sn string, days uint64) int64 {
	id, err := s.svc.Save(context.Background(), domain.Plan{
		SN:     sn,
		Name:   "年卡",
		Desc:   "包含全部课程",
		Days:   days,
		Status: domain.StatusOnShelf,
	})
	s.NoError(err)
	return id
}

func (s *ModuleTestSuite) TestService_SaveAndList() {
	t := s.T()
	ctx := context.Background()

	id := s.newPlan("plan-year", 365)
	s.newPlan("plan-month", 31)

	p, err := s.svc.FindById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(365), p.Days)

	plans, total, err := s.svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, plans, 2)

	_, err = s.svc.FindById(ctx, 99999)
	assert.ErrorIs(t, err, service.ErrPlanNotFound)
}

func (s *ModuleTestSuite) TestService_ActivateAndRenew() {
	t := s.T()
	ctx := context.Background()

	id := s.newPlan("plan-activate", 365)

	err := s.svc.Activate(ctx, testID, domain.MembershipRecord{
		Key:   "key-activate-1",
		Days:  365,
		Biz:   "cdk",
		BizId: id,
	})
	require.NoError(t, err)

	m, err := s.svc.GetMembership(ctx, testID)
	require.NoError(t, err)
	assert.Equal(t, int64(testID), m.Uid)
	assert.True(t, m.EndAt > time.Now().UnixMilli())
	assert.Len(t, m.Records, 1)
	firstEndAt := m.EndAt

	// 续期在原有效期上顺延
	err = s.svc.Activate(ctx, testID, domain.MembershipRecord{
		Key:   "key-activate-2",
		Days:  365,
		Biz:   "cdk",
		BizId: id,
	})
	require.NoError(t, err)
	m, err = s.svc.GetMembership(ctx, testID)
	require.NoError(t, err)
	assert.Equal(t, firstEndAt+365*24*time.Hour.Milliseconds(), m.EndAt)
	assert.Len(t, m.Records, 2)
}

func (s *ModuleTestSuite) TestService_ActivateIdempotent() {
	t := s.T()
	ctx := context.Background()

	id := s.newPlan("plan-idem", 31)

	record := domain.MembershipRecord{
		Key:   "key-idem-1",
		Days:  31,
		Biz:   "cdk",
		BizId: id,
	}
	require.NoError(t, s.svc.Activate(ctx, testID, record))
	m, err := s.svc.GetMembership(ctx, testID)
	require.NoError(t, err)
	endAt := m.EndAt

	// 同一个幂等键重复激活无副作用
	err = s.svc.Activate(ctx, testID, record)
	assert.ErrorIs(t, err, service.ErrDuplicatedMembershipRecord)

	m, err = s.svc.GetMembership(ctx, testID)
	require.NoError(t, err)
	assert.Equal(t, endAt, m.EndAt)
	assert.Len(t, m.Records, 1)
}

func (s *ModuleTestSuite) TestService_GetMembershipWithoutSubscription() {
	t := s.T()
	m, err := s.svc.GetMembership(context.Background(), testID+777)
	require.NoError(t, err)
	assert.Equal(t, int64(testID+777), m.Uid)
	assert.Zero(t, m.EndAt)
	assert.Empty(t, m.Records)
}

func (s *ModuleTestSuite) TestConsumer_ConsumeCDKRedeemedEvent() {
	t := s.T()
	ctx := context.Background()

	planID := s.newPlan("plan-consume", 365)

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
		Key:        "cdk-445001-TESTCODE00000001",
		Uid:        testID,
		Code:       "TESTCODE00000001",
		Type:       "plan",
		TargetID:   planID,
		RedeemTime: time.Now().UnixMilli(),
	}
	produce(evt)
	require.NoError(t, consume())

	m, err := s.svc.GetMembership(ctx, testID)
	require.NoError(t, err)
	assert.True(t, m.EndAt > time.Now().UnixMilli())
	require.Len(t, m.Records, 1)
	assert.Equal(t, "cdk", m.Records[0].Biz)
	assert.Equal(t, uint64(365), m.Records[0].Days)
	endAt := m.EndAt

	// 重复投递同一事件不会再次续期
	produce(evt)
	require.NoError(t, consume())
	m, err = s.svc.GetMembership(ctx, testID)
	require.NoError(t, err)
	assert.Equal(t, endAt, m.EndAt)
	assert.Len(t, m.Records, 1)

	// 课程类事件与本消费组无关
	produce(event.CDKRedeemedEvent{
		Key:      "cdk-445001-TESTCODE00000002",
		Uid:      testID,
		Code:     "TESTCODE00000002",
		Type:     "course",
		TargetID: 1001,
	})
	require.NoError(t, consume())
}
