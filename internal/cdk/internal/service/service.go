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

package service

import (
	"context"
	"time"

	"github.com/ecodeclub/campus/internal/cdk/internal/domain"
	"github.com/ecodeclub/campus/internal/cdk/internal/event"
	"github.com/ecodeclub/campus/internal/cdk/internal/event/producer"
	"github.com/ecodeclub/campus/internal/cdk/internal/repository"
	"github.com/ecodeclub/campus/internal/pkg/rlock"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrCDKNotFound     = repository.ErrCDKNotFound
	ErrCDKNotUsable    = repository.ErrCDKNotUsable
	ErrLockNotAcquired = rlock.ErrLockNotAcquired
)

const (
	// 同一个兑换码上的并发请求在锁上排队的时间
	lockWaitTime = 300 * time.Millisecond
	// 租约要盖过一次数据库事务的最坏耗时
	lockLeaseTime = 5 * time.Second
)

//go:generate mockgen -source=./service.go -package=cdkmocks -destination=../../mocks/cdk.mock.go -typed Service
type Service interface {
	// Redeem 兑换,成功后发出履约事件
	Redeem(ctx context.Context, uid int64, code string) (domain.CDK, error)
	FindByCode(ctx context.Context, code string) (domain.CDK, error)
}

type service struct {
	repo     repository.CDKRepository
	lock     *rlock.Client
	producer producer.CDKRedeemedProducer
	logger   *elog.Component
}

func NewService(repo repository.CDKRepository,
	lock *rlock.Client,
	p producer.CDKRedeemedProducer) Service {
	return &service{
		repo:     repo,
		lock:     lock,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Redeem(ctx context.Context, uid int64, code string) (domain.CDK, error) {
	cdk, err := rlock.ExecuteWithLock(ctx, s.lock, s.lockKey(code),
		lockWaitTime, lockLeaseTime, func() (domain.CDK, error) {
			return s.redeem(ctx, uid, code)
		})
	if err != nil {
		return domain.CDK{}, err
	}
	s.sendCDKRedeemedEvent(cdk)
	return cdk, nil
}

func (s *service) redeem(ctx context.Context, uid int64, code string) (domain.CDK, error) {
	cdk, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return domain.CDK{}, err
	}
	if !cdk.Redeemable() {
		return domain.CDK{}, ErrCDKNotUsable
	}
	// 条件更新,并发下落败的一方拿到ErrCDKNotUsable
	return s.repo.SetActiveStatusUsed(ctx, uid, code)
}

// sendCDKRedeemedEvent 发送失败只记日志不回滚,
// 依靠对账任务补发
func (s *service) sendCDKRedeemedEvent(cdk domain.CDK) {
	evt := event.CDKRedeemedEvent{
		Key:        event.EventKey(cdk.RedeemerID, cdk.Code),
		Uid:        cdk.RedeemerID,
		Code:       cdk.Code,
		Type:       cdk.Type,
		TargetID:   cdk.TargetID,
		RedeemTime: cdk.RedeemTime,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送兑换成功事件失败",
			elog.FieldErr(err),
			elog.Any("event", evt))
	}
}

func (s *service) FindByCode(ctx context.Context, code string) (domain.CDK, error) {
	return s.repo.FindByCode(ctx, code)
}

func (s *service) lockKey(code string) string {
	return "cdk:redeem:" + code
}
