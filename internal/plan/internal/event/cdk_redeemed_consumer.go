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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/campus/internal/plan/internal/domain"
	"github.com/ecodeclub/campus/internal/plan/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// CDKRedeemedConsumer 套餐类兑换事件的履约方。
// 重复投递会命中流水唯一键,只记Warn,不算消费失败
type CDKRedeemedConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewCDKRedeemedConsumer(svc service.Service, q mq.MQ) (*CDKRedeemedConsumer, error) {
	groupID := "plan"
	consumer, err := q.Consumer(CDKRedeemedEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &CDKRedeemedConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *CDKRedeemedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费兑换事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *CDKRedeemedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt CDKRedeemedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	// 非套餐类兑换码由其他消费组处理
	if evt.Type != targetTypePlan {
		return nil
	}

	p, err := c.svc.FindById(ctx, evt.TargetID)
	if err != nil {
		c.logger.Error("查找订阅套餐失败",
			elog.FieldErr(err),
			elog.Int64("planId", evt.TargetID),
		)
		return err
	}

	err = c.svc.Activate(ctx, evt.Uid, domain.MembershipRecord{
		Key:   evt.Key,
		Days:  p.Days,
		Biz:   "cdk",
		BizId: p.ID,
		Desc:  "兑换订阅套餐",
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicatedMembershipRecord) {
			c.logger.Warn("重复消费",
				elog.FieldErr(err),
				elog.Any("CDKRedeemedEvent", evt),
			)
			return nil
		}
		c.logger.Error("开通订阅失败",
			elog.FieldErr(err),
			elog.Int64("uid", evt.Uid),
			elog.Int64("planId", evt.TargetID),
		)
	}
	return err
}
