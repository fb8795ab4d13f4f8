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
	"fmt"

	"github.com/ecodeclub/campus/internal/course/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// CDKRedeemedConsumer 课程类兑换事件的履约方。
// MQ是at-least-once投递,开通动作靠唯一索引保证幂等,
// 消费失败只记日志,不回滚已经完成的兑换
type CDKRedeemedConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewCDKRedeemedConsumer(svc service.Service, q mq.MQ) (*CDKRedeemedConsumer, error) {
	groupID := "course"
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

	// 非课程类兑换码由其他消费组处理
	if evt.Type != targetTypeCourse {
		return nil
	}

	err = c.svc.Grant(ctx, evt.Uid, evt.TargetID, evt.Key)
	if err != nil {
		c.logger.Error("开通课程失败",
			elog.FieldErr(err),
			elog.Int64("uid", evt.Uid),
			elog.Int64("courseId", evt.TargetID),
			elog.String("key", evt.Key),
		)
	}
	return err
}
