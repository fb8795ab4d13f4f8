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

	"github.com/ecodeclub/campus/internal/cdk/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

// AuditService 在兑换链路上记审计日志的装饰器,
// 成功失败都要留痕
type AuditService struct {
	Service
	logger *elog.Component
}

func NewAuditService(svc Service) *AuditService {
	return &AuditService{
		Service: svc,
		logger:  elog.DefaultLogger.With(elog.FieldComponent("cdk.AuditService")),
	}
}

func (a *AuditService) Redeem(ctx context.Context, uid int64, code string) (domain.CDK, error) {
	cdk, err := a.Service.Redeem(ctx, uid, code)
	if err != nil {
		a.logger.Warn("兑换失败",
			elog.Int64("uid", uid),
			elog.String("code", code),
			elog.FieldErr(err))
		return domain.CDK{}, err
	}
	a.logger.Info("兑换成功",
		elog.Int64("uid", uid),
		elog.String("code", code),
		elog.Int64("id", cdk.ID),
		elog.String("type", cdk.Type),
		elog.Int64("targetId", cdk.TargetID))
	return cdk, nil
}
