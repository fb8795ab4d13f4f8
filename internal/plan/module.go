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

package plan

import (
	"github.com/ecodeclub/campus/internal/plan/internal/domain"
	"github.com/ecodeclub/campus/internal/plan/internal/event"
	"github.com/ecodeclub/campus/internal/plan/internal/service"
)

type Module struct {
	Svc Service
	// C 随模块初始化启动的兑换事件消费者
	C *event.CDKRedeemedConsumer
}

type Service = service.Service
type Plan = domain.Plan
type Membership = domain.Membership
type MembershipRecord = domain.MembershipRecord
type Status = domain.Status

const (
	StatusOffShelf = domain.StatusOffShelf
	StatusOnShelf  = domain.StatusOnShelf
)

var (
	ErrPlanNotFound               = service.ErrPlanNotFound
	ErrDuplicatedMembershipRecord = service.ErrDuplicatedMembershipRecord
)
