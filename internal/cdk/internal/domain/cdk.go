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

package domain

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	// StatusActive 可兑换
	StatusActive Status = 1
	// StatusUsed 已兑换,终态
	StatusUsed Status = 2
	// StatusDisabled 已停用,终态
	StatusDisabled Status = 3
)

// 兑换码绑定的商品类别
const (
	TypeCourse = "course"
	TypePlan   = "plan"
)

// CDK 单次有效的兑换码。
// 状态只能单向流转: ACTIVE -> USED 或 ACTIVE -> DISABLED,
// RedeemerID/RedeemTime 当且仅当状态为USED时有值
type CDK struct {
	ID   int64
	Code string
	// Type 商品类别,course/plan
	Type string
	// TargetID 类别内的商品ID,课程ID或套餐ID
	TargetID int64
	// BatchID 同一次管理端生成动作共享一个批次号
	BatchID    string
	Status     Status
	RedeemerID int64
	RedeemTime int64
	Ctime      int64
	Utime      int64
}

// Redeemable 是否还能被兑换
func (c CDK) Redeemable() bool {
	return c.Status == StatusActive
}
