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

const CDKRedeemedEventName = "cdk_redeemed_events"

const targetTypePlan = "plan"

// CDKRedeemedEvent 与cdk模块的兑换事件保持一致
type CDKRedeemedEvent struct {
	Key        string `json:"key"`
	Uid        int64  `json:"uid"`
	Code       string `json:"code"`
	Type       string `json:"type"`      // course/plan
	TargetID   int64  `json:"target_id"` // 课程ID或套餐ID
	RedeemTime int64  `json:"redeem_time"`
}
