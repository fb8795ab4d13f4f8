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
	StatusOffShelf Status = 1 // 下架
	StatusOnShelf  Status = 2 // 上架
)

// Plan 订阅套餐,Days是开通后的会员时长
type Plan struct {
	ID     int64
	SN     string
	Name   string
	Desc   string
	Days   uint64
	Status Status
	Ctime  int64
	Utime  int64
}

// Membership 用户的订阅状态,每个用户一条
type Membership struct {
	Uid     int64
	StartAt int64
	EndAt   int64
	Records []MembershipRecord
}

// MembershipRecord 每次开通/续期的流水,Key是幂等键
type MembershipRecord struct {
	Key   string
	Days  uint64
	Biz   string
	BizId int64
	Desc  string
}
