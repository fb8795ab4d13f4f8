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

type Course struct {
	ID     int64
	SN     string
	Name   string
	Desc   string
	Status Status
	Ctime  int64
	Utime  int64
}

// CourseMember 用户对课程的访问权
type CourseMember struct {
	ID       int64
	Uid      int64
	CourseID int64
	// Key 开通来源的幂等键,重复投递不会重复开通
	Key   string
	Ctime int64
}
