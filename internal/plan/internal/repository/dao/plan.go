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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPlanNotFound               = gorm.ErrRecordNotFound
	ErrUpdateMembershipFailed     = errors.New("更新订阅主记录失败")
	ErrDuplicatedMembershipRecord = errors.New("订阅流水重复")
)

type PlanDAO interface {
	Save(ctx context.Context, p Plan) (int64, error)
	FindById(ctx context.Context, id int64) (Plan, error)
	List(ctx context.Context, offset, limit int) ([]Plan, error)
	Count(ctx context.Context) (int64, error)

	FindMembershipByUID(ctx context.Context, uid int64) (Membership, error)
	FindMembershipRecordsByUID(ctx context.Context, uid int64) ([]MembershipRecord, error)
	UpsertMembership(ctx context.Context, uid int64, r MembershipRecord) error
}

type gormPlanDAO struct {
	db *egorm.Component
}

func NewGORMPlanDAO(db *egorm.Component) PlanDAO {
	return &gormPlanDAO{db: db}
}

func (g *gormPlanDAO) Save(ctx context.Context, p Plan) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "days", "status", "utime",
		}),
	}).Create(&p).Error
	return p.Id, err
}

func (g *gormPlanDAO) FindById(ctx context.Context, id int64) (Plan, error) {
	var p Plan
	err := g.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return p, err
}

func (g *gormPlanDAO) List(ctx context.Context, offset, limit int) ([]Plan, error) {
	var res []Plan
	err := g.db.WithContext(ctx).Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *gormPlanDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Plan{}).Count(&count).Error
	return count, err
}

func (g *gormPlanDAO) FindMembershipByUID(ctx context.Context, uid int64) (Membership, error) {
	var m Membership
	err := g.db.WithContext(ctx).First(&m, "uid", uid).Error
	return m, err
}

func (g *gormPlanDAO) FindMembershipRecordsByUID(ctx context.Context, uid int64) ([]MembershipRecord, error) {
	var r []MembershipRecord
	err := g.db.WithContext(ctx).Order("ctime DESC").Find(&r, "uid", uid).Error
	return r, err
}

// UpsertMembership 开通或续期。
// 主记录用version做乐观锁,流水的唯一键兜住重复投递
func (g *gormPlanDAO) UpsertMembership(ctx context.Context, uid int64, r MembershipRecord) error {
	return g.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		now := time.Now().UTC()
		startAtDate := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
		startAt := startAtDate.UnixMilli()
		endAt := startAtDate.Add(time.Hour * 24 * time.Duration(r.Days)).UnixMilli()

		membership := Membership{
			StartAt: startAt,
			EndAt:   endAt,
			Version: 1,
			Ctime:   now.UnixMilli(),
			Utime:   now.UnixMilli(),
		}
		res := tx.Where(Membership{Uid: uid}).Attrs(membership).FirstOrCreate(&membership)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if membership.EndAt < now.UnixMilli() {
				// 已过期,重新激活
				membership.StartAt = startAt
				membership.EndAt = endAt
			} else {
				// 续期
				membership.EndAt = time.UnixMilli(membership.EndAt).
					Add(time.Hour * 24 * time.Duration(r.Days)).UnixMilli()
			}
			membership.Version += 1
			membership.Utime = now.UnixMilli()
			res = tx.Model(&Membership{}).
				Where("uid = ? AND version = ?", membership.Uid, membership.Version-1).
				Updates(&membership)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// version被其他并发事务更新
				return fmt.Errorf("更新订阅主记录失败: %w", ErrUpdateMembershipFailed)
			}
		}
		r.Uid = uid
		r.Ctime, r.Utime = now.UnixMilli(), now.UnixMilli()
		if err := tx.Create(&r).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) {
				const uniqueIndexErrNo uint16 = 1062
				if me.Number == uniqueIndexErrNo {
					return ErrDuplicatedMembershipRecord
				}
			}
			return err
		}
		return nil
	})
}

type Plan struct {
	Id     int64  `gorm:"primaryKey;autoIncrement;comment:套餐自增ID"`
	SN     string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_plan_sn;comment:套餐序列号"`
	Name   string `gorm:"type:varchar(255);not null;comment:套餐名"`
	Desc   string `gorm:"column:description;type:varchar(2048);not null;comment:套餐描述"`
	Days   uint64 `gorm:"not null;comment:会员时长,天"`
	Status uint8  `gorm:"type:tinyint unsigned;not null;default:2;comment:状态 1=下架 2=上架"`
	Ctime  int64
	Utime  int64
}

// Membership 订阅表,每个用户只有一条记录
type Membership struct {
	Id      int64 `gorm:"primaryKey;autoIncrement;comment:订阅表自增ID"`
	Uid     int64 `gorm:"not null;uniqueIndex:uniq_uid;comment:用户ID"`
	StartAt int64 `gorm:"not null;comment:订阅开始日期,UTC Unix毫秒数"`
	EndAt   int64 `gorm:"not null;comment:订阅结束日期,UTC Unix毫秒数"`
	Version int64 `gorm:"not null;default:1;comment:版本号"`
	Ctime   int64
	Utime   int64
}

type MembershipRecord struct {
	Id    int64  `gorm:"primaryKey;autoIncrement;comment:订阅流水自增ID"`
	Key   string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_key;comment:幂等键"`
	Uid   int64  `gorm:"not null;index:idx_uid;comment:用户ID"`
	Days  uint64 `gorm:"not null;comment:时长,天"`
	Biz   string `gorm:"type:varchar(255);not null;comment:来源业务名,cdk/order等"`
	BizId int64  `gorm:"not null;comment:来源业务ID"`
	Desc  string `gorm:"column:description;type:varchar(255);not null;comment:描述"`
	Ctime int64
	Utime int64
}
