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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrCDKNotFound = gorm.ErrRecordNotFound
	// ErrCDKNotUsable 兑换码存在但不是ACTIVE状态
	ErrCDKNotUsable = errors.New("兑换码不可用")
	// ErrCDKUsed 试图删除已使用的兑换码
	ErrCDKUsed = errors.New("兑换码已被使用")
	// ErrDuplicatedCode 批量插入撞上code唯一索引,调用方重新生成后重试
	ErrDuplicatedCode = errors.New("兑换码重复")
)

type ListQuery struct {
	Type       string
	TargetID   int64
	Status     uint8
	CodePrefix string
	Offset     int
	Limit      int
}

type CDKDAO interface {
	CreateCDKs(ctx context.Context, batch BatchLog, cdks []CDK) ([]int64, error)
	FindByCode(ctx context.Context, code string) (CDK, error)
	FindById(ctx context.Context, id int64) (CDK, error)
	// SetActiveStatusUsed ACTIVE -> USED,条件更新保证至多成功一次
	SetActiveStatusUsed(ctx context.Context, uid int64, code string) (CDK, error)
	// SetActiveStatusDisabled ACTIVE -> DISABLED
	SetActiveStatusDisabled(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q ListQuery) ([]CDK, error)
	Count(ctx context.Context, q ListQuery) (int64, error)
}

type gormCDKDAO struct {
	db *egorm.Component
}

func NewGORMCDKDAO(db *egorm.Component) CDKDAO {
	return &gormCDKDAO{db: db}
}

func (g *gormCDKDAO) CreateCDKs(ctx context.Context, batch BatchLog, cdks []CDK) ([]int64, error) {
	now := time.Now().UnixMilli()
	for i := range cdks {
		cdks[i].Ctime, cdks[i].Utime = now, now
	}
	err := g.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		if err := tx.Create(&cdks).Error; err != nil {
			return fmt.Errorf("创建兑换码主记录失败: %w", err)
		}
		batch.Ctime, batch.Utime = now, now
		return tx.Create(&batch).Error
	})
	if err != nil {
		if isMySQLUniqueIndexError(err) {
			return nil, fmt.Errorf("%w: %w", ErrDuplicatedCode, err)
		}
		return nil, err
	}
	return slice.Map(cdks, func(idx int, src CDK) int64 {
		return src.Id
	}), nil
}

func (g *gormCDKDAO) FindByCode(ctx context.Context, code string) (CDK, error) {
	var res CDK
	err := g.db.WithContext(ctx).First(&res, "code = ? AND deleted = 0", code).Error
	return res, err
}

func (g *gormCDKDAO) FindById(ctx context.Context, id int64) (CDK, error) {
	var res CDK
	err := g.db.WithContext(ctx).First(&res, "id = ? AND deleted = 0", id).Error
	return res, err
}

func (g *gormCDKDAO) SetActiveStatusUsed(ctx context.Context, uid int64, code string) (CDK, error) {
	now := time.Now().UnixMilli()
	var c CDK
	err := g.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		updateResult := tx.Model(&c).
			Where("code = ? AND status = ? AND deleted = 0", code, StatusActive).
			Updates(map[string]any{
				"status":      StatusUsed,
				"redeemer_id": uid,
				"redeem_time": now,
				"utime":       now,
			})
		if updateResult.Error != nil {
			return updateResult.Error
		}

		if err := tx.Where("code = ? AND deleted = 0", code).First(&c).Error; err != nil {
			return err
		}

		// 0行受影响说明别人先兑换了,或者码已停用
		if updateResult.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrCDKNotUsable, code)
		}

		l := RedeemLog{
			CDKId:      c.Id,
			RedeemerId: uid,
			Code:       code,
			Ctime:      now,
			Utime:      now,
		}
		if err := tx.Create(&l).Error; err != nil {
			if isMySQLUniqueIndexError(err) {
				return fmt.Errorf("%w: %s", ErrCDKNotUsable, code)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return CDK{}, err
	}
	return c, nil
}

func (g *gormCDKDAO) SetActiveStatusDisabled(ctx context.Context, id int64) error {
	now := time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&CDK{}).
		Where("id = ? AND status = ? AND deleted = 0", id, StatusActive).
		Updates(map[string]any{
			"status": StatusDisabled,
			"utime":  now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return g.explainNoRowsAffected(ctx, id)
	}
	return nil
}

// Delete 软删除。已使用的兑换码是兑换凭证,不允许删除
func (g *gormCDKDAO) Delete(ctx context.Context, id int64) error {
	now := time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&CDK{}).
		Where("id = ? AND status <> ? AND deleted = 0", id, StatusUsed).
		Updates(map[string]any{
			"deleted": 1,
			"utime":   now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return g.explainNoRowsAffected(ctx, id)
	}
	return nil
}

// explainNoRowsAffected 区分"不存在"和"状态不允许"
func (g *gormCDKDAO) explainNoRowsAffected(ctx context.Context, id int64) error {
	c, err := g.FindById(ctx, id)
	if err != nil {
		return err
	}
	if c.Status == StatusUsed {
		return fmt.Errorf("%w: id=%d", ErrCDKUsed, id)
	}
	return fmt.Errorf("%w: id=%d", ErrCDKNotUsable, id)
}

func (g *gormCDKDAO) List(ctx context.Context, q ListQuery) ([]CDK, error) {
	var res []CDK
	err := g.listQuery(ctx, q).Order("ctime DESC, id DESC").
		Offset(q.Offset).Limit(q.Limit).Find(&res).Error
	return res, err
}

func (g *gormCDKDAO) Count(ctx context.Context, q ListQuery) (int64, error) {
	var count int64
	err := g.listQuery(ctx, q).Count(&count).Error
	return count, err
}

func (g *gormCDKDAO) listQuery(ctx context.Context, q ListQuery) *gorm.DB {
	db := g.db.WithContext(ctx).Model(&CDK{}).Where("deleted = 0")
	if q.Type != "" {
		db = db.Where("type = ?", q.Type)
	}
	if q.TargetID > 0 {
		db = db.Where("target_id = ?", q.TargetID)
	}
	if q.Status > 0 {
		db = db.Where("status = ?", q.Status)
	}
	if q.CodePrefix != "" {
		db = db.Where("code LIKE ?", q.CodePrefix+"%")
	}
	return db
}

func isMySQLUniqueIndexError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return true
		}
	}
	return false
}

const (
	StatusActive   uint8 = 1
	StatusUsed     uint8 = 2
	StatusDisabled uint8 = 3
)

type CDK struct {
	Id   int64  `gorm:"primaryKey;autoIncrement;comment:兑换码自增ID"`
	Code string `gorm:"type:varchar(32);not null;uniqueIndex:uniq_code;comment:兑换码"`
	// Type 与商品类别对应,course/plan
	Type       string `gorm:"type:varchar(255);not null;index:idx_type;comment:兑换码类型"`
	TargetId   int64  `gorm:"not null;index:idx_target_id;comment:类别内的商品ID"`
	BatchId    string `gorm:"type:varchar(255);not null;index:idx_batch_id;comment:生成批次号"`
	Status     uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=可兑换 2=已兑换 3=已停用"`
	RedeemerId int64  `gorm:"not null;default:0;comment:兑换者ID,未兑换为0"`
	RedeemTime int64  `gorm:"not null;default:0;comment:兑换时间,未兑换为0"`
	Deleted    uint8  `gorm:"column:deleted;type:tinyint unsigned;not null;default:0;comment:软删除标记"`
	Ctime      int64
	Utime      int64
}

// BatchLog 每次管理端生成动作一条
type BatchLog struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:批次自增ID"`
	BatchId   string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_batch_id;comment:批次号"`
	Type      string `gorm:"type:varchar(255);not null;comment:兑换码类型"`
	TargetId  int64  `gorm:"not null;comment:类别内的商品ID"`
	CodeCount int64  `gorm:"not null;comment:此批次生成兑换码个数"`
	Ctime     int64
	Utime     int64
}

// RedeemLog 兑换流水,CDKId和Code上的唯一索引是防止重复兑换的第二道闸
type RedeemLog struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:兑换流水自增ID"`
	CDKId      int64  `gorm:"column:cdk_id;not null;uniqueIndex:uniq_cdk_id;comment:兑换码记录ID"`
	RedeemerId int64  `gorm:"not null;index:idx_redeemer_id;comment:兑换者ID"`
	Code       string `gorm:"type:varchar(32);not null;uniqueIndex:uniq_code;comment:兑换码"`
	Ctime      int64
	Utime      int64
}
