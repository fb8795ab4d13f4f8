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

package repository

import (
	"context"

	"github.com/ecodeclub/campus/internal/cdk/internal/domain"
	"github.com/ecodeclub/campus/internal/cdk/internal/repository/cache"
	"github.com/ecodeclub/campus/internal/cdk/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrCDKNotFound    = dao.ErrCDKNotFound
	ErrCDKNotUsable   = dao.ErrCDKNotUsable
	ErrCDKUsed        = dao.ErrCDKUsed
	ErrDuplicatedCode = dao.ErrDuplicatedCode
)

// ListQuery 管理端分页查询条件,零值字段不参与过滤
type ListQuery struct {
	Type       string
	TargetID   int64
	Status     domain.Status
	CodePrefix string
	Offset     int
	Limit      int
}

type CDKRepository interface {
	CreateCDKs(ctx context.Context, cdks []domain.CDK) ([]int64, error)
	FindByCode(ctx context.Context, code string) (domain.CDK, error)
	FindById(ctx context.Context, id int64) (domain.CDK, error)
	SetActiveStatusUsed(ctx context.Context, uid int64, code string) (domain.CDK, error)
	SetActiveStatusDisabled(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q ListQuery) ([]domain.CDK, error)
	Total(ctx context.Context, q ListQuery) (int64, error)
}

type cdkRepository struct {
	dao    dao.CDKDAO
	cache  cache.CDKCache
	logger *elog.Component
}

func NewCDKRepository(d dao.CDKDAO, c cache.CDKCache) CDKRepository {
	return &cdkRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (c *cdkRepository) CreateCDKs(ctx context.Context, cdks []domain.CDK) ([]int64, error) {
	if len(cdks) == 0 {
		return nil, nil
	}
	first := cdks[0]
	batch := dao.BatchLog{
		BatchId:   first.BatchID,
		Type:      first.Type,
		TargetId:  first.TargetID,
		CodeCount: int64(len(cdks)),
	}
	return c.dao.CreateCDKs(ctx, batch, slice.Map(cdks, func(idx int, src domain.CDK) dao.CDK {
		return c.toEntity(src)
	}))
}

func (c *cdkRepository) FindByCode(ctx context.Context, code string) (domain.CDK, error) {
	cached, err := c.cache.GetCDK(ctx, code)
	if err == nil {
		return cached, nil
	}
	entity, err := c.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.CDK{}, err
	}
	res := c.toDomain(entity)
	// 缓存写失败不影响主流程。
	// 缓存里残留的旧状态不会造成重复兑换,条件更新会兜底
	if er := c.cache.SetCDK(ctx, res); er != nil {
		c.logger.Warn("缓存兑换码失败", elog.FieldErr(er), elog.String("code", code))
	}
	return res, nil
}

func (c *cdkRepository) FindById(ctx context.Context, id int64) (domain.CDK, error) {
	cdk, err := c.dao.FindById(ctx, id)
	if err != nil {
		return domain.CDK{}, err
	}
	return c.toDomain(cdk), nil
}

func (c *cdkRepository) SetActiveStatusUsed(ctx context.Context, uid int64, code string) (domain.CDK, error) {
	cdk, err := c.dao.SetActiveStatusUsed(ctx, uid, code)
	if err != nil {
		return domain.CDK{}, err
	}
	c.delCache(ctx, code)
	return c.toDomain(cdk), nil
}

func (c *cdkRepository) SetActiveStatusDisabled(ctx context.Context, id int64) error {
	cdk, err := c.dao.FindById(ctx, id)
	if err != nil {
		return err
	}
	if err = c.dao.SetActiveStatusDisabled(ctx, id); err != nil {
		return err
	}
	c.delCache(ctx, cdk.Code)
	return nil
}

func (c *cdkRepository) Delete(ctx context.Context, id int64) error {
	cdk, err := c.dao.FindById(ctx, id)
	if err != nil {
		return err
	}
	if err = c.dao.Delete(ctx, id); err != nil {
		return err
	}
	c.delCache(ctx, cdk.Code)
	return nil
}

func (c *cdkRepository) delCache(ctx context.Context, code string) {
	if err := c.cache.DelCDK(ctx, code); err != nil {
		c.logger.Warn("删除兑换码缓存失败", elog.FieldErr(err), elog.String("code", code))
	}
}

func (c *cdkRepository) List(ctx context.Context, q ListQuery) ([]domain.CDK, error) {
	cdks, err := c.dao.List(ctx, c.toQuery(q))
	if err != nil {
		return nil, err
	}
	return slice.Map(cdks, func(idx int, src dao.CDK) domain.CDK {
		return c.toDomain(src)
	}), nil
}

func (c *cdkRepository) Total(ctx context.Context, q ListQuery) (int64, error) {
	return c.dao.Count(ctx, c.toQuery(q))
}

func (c *cdkRepository) toQuery(q ListQuery) dao.ListQuery {
	return dao.ListQuery{
		Type:       q.Type,
		TargetID:   q.TargetID,
		Status:     q.Status.ToUint8(),
		CodePrefix: q.CodePrefix,
		Offset:     q.Offset,
		Limit:      q.Limit,
	}
}

func (c *cdkRepository) toDomain(src dao.CDK) domain.CDK {
	return domain.CDK{
		ID:         src.Id,
		Code:       src.Code,
		Type:       src.Type,
		TargetID:   src.TargetId,
		BatchID:    src.BatchId,
		Status:     domain.Status(src.Status),
		RedeemerID: src.RedeemerId,
		RedeemTime: src.RedeemTime,
		Ctime:      src.Ctime,
		Utime:      src.Utime,
	}
}

func (c *cdkRepository) toEntity(src domain.CDK) dao.CDK {
	return dao.CDK{
		Code:     src.Code,
		Type:     src.Type,
		TargetId: src.TargetID,
		BatchId:  src.BatchID,
		Status:   src.Status.ToUint8(),
	}
}
