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
	"errors"

	"github.com/ecodeclub/campus/internal/plan/internal/domain"
	"github.com/ecodeclub/campus/internal/plan/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrPlanNotFound               = dao.ErrPlanNotFound
	ErrUpdateMembershipFailed     = dao.ErrUpdateMembershipFailed
	ErrDuplicatedMembershipRecord = dao.ErrDuplicatedMembershipRecord
)

type PlanRepository interface {
	Save(ctx context.Context, p domain.Plan) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Plan, error)
	List(ctx context.Context, offset, limit int) ([]domain.Plan, error)
	Total(ctx context.Context) (int64, error)
	FindMembershipByUID(ctx context.Context, uid int64) (domain.Membership, error)
	ActivateMembership(ctx context.Context, uid int64, r domain.MembershipRecord) error
}

type planRepository struct {
	dao dao.PlanDAO
}

func NewPlanRepository(d dao.PlanDAO) PlanRepository {
	return &planRepository{dao: d}
}

func (p *planRepository) Save(ctx context.Context, plan domain.Plan) (int64, error) {
	return p.dao.Save(ctx, dao.Plan{
		Id:     plan.ID,
		SN:     plan.SN,
		Name:   plan.Name,
		Desc:   plan.Desc,
		Days:   plan.Days,
		Status: plan.Status.ToUint8(),
	})
}

func (p *planRepository) FindById(ctx context.Context, id int64) (domain.Plan, error) {
	plan, err := p.dao.FindById(ctx, id)
	if err != nil {
		return domain.Plan{}, err
	}
	return p.toDomain(plan), nil
}

func (p *planRepository) List(ctx context.Context, offset, limit int) ([]domain.Plan, error) {
	plans, err := p.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(plans, func(idx int, src dao.Plan) domain.Plan {
		return p.toDomain(src)
	}), nil
}

func (p *planRepository) Total(ctx context.Context) (int64, error) {
	return p.dao.Count(ctx)
}

func (p *planRepository) FindMembershipByUID(ctx context.Context, uid int64) (domain.Membership, error) {
	m, err := p.dao.FindMembershipByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, dao.ErrPlanNotFound) {
			// 没有订阅过,返回零值
			return domain.Membership{Uid: uid}, nil
		}
		return domain.Membership{}, err
	}
	records, err := p.dao.FindMembershipRecordsByUID(ctx, uid)
	if err != nil {
		return domain.Membership{}, err
	}
	return domain.Membership{
		Uid:     m.Uid,
		StartAt: m.StartAt,
		EndAt:   m.EndAt,
		Records: slice.Map(records, func(idx int, src dao.MembershipRecord) domain.MembershipRecord {
			return domain.MembershipRecord{
				Key:   src.Key,
				Days:  src.Days,
				Biz:   src.Biz,
				BizId: src.BizId,
				Desc:  src.Desc,
			}
		}),
	}, nil
}

func (p *planRepository) ActivateMembership(ctx context.Context, uid int64, r domain.MembershipRecord) error {
	return p.dao.UpsertMembership(ctx, uid, dao.MembershipRecord{
		Key:   r.Key,
		Days:  r.Days,
		Biz:   r.Biz,
		BizId: r.BizId,
		Desc:  r.Desc,
	})
}

func (p *planRepository) toDomain(src dao.Plan) domain.Plan {
	return domain.Plan{
		ID:     src.Id,
		SN:     src.SN,
		Name:   src.Name,
		Desc:   src.Desc,
		Days:   src.Days,
		Status: domain.Status(src.Status),
		Ctime:  src.Ctime,
		Utime:  src.Utime,
	}
}
