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

	"github.com/ecodeclub/campus/internal/plan/internal/domain"
	"github.com/ecodeclub/campus/internal/plan/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrPlanNotFound               = repository.ErrPlanNotFound
	ErrUpdateMembershipFailed     = repository.ErrUpdateMembershipFailed
	ErrDuplicatedMembershipRecord = repository.ErrDuplicatedMembershipRecord
)

//go:generate mockgen -source=./service.go -package=planmocks -destination=../../mocks/plan.mock.go -typed Service
type Service interface {
	Save(ctx context.Context, p domain.Plan) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Plan, error)
	List(ctx context.Context, offset, limit int) ([]domain.Plan, int64, error)
	GetMembership(ctx context.Context, uid int64) (domain.Membership, error)
	// Activate 开通或续期订阅。r.Key是幂等键,
	// 重复投递返回ErrDuplicatedMembershipRecord且不产生副作用
	Activate(ctx context.Context, uid int64, r domain.MembershipRecord) error
}

type service struct {
	repo repository.PlanRepository
}

func NewService(repo repository.PlanRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, p domain.Plan) (int64, error) {
	return s.repo.Save(ctx, p)
}

func (s *service) FindById(ctx context.Context, id int64) (domain.Plan, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Plan, int64, error) {
	var (
		eg    errgroup.Group
		plans []domain.Plan
		total int64
	)
	eg.Go(func() error {
		var err error
		plans, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return plans, total, eg.Wait()
}

func (s *service) GetMembership(ctx context.Context, uid int64) (domain.Membership, error) {
	return s.repo.FindMembershipByUID(ctx, uid)
}

func (s *service) Activate(ctx context.Context, uid int64, r domain.MembershipRecord) error {
	return s.repo.ActivateMembership(ctx, uid, r)
}
