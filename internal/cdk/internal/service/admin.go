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
	"errors"
	"fmt"

	"github.com/ecodeclub/campus/internal/cdk/internal/domain"
	"github.com/ecodeclub/campus/internal/cdk/internal/repository"
	"github.com/ecodeclub/campus/internal/course"
	"github.com/ecodeclub/campus/internal/pkg/codegen"
	"github.com/ecodeclub/campus/internal/plan"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidQuantity = errors.New("生成数量非法")
	ErrUnknownCDKType  = errors.New("未知的兑换码类型")
	ErrTargetNotFound  = errors.New("兑换目标不存在")
	ErrCDKUsed         = repository.ErrCDKUsed
)

const (
	maxQuantityPerBatch = 1000
	// 撞上唯一索引之后重新生成整批的次数上限
	maxCreateRetries = 3
)

//go:generate mockgen -source=./admin.go -package=cdkmocks -destination=../../mocks/admin.mock.go -typed AdminService
type AdminService interface {
	// Generate 生成一批兑换码,返回批次号和各兑换码ID
	Generate(ctx context.Context, typ string, targetID int64, quantity int) (string, []int64, error)
	Detail(ctx context.Context, id int64) (domain.CDK, error)
	FindByCode(ctx context.Context, code string) (domain.CDK, error)
	// Disable 停用,只对ACTIVE状态生效
	Disable(ctx context.Context, id int64) error
	// Delete 软删除,已兑换的码不允许删
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q repository.ListQuery) (int64, []domain.CDK, error)
}

type adminService struct {
	repo      repository.CDKRepository
	courseSvc course.Service
	planSvc   plan.Service
	generator *codegen.Generator
}

func NewAdminService(repo repository.CDKRepository,
	courseSvc course.Service,
	planSvc plan.Service,
	generator *codegen.Generator) AdminService {
	return &adminService{
		repo:      repo,
		courseSvc: courseSvc,
		planSvc:   planSvc,
		generator: generator,
	}
}

func (a *adminService) Generate(ctx context.Context, typ string, targetID int64, quantity int) (string, []int64, error) {
	if quantity <= 0 || quantity > maxQuantityPerBatch {
		return "", nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if err := a.checkTarget(ctx, typ, targetID); err != nil {
		return "", nil, err
	}
	batchID := shortuuid.New()
	for i := 0; i < maxCreateRetries; i++ {
		cdks, err := a.newBatch(batchID, typ, targetID, quantity)
		if err != nil {
			return "", nil, err
		}
		ids, err := a.repo.CreateCDKs(ctx, cdks)
		if err == nil {
			return batchID, ids, nil
		}
		// 码撞了唯一索引就整批重新生成,其余错误直接失败
		if !errors.Is(err, repository.ErrDuplicatedCode) {
			return "", nil, err
		}
	}
	return "", nil, fmt.Errorf("生成兑换码批次失败: 重试%d次仍有重复", maxCreateRetries)
}

func (a *adminService) checkTarget(ctx context.Context, typ string, targetID int64) error {
	switch typ {
	case domain.TypeCourse:
		_, err := a.courseSvc.FindById(ctx, targetID)
		if errors.Is(err, course.ErrCourseNotFound) {
			return fmt.Errorf("%w: course %d", ErrTargetNotFound, targetID)
		}
		return err
	case domain.TypePlan:
		_, err := a.planSvc.FindById(ctx, targetID)
		if errors.Is(err, plan.ErrPlanNotFound) {
			return fmt.Errorf("%w: plan %d", ErrTargetNotFound, targetID)
		}
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCDKType, typ)
	}
}

func (a *adminService) newBatch(batchID, typ string, targetID int64, quantity int) ([]domain.CDK, error) {
	cdks := make([]domain.CDK, 0, quantity)
	for i := 0; i < quantity; i++ {
		code, err := a.generator.Generate()
		if err != nil {
			return nil, fmt.Errorf("生成兑换码失败: %w", err)
		}
		cdks = append(cdks, domain.CDK{
			Code:     code,
			Type:     typ,
			TargetID: targetID,
			BatchID:  batchID,
			Status:   domain.StatusActive,
		})
	}
	return cdks, nil
}

func (a *adminService) Detail(ctx context.Context, id int64) (domain.CDK, error) {
	return a.repo.FindById(ctx, id)
}

func (a *adminService) FindByCode(ctx context.Context, code string) (domain.CDK, error) {
	return a.repo.FindByCode(ctx, code)
}

func (a *adminService) Disable(ctx context.Context, id int64) error {
	return a.repo.SetActiveStatusDisabled(ctx, id)
}

func (a *adminService) Delete(ctx context.Context, id int64) error {
	return a.repo.Delete(ctx, id)
}

func (a *adminService) List(ctx context.Context, q repository.ListQuery) (int64, []domain.CDK, error) {
	var (
		eg    errgroup.Group
		total int64
		cdks  []domain.CDK
	)
	eg.Go(func() error {
		var err error
		total, err = a.repo.Total(ctx, q)
		return err
	})
	eg.Go(func() error {
		var err error
		cdks, err = a.repo.List(ctx, q)
		return err
	})
	if err := eg.Wait(); err != nil {
		return 0, nil, err
	}
	return total, cdks, nil
}
