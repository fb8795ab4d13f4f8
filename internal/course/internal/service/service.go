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

	"github.com/ecodeclub/campus/internal/course/internal/domain"
	"github.com/ecodeclub/campus/internal/course/internal/repository"
	"golang.org/x/sync/errgroup"
)

var ErrCourseNotFound = repository.ErrCourseNotFound

//go:generate mockgen -source=./service.go -package=coursemocks -destination=../../mocks/course.mock.go -typed Service
type Service interface {
	Save(ctx context.Context, c domain.Course) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Course, error)
	List(ctx context.Context, offset, limit int) ([]domain.Course, int64, error)
	// Grant 给用户开通课程访问权。实现是"确保有权限"而非"追加权限",
	// 同一(uid, courseID)重复调用结果不变
	Grant(ctx context.Context, uid, courseID int64, key string) error
	HasAccess(ctx context.Context, uid, courseID int64) (bool, error)
}

type service struct {
	repo repository.CourseRepository
}

func NewService(repo repository.CourseRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, c domain.Course) (int64, error) {
	return s.repo.Save(ctx, c)
}

func (s *service) FindById(ctx context.Context, id int64) (domain.Course, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Course, int64, error) {
	var (
		eg      errgroup.Group
		courses []domain.Course
		total   int64
	)
	eg.Go(func() error {
		var err error
		courses, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return courses, total, eg.Wait()
}

func (s *service) Grant(ctx context.Context, uid, courseID int64, key string) error {
	// 先校验课程存在,避免脏事件开通不存在的课程
	if _, err := s.repo.FindById(ctx, courseID); err != nil {
		return err
	}
	return s.repo.GrantMember(ctx, domain.CourseMember{
		Uid:      uid,
		CourseID: courseID,
		Key:      key,
	})
}

func (s *service) HasAccess(ctx context.Context, uid, courseID int64) (bool, error) {
	return s.repo.HasMember(ctx, uid, courseID)
}
