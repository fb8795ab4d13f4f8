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

	"github.com/ecodeclub/campus/internal/course/internal/domain"
	"github.com/ecodeclub/campus/internal/course/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrCourseNotFound = dao.ErrCourseNotFound

type CourseRepository interface {
	Save(ctx context.Context, c domain.Course) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Course, error)
	List(ctx context.Context, offset, limit int) ([]domain.Course, error)
	Total(ctx context.Context) (int64, error)
	GrantMember(ctx context.Context, cm domain.CourseMember) error
	HasMember(ctx context.Context, uid, courseID int64) (bool, error)
}

type courseRepository struct {
	dao dao.CourseDAO
}

func NewCourseRepository(d dao.CourseDAO) CourseRepository {
	return &courseRepository{dao: d}
}

func (c *courseRepository) Save(ctx context.Context, course domain.Course) (int64, error) {
	return c.dao.Save(ctx, c.toEntity(course))
}

func (c *courseRepository) FindById(ctx context.Context, id int64) (domain.Course, error) {
	course, err := c.dao.FindById(ctx, id)
	if err != nil {
		return domain.Course{}, err
	}
	return c.toDomain(course), nil
}

func (c *courseRepository) List(ctx context.Context, offset, limit int) ([]domain.Course, error) {
	courses, err := c.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(courses, func(idx int, src dao.Course) domain.Course {
		return c.toDomain(src)
	}), nil
}

func (c *courseRepository) Total(ctx context.Context) (int64, error) {
	return c.dao.Count(ctx)
}

func (c *courseRepository) GrantMember(ctx context.Context, cm domain.CourseMember) error {
	return c.dao.GrantMember(ctx, dao.CourseMember{
		Uid:      cm.Uid,
		CourseId: cm.CourseID,
		Key:      cm.Key,
	})
}

func (c *courseRepository) HasMember(ctx context.Context, uid, courseID int64) (bool, error) {
	_, err := c.dao.FindMember(ctx, uid, courseID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, dao.ErrCourseNotFound) {
		return false, nil
	}
	return false, err
}

func (c *courseRepository) toDomain(src dao.Course) domain.Course {
	return domain.Course{
		ID:     src.Id,
		SN:     src.SN,
		Name:   src.Name,
		Desc:   src.Desc,
		Status: domain.Status(src.Status),
		Ctime:  src.Ctime,
		Utime:  src.Utime,
	}
}

func (c *courseRepository) toEntity(src domain.Course) dao.Course {
	return dao.Course{
		Id:     src.ID,
		SN:     src.SN,
		Name:   src.Name,
		Desc:   src.Desc,
		Status: src.Status.ToUint8(),
	}
}
