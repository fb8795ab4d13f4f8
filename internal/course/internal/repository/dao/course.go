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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCourseNotFound = gorm.ErrRecordNotFound

type CourseDAO interface {
	Save(ctx context.Context, c Course) (int64, error)
	FindById(ctx context.Context, id int64) (Course, error)
	List(ctx context.Context, offset, limit int) ([]Course, error)
	Count(ctx context.Context) (int64, error)

	GrantMember(ctx context.Context, cm CourseMember) error
	FindMember(ctx context.Context, uid, courseId int64) (CourseMember, error)
}

type gormCourseDAO struct {
	db *egorm.Component
}

func NewGORMCourseDAO(db *egorm.Component) CourseDAO {
	return &gormCourseDAO{db: db}
}

func (g *gormCourseDAO) Save(ctx context.Context, c Course) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	c.Ctime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "status", "utime",
		}),
	}).Create(&c).Error
	return c.Id, err
}

func (g *gormCourseDAO) FindById(ctx context.Context, id int64) (Course, error) {
	var c Course
	err := g.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (g *gormCourseDAO) List(ctx context.Context, offset, limit int) ([]Course, error) {
	var res []Course
	err := g.db.WithContext(ctx).Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *gormCourseDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Course{}).Count(&count).Error
	return count, err
}

// GrantMember 幂等开通:同一(uid, course_id)重复插入视为成功
func (g *gormCourseDAO) GrantMember(ctx context.Context, cm CourseMember) error {
	cm.Ctime = time.Now().UnixMilli()
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}, {Name: "course_id"}},
		DoNothing: true,
	}).Create(&cm).Error
}

func (g *gormCourseDAO) FindMember(ctx context.Context, uid, courseId int64) (CourseMember, error) {
	var cm CourseMember
	err := g.db.WithContext(ctx).First(&cm, "uid = ? AND course_id = ?", uid, courseId).Error
	return cm, err
}

type Course struct {
	Id     int64  `gorm:"primaryKey;autoIncrement;comment:课程自增ID"`
	SN     string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_course_sn;comment:课程序列号"`
	Name   string `gorm:"type:varchar(255);not null;comment:课程名"`
	Desc   string `gorm:"column:description;type:varchar(2048);not null;comment:课程描述"`
	Status uint8  `gorm:"type:tinyint unsigned;not null;default:2;comment:状态 1=下架 2=上架"`
	Ctime  int64
	Utime  int64
}

type CourseMember struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:课程成员自增ID"`
	Uid      int64  `gorm:"not null;uniqueIndex:uniq_uid_course_id;comment:用户ID"`
	CourseId int64  `gorm:"not null;uniqueIndex:uniq_uid_course_id;comment:课程ID"`
	Key      string `gorm:"type:varchar(255);not null;index:idx_key;comment:开通来源的幂等键"`
	Ctime    int64
}
