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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/campus/internal/cdk/internal/domain"
	"github.com/ecodeclub/campus/internal/cdk/internal/errs"
	"github.com/ecodeclub/campus/internal/cdk/internal/event"
	"github.com/ecodeclub/campus/internal/cdk/internal/event/producer"
	"github.com/ecodeclub/campus/internal/cdk/internal/repository"
	"github.com/ecodeclub/campus/internal/cdk/internal/repository/cache"
	"github.com/ecodeclub/campus/internal/cdk/internal/repository/dao"
	"github.com/ecodeclub/campus/internal/cdk/internal/service"
	"github.com/ecodeclub/campus/internal/cdk/internal/web"
	"github.com/ecodeclub/campus/internal/course"
	coursemocks "github.com/ecodeclub/campus/internal/course/mocks"
	"github.com/ecodeclub/campus/internal/pkg/codegen"
	"github.com/ecodeclub/campus/internal/pkg/rlock"
	"github.com/ecodeclub/campus/internal/plan"
	planmocks "github.com/ecodeclub/campus/internal/plan/mocks"
	"github.com/ecodeclub/campus/internal/test"
	testioc "github.com/ecodeclub/campus/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testID = 227001

var codePattern = regexp.MustCompile(`^[A-Z0-9]{16}$`)

func TestCDKModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db       *egorm.Component
	q        mq.MQ
	dao      dao.CDKDAO
	repo     repository.CDKRepository
	producer producer.CDKRedeemedProducer
	lock     *rlock.Client
	svc      service.Service
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.NoError(dao.InitTables(s.db))
	s.dao = dao.NewGORMCDKDAO(s.db)
	s.repo = repository.NewCDKRepository(s.dao, cache.NewCDKCache(testioc.InitCache()))
	s.q = testioc.InitMQ()
	p, err := producer.NewCDKRedeemedProducer(s.q)
	s.NoError(err)
	s.producer = p
	s.lock = rlock.NewClient(testioc.InitRedisClient())
	s.svc = service.NewService(s.repo, s.lock, s.producer)
}

func (s *ModuleTestSuite) TearDownSuite() {
	for _, table := range []string{"cdks", "batch_logs", "redeem_logs"} {
		err := s.db.Exec(fmt.Sprintf("DROP TABLE `%s`", table)).Error
		s.NoError(err)
	}
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range []string{"cdks", "batch_logs", "redeem_logs"} {
		err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error
		s.NoError(err)
	}
}

func (s *ModuleTestSuite) newGinServer(handler *web.Handler) *egin.Component {
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testID,
		}))
	})
	handler.PrivateRoutes(server.Engine)
	return server
}

func (s *ModuleTestSuite) newAdminGinServer(handler *web.AdminHandler) *egin.Component {
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	handler.PrivateRoutes(server.Engine)
	return server
}

func (s *ModuleTestSuite) newAdminService(ctrl *gomock.Controller,
	courseSetup func(svc *coursemocks.MockService),
	planSetup func(svc *planmocks.MockService)) service.AdminService {
	courseSvc := coursemocks.NewMockService(ctrl)
	if courseSetup != nil {
		courseSetup(courseSvc)
	}
	planSvc := planmocks.NewMockService(ctrl)
	if planSetup != nil {
		planSetup(planSvc)
	}
	return service.NewAdminService(s.repo, courseSvc, planSvc, codegen.NewGenerator())
}

// createCDK 直接落库一条兑换码
func (s *ModuleTestSuite) createCDK(code string, status domain.Status) int64 {
	ids, err := s.repo.CreateCDKs(context.Background(), []domain.CDK{
		{
			Code:     code,
			Type:     domain.TypeCourse,
			TargetID: 1001,
			BatchID:  "batch-" + code,
			Status:   domain.StatusActive,
		},
	})
	s.NoError(err)
	if status != domain.StatusActive {
		err = s.db.Exec("UPDATE `cdks` SET `status` = ? WHERE `id` = ?", status.ToUint8(), ids[0]).Error
		s.NoError(err)
	}
	return ids[0]
}

func (s *ModuleTestSuite) TestAdminHandler_Generate() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminSvc := s.newAdminService(ctrl, func(svc *coursemocks.MockService) {
		svc.EXPECT().FindById(gomock.Any(), int64(1001)).
			Return(course.Course{ID: 1001, Name: "Go实战"}, nil).AnyTimes()
		svc.EXPECT().FindById(gomock.Any(), int64(9999)).
			Return(course.Course{}, course.ErrCourseNotFound).AnyTimes()
	}, func(svc *planmocks.MockService) {
		svc.EXPECT().FindById(gomock.Any(), int64(2001)).
			Return(plan.Plan{ID: 2001, Days: 365}, nil).AnyTimes()
	})
	server := s.newAdminGinServer(web.NewAdminHandler(adminSvc))

	testCases := []struct {
		name     string
		req      web.GenerateReq
		wantCode int
		after    func(t *testing.T, data web.GenerateResp)
	}{
		{
			name: "生成课程兑换码批次成功",
			req: web.GenerateReq{
				Type:     "course",
				TargetID: 1001,
				Quantity: 20,
			},
			after: func(t *testing.T, data web.GenerateResp) {
				t.Helper()
				assert.NotEmpty(t, data.BatchID)
				assert.Len(t, data.IDs, 20)

				var entities []dao.CDK
				err := s.db.Where("batch_id = ?", data.BatchID).Find(&entities).Error
				require.NoError(t, err)
				require.Len(t, entities, 20)
				seen := make(map[string]struct{}, len(entities))
				for _, e := range entities {
					assert.True(t, codePattern.MatchString(e.Code))
					assert.Equal(t, domain.StatusActive.ToUint8(), e.Status)
					assert.Equal(t, "course", e.Type)
					assert.Equal(t, int64(1001), e.TargetId)
					seen[e.Code] = struct{}{}
				}
				// 同批次兑换码互不相同
				assert.Len(t, seen, 20)

				var batch dao.BatchLog
				err = s.db.Where("batch_id = ?", data.BatchID).First(&batch).Error
				require.NoError(t, err)
				assert.Equal(t, int64(20), batch.CodeCount)
			},
		},
		{
			name: "生成套餐兑换码批次成功",
			req: web.GenerateReq{
				Type:     "plan",
				TargetID: 2001,
				Quantity: 1,
			},
			after: func(t *testing.T, data web.GenerateResp) {
				t.Helper()
				assert.Len(t, data.IDs, 1)
			},
		},
		{
			name:     "数量为0非法",
			req:      web.GenerateReq{Type: "course", TargetID: 1001, Quantity: 0},
			wantCode: errs.InvalidInput.Code,
		},
		{
			name:     "数量超过单批上限非法",
			req:      web.GenerateReq{Type: "course", TargetID: 1001, Quantity: 1001},
			wantCode: errs.InvalidInput.Code,
		},
		{
			name:     "未知类型非法",
			req:      web.GenerateReq{Type: "vip", TargetID: 1001, Quantity: 1},
			wantCode: errs.InvalidInput.Code,
		},
		{
			name:     "目标课程不存在",
			req:      web.GenerateReq{Type: "course", TargetID: 9999, Quantity: 1},
			wantCode: errs.InvalidInput.Code,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/cdk/gen", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.GenerateResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			result := recorder.MustScan()
			assert.Equal(t, tc.wantCode, result.Code)
			if tc.after != nil {
				tc.after(t, result.Data)
			}
		})
	}
}

func (s *ModuleTestSuite) TestHandler_Redeem() {
	t := s.T()
	server := s.newGinServer(web.NewHandler(s.svc))

	code := "AAAABBBBCCCC1111"
	id := s.createCDK(code, domain.StatusActive)

	consumer, err := s.q.Consumer(event.CDKRedeemedEventName, "test_group")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/cdk/redeem", iox.NewJSONReader(web.RedeemReq{Code: code}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.RedeemResp]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	result := recorder.MustScan()
	assert.Equal(t, 0, result.Code)
	assert.Equal(t, "course", result.Data.Type)
	assert.Equal(t, int64(1001), result.Data.TargetID)

	var entity dao.CDK
	err = s.db.Where("id = ?", id).First(&entity).Error
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUsed.ToUint8(), entity.Status)
	assert.Equal(t, int64(testID), entity.RedeemerId)
	assert.NotZero(t, entity.RedeemTime)

	// 恰好一条履约事件
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	var evt event.CDKRedeemedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, event.CDKRedeemedEvent{
		Key:        fmt.Sprintf("cdk-%d-%s", testID, code),
		Uid:        testID,
		Code:       code,
		Type:       "course",
		TargetID:   1001,
		RedeemTime: entity.RedeemTime,
	}, evt)

	// 再次兑换同一个码,失败且不再发事件
	req, err = http.NewRequest(http.MethodPost,
		"/cdk/redeem", iox.NewJSONReader(web.RedeemReq{Code: code}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.RedeemResp]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, errs.CDKNotUsable.Code, recorder.MustScan().Code)

	ctx2, cancel2 := context.WithTimeout(context.Background(), 600*time.Millisecond)
	defer cancel2()
	_, err = consumer.Consume(ctx2)
	assert.Error(t, err)
}

func (s *ModuleTestSuite) TestHandler_RedeemFailures() {
	t := s.T()
	server := s.newGinServer(web.NewHandler(s.svc))

	s.createCDK("DDDDEEEEFFFF2222", domain.StatusDisabled)

	testCases := []struct {
		name     string
		code     string
		wantCode int
	}{
		{
			name:     "格式非法_长度不足",
			code:     "ABC123",
			wantCode: errs.InvalidInput.Code,
		},
		{
			name:     "格式非法_小写字母",
			code:     "aaaabbbbcccc1111",
			wantCode: errs.InvalidInput.Code,
		},
		{
			name:     "兑换码不存在",
			code:     "GGGGHHHHIIII3333",
			wantCode: errs.CDKNotFound.Code,
		},
		{
			name:     "兑换码已停用",
			code:     "DDDDEEEEFFFF2222",
			wantCode: errs.CDKNotUsable.Code,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/cdk/redeem", iox.NewJSONReader(web.RedeemReq{Code: tc.code}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.RedeemResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)
		})
	}
}

func (s *ModuleTestSuite) TestService_RedeemConcurrent() {
	t := s.T()

	code := "JJJJKKKKLLLL4444"
	id := s.createCDK(code, domain.StatusActive)

	const concurrency = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		failed  []error
	)
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		uid := int64(testID + i)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_, err := s.svc.Redeem(ctx, uid, code)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				success++
			} else {
				failed = append(failed, err)
			}
		}()
	}
	wg.Wait()

	// 恰好一个赢家
	assert.Equal(t, 1, success)
	assert.Len(t, failed, concurrency-1)
	for _, err := range failed {
		assert.True(t, errors.Is(err, service.ErrCDKNotUsable) ||
			errors.Is(err, service.ErrLockNotAcquired), err.Error())
	}

	var entity dao.CDK
	err := s.db.Where("id = ?", id).First(&entity).Error
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUsed.ToUint8(), entity.Status)

	var logCount int64
	err = s.db.Model(&dao.RedeemLog{}).Where("code = ?", code).Count(&logCount).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), logCount)
}

func (s *ModuleTestSuite) TestAdminHandler_DisableAndDelete() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminSvc := s.newAdminService(ctrl, nil, nil)
	server := s.newAdminGinServer(web.NewAdminHandler(adminSvc))
	userServer := s.newGinServer(web.NewHandler(s.svc))

	activeID := s.createCDK("MMMMNNNNOOOO5555", domain.StatusActive)
	usedID := s.createCDK("PPPPQQQQRRRR6666", domain.StatusUsed)

	// 停用ACTIVE的码
	req, err := http.NewRequest(http.MethodPost,
		"/cdk/disable", iox.NewJSONReader(web.IDReq{ID: activeID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 0, recorder.MustScan().Code)

	// 停用之后不能兑换
	req, err = http.NewRequest(http.MethodPost,
		"/cdk/redeem", iox.NewJSONReader(web.RedeemReq{Code: "MMMMNNNNOOOO5555"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	redeemRecorder := test.NewJSONResponseRecorder[web.RedeemResp]()
	userServer.ServeHTTP(redeemRecorder, req)
	require.Equal(t, 200, redeemRecorder.Code)
	assert.Equal(t, errs.CDKNotUsable.Code, redeemRecorder.MustScan().Code)

	// 已兑换的码不允许删除
	req, err = http.NewRequest(http.MethodPost,
		"/cdk/delete", iox.NewJSONReader(web.IDReq{ID: usedID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, errs.CDKUsed.Code, recorder.MustScan().Code)

	var entity dao.CDK
	err = s.db.Where("id = ?", usedID).First(&entity).Error
	require.NoError(t, err)
	assert.Equal(t, uint8(0), entity.Deleted)

	// 已停用的码可以删除,删除后查询不到
	req, err = http.NewRequest(http.MethodPost,
		"/cdk/delete", iox.NewJSONReader(web.IDReq{ID: activeID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 0, recorder.MustScan().Code)

	req, err = http.NewRequest(http.MethodPost,
		"/cdk/detail", iox.NewJSONReader(web.IDReq{ID: activeID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	detailRecorder := test.NewJSONResponseRecorder[web.CDK]()
	server.ServeHTTP(detailRecorder, req)
	require.Equal(t, 200, detailRecorder.Code)
	assert.Equal(t, errs.CDKNotFound.Code, detailRecorder.MustScan().Code)

	// 数据还在,只是标记删除
	err = s.db.Where("id = ?", activeID).First(&entity).Error
	require.NoError(t, err)
	assert.Equal(t, uint8(1), entity.Deleted)
}

func (s *ModuleTestSuite) TestAdminHandler_List() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminSvc := s.newAdminService(ctrl, nil, nil)
	server := s.newAdminGinServer(web.NewAdminHandler(adminSvc))

	_, err := s.repo.CreateCDKs(context.Background(), []domain.CDK{
		{Code: "LIST000000000001", Type: "course", TargetID: 1001, BatchID: "batch-list-1", Status: domain.StatusActive},
		{Code: "LIST000000000002", Type: "course", TargetID: 1001, BatchID: "batch-list-1", Status: domain.StatusActive},
		{Code: "LIST000000000003", Type: "plan", TargetID: 2001, BatchID: "batch-list-2", Status: domain.StatusActive},
	})
	require.NoError(t, err)
	_, err = s.svc.Redeem(context.Background(), testID, "LIST000000000002")
	require.NoError(t, err)

	testCases := []struct {
		name      string
		req       web.ListReq
		wantTotal int64
		check     func(t *testing.T, data web.ListResp)
	}{
		{
			name:      "按类型过滤",
			req:       web.ListReq{Type: "plan", Limit: 10},
			wantTotal: 1,
			check: func(t *testing.T, data web.ListResp) {
				assert.Equal(t, "LIST000000000003", data.CDKs[0].Code)
			},
		},
		{
			name:      "按状态过滤_已兑换的带兑换人信息",
			req:       web.ListReq{Status: domain.StatusUsed.ToUint8(), Limit: 10},
			wantTotal: 1,
			check: func(t *testing.T, data web.ListResp) {
				got := data.CDKs[0]
				assert.Equal(t, "LIST000000000002", got.Code)
				assert.Equal(t, int64(testID), got.RedeemerID)
				assert.NotZero(t, got.RedeemTime)
			},
		},
		{
			name:      "按前缀过滤加分页",
			req:       web.ListReq{CodePrefix: "LIST", Offset: 1, Limit: 2},
			wantTotal: 3,
			check: func(t *testing.T, data web.ListResp) {
				assert.Len(t, data.CDKs, 2)
			},
		},
		{
			name:      "按目标过滤",
			req:       web.ListReq{Type: "course", TargetID: 1001, Limit: 10},
			wantTotal: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/cdk/list", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.ListResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			result := recorder.MustScan()
			assert.Equal(t, 0, result.Code)
			assert.Equal(t, tc.wantTotal, result.Data.Total)
			if tc.check != nil {
				tc.check(t, result.Data)
			}
		})
	}
}
