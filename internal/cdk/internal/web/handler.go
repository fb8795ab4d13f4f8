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

package web

import (
	"errors"
	"regexp"

	"github.com/ecodeclub/campus/internal/cdk/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// 兑换码固定16位大写字母加数字,不合法的直接挡在入口
var codePattern = regexp.MustCompile(`^[A-Z0-9]{16}$`)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cdk")
	g.POST("/redeem", ginx.BS[RedeemReq](h.Redeem))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Redeem(ctx *ginx.Context, req RedeemReq, sess session.Session) (ginx.Result, error) {
	if !codePattern.MatchString(req.Code) {
		return invalidInputErrResult, errors.New("兑换码格式非法")
	}
	cdk, err := h.svc.Redeem(ctx.Request.Context(), sess.Claims().Uid, req.Code)
	if err != nil {
		if errors.Is(err, service.ErrCDKNotFound) {
			return cdkNotFoundErrResult, err
		}
		if errors.Is(err, service.ErrCDKNotUsable) {
			return cdkNotUsableErrResult, err
		}
		if errors.Is(err, service.ErrLockNotAcquired) {
			return tooManyRequestsErrResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: RedeemResp{
			Type:     cdk.Type,
			TargetID: cdk.TargetID,
		},
	}, nil
}
