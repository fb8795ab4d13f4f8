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
	"fmt"

	"github.com/ecodeclub/campus/internal/cdk/internal/domain"
	"github.com/ecodeclub/campus/internal/cdk/internal/repository"
	"github.com/ecodeclub/campus/internal/cdk/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cdk")
	g.POST("/gen", ginx.B[GenerateReq](h.Generate))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/code", ginx.B[CodeReq](h.FindByCode))
	g.POST("/disable", ginx.B[IDReq](h.Disable))
	g.POST("/delete", ginx.B[IDReq](h.Delete))
}

func (h *AdminHandler) Generate(ctx *ginx.Context, req GenerateReq) (ginx.Result, error) {
	batchID, ids, err := h.svc.Generate(ctx.Request.Context(), req.Type, req.TargetID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) ||
			errors.Is(err, service.ErrUnknownCDKType) ||
			errors.Is(err, service.ErrTargetNotFound) {
			return invalidInputErrResult, err
		}
		return systemErrorResult, fmt.Errorf("生成兑换码批次失败: %w", err)
	}
	return ginx.Result{
		Data: GenerateResp{
			BatchID: batchID,
			IDs:     ids,
		},
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	total, cdks, err := h.svc.List(ctx.Request.Context(), repository.ListQuery{
		Type:       req.Type,
		TargetID:   req.TargetID,
		Status:     domain.Status(req.Status),
		CodePrefix: req.CodePrefix,
		Offset:     req.Offset,
		Limit:      req.Limit,
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取兑换码列表失败: %w", err)
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			CDKs: slice.Map(cdks, func(idx int, src domain.CDK) CDK {
				return toCDKVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	cdk, err := h.svc.Detail(ctx.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrCDKNotFound) {
			return cdkNotFoundErrResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: toCDKVO(cdk)}, nil
}

func (h *AdminHandler) FindByCode(ctx *ginx.Context, req CodeReq) (ginx.Result, error) {
	cdk, err := h.svc.FindByCode(ctx.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, service.ErrCDKNotFound) {
			return cdkNotFoundErrResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: toCDKVO(cdk)}, nil
}

func (h *AdminHandler) Disable(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Disable(ctx.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrCDKNotFound) {
			return cdkNotFoundErrResult, err
		}
		if errors.Is(err, service.ErrCDKNotUsable) {
			return cdkNotUsableErrResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrCDKNotFound) {
			return cdkNotFoundErrResult, err
		}
		// 已兑换的码是用户的兑换凭证
		if errors.Is(err, service.ErrCDKUsed) {
			return cdkUsedErrResult, err
		}
		if errors.Is(err, service.ErrCDKNotUsable) {
			return cdkNotUsableErrResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
