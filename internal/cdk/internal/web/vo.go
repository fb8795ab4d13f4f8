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

import "github.com/ecodeclub/campus/internal/cdk/internal/domain"

type RedeemReq struct {
	Code string `json:"code"`
}

type RedeemResp struct {
	// Type course/plan
	Type     string `json:"type"`
	TargetID int64  `json:"targetId"`
}

type GenerateReq struct {
	Type     string `json:"type"`
	TargetID int64  `json:"targetId"`
	Quantity int    `json:"quantity"`
}

type GenerateResp struct {
	BatchID string  `json:"batchId"`
	IDs     []int64 `json:"ids"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type CodeReq struct {
	Code string `json:"code"`
}

type ListReq struct {
	Type       string `json:"type,omitempty"`
	TargetID   int64  `json:"targetId,omitempty"`
	Status     uint8  `json:"status,omitempty"`
	CodePrefix string `json:"codePrefix,omitempty"`
	Offset     int    `json:"offset,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

type ListResp struct {
	Total int64 `json:"total,omitempty"`
	CDKs  []CDK `json:"cdks,omitempty"`
}

type CDK struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Type     string `json:"type"`
	TargetID int64  `json:"targetId"`
	BatchID  string `json:"batchId"`
	Status   uint8  `json:"status"`
	// RedeemerID和RedeemTime只在已兑换时有值
	RedeemerID int64 `json:"redeemerId,omitempty"`
	RedeemTime int64 `json:"redeemTime,omitempty"`
	Utime      int64 `json:"utime"`
}

func toCDKVO(src domain.CDK) CDK {
	return CDK{
		ID:         src.ID,
		Code:       src.Code,
		Type:       src.Type,
		TargetID:   src.TargetID,
		BatchID:    src.BatchID,
		Status:     src.Status.ToUint8(),
		RedeemerID: src.RedeemerID,
		RedeemTime: src.RedeemTime,
		Utime:      src.Utime,
	}
}
