package web

import (
	"github.com/ecodeclub/campus/internal/cdk/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	cdkNotFoundErrResult = ginx.Result{
		Code: errs.CDKNotFound.Code,
		Msg:  errs.CDKNotFound.Msg,
	}
	cdkNotUsableErrResult = ginx.Result{
		Code: errs.CDKNotUsable.Code,
		Msg:  errs.CDKNotUsable.Msg,
	}
	cdkUsedErrResult = ginx.Result{
		Code: errs.CDKUsed.Code,
		Msg:  errs.CDKUsed.Msg,
	}
	tooManyRequestsErrResult = ginx.Result{
		Code: errs.TooManyRequests.Code,
		Msg:  errs.TooManyRequests.Msg,
	}
	invalidInputErrResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)
