package errs

var (
	SystemError = ErrorCode{Code: 512001, Msg: "系统错误"}
	// CDKNotFound 兑换码或ID不存在
	CDKNotFound = ErrorCode{Code: 512002, Msg: "兑换码不存在"}
	// CDKNotUsable 兑换码存在但不处于可兑换状态,已使用和已停用都算
	CDKNotUsable = ErrorCode{Code: 512003, Msg: "兑换码不可用"}
	// CDKUsed 删除已使用的兑换码
	CDKUsed = ErrorCode{Code: 512004, Msg: "兑换码已被使用"}
	// TooManyRequests 没抢到锁,瞬时错误,可以重试
	TooManyRequests = ErrorCode{Code: 512005, Msg: "操作过于频繁,请稍后重试"}
	// InvalidInput 类别/商品/数量校验失败
	InvalidInput = ErrorCode{Code: 512006, Msg: "参数非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
