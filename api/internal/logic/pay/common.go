package pay

import (
	"fmt"

	"gitee.com/zhuyunkj/wxpay-gateway/common/client/wxpay"
)

func orderOptions(expireAfter int64, detail, attach string, extra map[string]interface{}) []wxpay.OrderOption {
	return []wxpay.OrderOption{
		wxpay.WithExpireAfter(expireAfter),
		wxpay.WithDetail(detail),
		wxpay.WithAttach(attach),
		wxpay.WithExtra(extra),
	}
}

// failDesc 与 BusinessError 相同的 "message(code)" 形式
func failDesc(code, message string) string {
	return fmt.Sprintf("%s(%s)", message, code)
}
