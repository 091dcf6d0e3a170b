package response

import (
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/types"
	"github.com/google/uuid"
)

type HealthResp struct {
	Time float64 `json:"time"`
	Sign string  `json:"sign"`
}

func MakeResult(status int, desc string, data interface{}) types.ResultResp {
	return types.ResultResp{
		RequestId: uuid.NewString(),
		Status:    int64(status),
		Desc:      desc,
		Data:      data,
	}
}
