package types

type HeaderReq struct {
	Xsign string `header:"X-Sign,optional"`
}

type ResultResp struct {
	RequestId string      `json:"requestId"`
	Status    int64       `json:"status"`
	Desc      string      `json:"desc"`
	Data      interface{} `json:"data"`
}

type PlaceAppOrderReq struct {
	OrderNo     string                 `json:"orderNo"`                  //商户订单号
	Fee         int64                  `json:"fee"`                      //金额, 单位: 分
	Description string                 `json:"description"`              //商品描述
	ClientIp    string                 `json:"clientIp,optional"`        //为空时取请求来源地址
	ExpireAfter int64                  `json:"expireAfter,default=3600"` //秒, 0 表示不设置
	Detail      string                 `json:"detail,optional"`          //商品详情
	Attach      string                 `json:"attach,optional"`          //透传参数
	Extra       map[string]interface{} `json:"extra,optional"`           //其他统一下单字段, 如 goods_tag
}

type PlaceJsOrderReq struct {
	OpenId      string                 `json:"openId"`
	OrderNo     string                 `json:"orderNo"`
	Fee         int64                  `json:"fee"`
	Description string                 `json:"description"`
	ClientIp    string                 `json:"clientIp,optional"`
	ExpireAfter int64                  `json:"expireAfter,default=3600"`
	Detail      string                 `json:"detail,optional"`
	Attach      string                 `json:"attach,optional"`
	Extra       map[string]interface{} `json:"extra,optional"`
}

type PlaceNativeOrderReq struct {
	ProductId   string                 `json:"productId"`
	OrderNo     string                 `json:"orderNo"`
	Fee         int64                  `json:"fee"`
	Description string                 `json:"description"`
	ClientIp    string                 `json:"clientIp,optional"`
	ExpireAfter int64                  `json:"expireAfter,default=3600"`
	Detail      string                 `json:"detail,optional"`
	Attach      string                 `json:"attach,optional"`
	Extra       map[string]interface{} `json:"extra,optional"`
	QrSize      int                    `json:"qrSize,default=256"` //二维码边长, 像素
}

type QueryOrderReq struct {
	OrderNo string `json:"orderNo,optional"`
	TransId string `json:"transId,optional"`
}

type RefundReq struct {
	OrderNo   string `json:"orderNo,optional"`
	TransId   string `json:"transId,optional"`
	Fee       int64  `json:"fee"`       //订单总金额, 单位: 分
	RefundFee int64  `json:"refundFee"` //退款金额, 单位: 分
}

type RefundQueryReq struct {
	RefundNo string `json:"refundNo,optional"`
	OrderNo  string `json:"orderNo,optional"`
	TransId  string `json:"transId,optional"`
}
