package config

import (
	"gitee.com/zhuyunkj/wxpay-gateway/common/client/wxpay"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	Wechat    wxpay.Config //微信支付商户配置
	SnowFlake SnowFlake    `json:",optional"` //雪花算法参数
	Notify    Notify       `json:",optional"` //支付通知处理
	Inter     Inter        `json:",optional"` //内部接口访问控制
	Alarm     Alarm        `json:",optional"` //自定义告警
}

// 雪花算法参数, 共10位节点号: 高5位数据中心, 低5位工作ID
type SnowFlake struct {
	MachineNo int64 `json:",default=1"` //工作ID
	WorkerNo  int64 `json:",optional"`  //数据中心ID
}

func (s SnowFlake) Node() int64 {
	return s.WorkerNo<<5 | s.MachineNo
}

type Notify struct {
	ForwardUrl     string `json:",optional"`      //验签通过后转发给业务方的地址, 为空不转发
	ForwardTimeout int64  `json:",default=5000"`  //毫秒
	ReplayTtl      int    `json:",default=86400"` //同一transaction_id在该秒数内只转发一次
	CacheSize      int    `json:",default=32"`    //MB
}

type Inter struct {
	AllowCidrs     []string `json:",optional"` //为空时使用 172.30.0.0/16
	TrustedProxies []string `json:",optional"` //可信反向代理网段, 为空时不信任 X-Forwarded-For
}

type Alarm struct {
	DingDingUrl string `json:",optional"`
}
