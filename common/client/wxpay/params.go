package wxpay

import (
	"strconv"

	"gitee.com/zhuyunkj/wxpay-gateway/common/utils"
)

// Params 微信支付接口的扁平参数表
type Params map[string]string

// Set 空值不写入, 缺省与空串在签名时等价
func (p Params) Set(key, value string) Params {
	if value != "" {
		p[key] = value
	}
	return p
}

func (p Params) SetInt(key string, value int64) Params {
	p[key] = strconv.FormatInt(value, 10)
	return p
}

// SetAny 按字符串形式写入任意值
func (p Params) SetAny(key string, value interface{}) Params {
	return p.Set(key, utils.ToString(value))
}

func (p Params) Get(key string) string {
	return p[key]
}

// Has 字段存在且非空
func (p Params) Has(key string) bool {
	return p[key] != ""
}

// Int64 字段存在时解析为整数, 否则返回nil
func (p Params) Int64(key string) *int64 {
	v, ok := p[key]
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// Optional 字段缺失时返回nil
func (p Params) Optional(key string) *string {
	v, ok := p[key]
	if !ok {
		return nil
	}
	return &v
}

func (p Params) Clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}
