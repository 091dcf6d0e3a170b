package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ToString 转为接口参数使用的字符串, 浮点数不使用科学计数法
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch result := v.(type) {
	case string:
		return result
	case []byte:
		return string(result)
	case json.Number:
		return result.String()
	case float64:
		return strconv.FormatFloat(result, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(result), 'f', -1, 32)
	default:
		return fmt.Sprint(result)
	}
}
