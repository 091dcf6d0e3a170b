package wxpay

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

const letterSet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	rndMu sync.Mutex
	rnd   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func int63() int64 {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int63()
}

func intn(n int) int {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Intn(n)
}

/*
*	RandomString 获取随机字符串
*	param	n	位数
*	reply	随机字符串
 */
func RandomString(n int) string {
	var letterIdxBits uint = 6
	var mask int64 = 1<<letterIdxBits - 1

	res := make([]byte, 0, n)
	for i, bits := 0, int63(); i < n; i++ {
		if bits == 0 {
			bits = int63()
		}
		idx := int(bits & mask)
		if idx < len(letterSet) {
			res = append(res, letterSet[idx])
		} else {
			i--
		}
		bits >>= letterIdxBits
	}
	return string(res)
}

// RefundNoGenerator 商户退款单号
//
//	14 位  当前日期时间 yyyyMMddHHmmss
//	19 位  雪花id, 同节点内单调递增
//	5  位  [1, 99999] 随机数, 不足5位左补0
type RefundNoGenerator struct {
	node *snowflake.Node
}

// NewRefundNoGenerator nodeNo 取值 [0, 1023], 多实例部署时需各不相同
func NewRefundNoGenerator(nodeNo int64) (*RefundNoGenerator, error) {
	node, err := snowflake.NewNode(nodeNo)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", nodeNo, err)
	}
	return &RefundNoGenerator{node: node}, nil
}

func (g *RefundNoGenerator) Next(now time.Time) string {
	return formatTime(now) + g.node.Generate().String() + fmt.Sprintf("%05d", intn(99999)+1)
}
