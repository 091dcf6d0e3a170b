package global

import (
	"github.com/coocood/freecache"
	"github.com/zeromicro/go-zero/core/logx"
)

// freecache 要求最小 512KB
const minCacheSize = 512 * 1024

var MemoryCacheInstance *MemoryCache

type MemoryCache struct {
	FreeCache *freecache.Cache
}

// InitMemoryCacheInstance size 单位 MB
func InitMemoryCacheInstance(size int) *MemoryCache {
	MemoryCacheInstance = NewMemoryCache(size)
	return MemoryCacheInstance
}

func NewMemoryCache(size int) *MemoryCache {
	bytes := size * 1024 * 1024
	if bytes < minCacheSize {
		bytes = minCacheSize
	}
	return &MemoryCache{FreeCache: freecache.NewCache(bytes)}
}

type MarkState int

const (
	MarkClaimed MarkState = iota // 首次出现, 由调用方处理
	MarkPending                  // 已有调用方在处理, 结果未知
	MarkDone                     // 已处理完成
)

const (
	markPending byte = 1
	markDone    byte = 2
)

// Claim key 首次出现返回 MarkClaimed 并记为处理中, 之后由 Done 或 Forget 结束
// expire 秒后标记失效, expire<=0 表示不过期
func (instance *MemoryCache) Claim(key string, expire int) MarkState {
	prev, err := instance.FreeCache.GetOrSet([]byte(key), []byte{markPending}, normalizeExpire(expire))
	if err != nil {
		// 写入失败(如key过大)时不做去重
		logx.Errorf("内存缓存设置失败 key:%s err:%v", key, err)
		return MarkClaimed
	}
	switch {
	case prev == nil:
		return MarkClaimed
	case len(prev) == 1 && prev[0] == markDone:
		return MarkDone
	default:
		return MarkPending
	}
}

// Done 记为已处理, expire 秒内再次 Claim 返回 MarkDone
func (instance *MemoryCache) Done(key string, expire int) {
	if err := instance.FreeCache.Set([]byte(key), []byte{markDone}, normalizeExpire(expire)); err != nil {
		logx.Errorf("内存缓存设置失败 key:%s err:%v", key, err)
	}
}

// Forget 撤销 Claim 的标记
func (instance *MemoryCache) Forget(key string) {
	instance.FreeCache.Del([]byte(key))
}

func normalizeExpire(expire int) int {
	if expire < 0 {
		return 0
	}
	return expire
}

// 清除全部本地缓存
func (instance *MemoryCache) ClearAll() {
	instance.FreeCache.Clear()
	logx.Info("清除内存缓存成功")
}
