package global

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache_Claim(t *testing.T) {
	cache := NewMemoryCache(1)
	const paid = "wxpay:notify:1217752501201407033233368018"
	const other = "wxpay:notify:1217752501201407033233368019"

	assert.Equal(t, MarkClaimed, cache.Claim(paid, 60))
	assert.Equal(t, MarkPending, cache.Claim(paid, 60))
	assert.Equal(t, MarkClaimed, cache.Claim(other, 60))

	cache.Done(paid, 60)
	assert.Equal(t, MarkDone, cache.Claim(paid, 60))

	cache.Forget(other)
	assert.Equal(t, MarkClaimed, cache.Claim(other, 60))

	cache.ClearAll()
	assert.Equal(t, MarkClaimed, cache.Claim(paid, 60))
}

func TestMemoryCache_ClaimExpires(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for expiry")
	}
	cache := NewMemoryCache(0)

	assert.Equal(t, MarkClaimed, cache.Claim("k", 1))
	cache.Done("k", 1)
	assert.Equal(t, MarkDone, cache.Claim("k", 1))
	time.Sleep(2100 * time.Millisecond)
	assert.Equal(t, MarkClaimed, cache.Claim("k", 1))
}

func TestInitMemoryCacheInstance(t *testing.T) {
	cache := InitMemoryCacheInstance(1)
	assert.Same(t, cache, MemoryCacheInstance)
}
