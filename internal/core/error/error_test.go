package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestAppErrorWrapping(t *testing.T) {
	base := errors.New("boom")
	err := fmt.Errorf("load session: %w", New(base, http.StatusBadGateway, RedisErrorMessage))

	assert.ErrorIs(t, err, base)
	assert.Equal(t, http.StatusBadGateway, StatusOf(err))
	assert.Equal(t, RedisErrorMessage, MessageOf(err))
	assert.Equal(t, "redis operation failed: boom", New(base, 0, RedisErrorMessage).Error())
}

func TestStatusOfPlainError(t *testing.T) {
	err := errors.New("plain")
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
	assert.Equal(t, SystemErrorMessage, MessageOf(err))
}

func TestWrapRedis(t *testing.T) {
	assert.NoError(t, WrapRedis(nil))
	assert.Equal(t, http.StatusNotFound, StatusOf(WrapRedis(redis.Nil)))
	assert.Equal(t, http.StatusBadGateway, StatusOf(WrapRedis(errors.New("conn refused"))))
}

func TestWrapUpstream(t *testing.T) {
	limited := WrapUpstream("agmarknet", http.StatusTooManyRequests, nil)
	assert.True(t, IsRateLimited(limited))
	assert.Contains(t, limited.Error(), "agmarknet answered 429")

	broken := WrapUpstream("openweather", http.StatusInternalServerError, nil)
	assert.False(t, IsRateLimited(broken))
	assert.Equal(t, http.StatusBadGateway, StatusOf(broken))
}
