package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialRejectsBadURL(t *testing.T) {
	_, err := Dial("not-a-redis-url", "")
	assert.Error(t, err)
}

func TestDialPrefixesKeys(t *testing.T) {
	kv, err := Dial("redis://localhost:6379/0", "fhs")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	assert.Equal(t, "fhs:rankings", kv.key("rankings"))
	assert.Equal(t, "teams", NewRedisKV(nil, "").key("teams"))
}
