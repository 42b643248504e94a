package repositories

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageKey(t *testing.T) {
	key := ImageKey("../photos/My Robot.PNG")
	assert.True(t, strings.HasPrefix(key, "projects/"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)
	assert.NotContains(t, key, "..")

	assert.NotEqual(t, ImageKey("a.jpg"), ImageKey("a.jpg"))
	assert.Regexp(t, `^projects/[0-9a-f-]{36}$`, ImageKey("noext"))
}

func TestR2StorePresignUpload(t *testing.T) {
	store := NewS3Store("https://bucket.example.test", "access", "secret", "robots", "auto", "https://cdn.example.test/")

	key, raw, err := store.PresignUpload(context.Background(), "sumo.jpg", 15*time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "bucket.example.test", u.Host)
	assert.Equal(t, "/robots/"+key, u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))

	assert.Equal(t, "https://cdn.example.test/"+key, store.PublicURL(key))
}
