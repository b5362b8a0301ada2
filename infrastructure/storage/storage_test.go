package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURLStorage_Upload(t *testing.T) {
	url, err := DataURLStorage{}.Upload(context.Background(), "blogs/x.png", []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,cG5n", url)
}
