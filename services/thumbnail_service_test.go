package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThumbnailURL(t *testing.T) {
	svc, err := NewThumbnailService("modeva", "key", "secret")
	require.NoError(t, err)

	url := svc.ThumbnailURL("products/denim-jacket")

	assert.Contains(t, url, "https://res.cloudinary.com/modeva/image/upload/")
	assert.Contains(t, url, ProductThumbnailTransformation)
	assert.Contains(t, url, "products/denim-jacket")
}

func TestThumbnailURL_PassThrough(t *testing.T) {
	svc, err := NewThumbnailService("modeva", "key", "secret")
	require.NoError(t, err)

	assert.Equal(t, "", svc.ThumbnailURL(""))
	assert.Equal(t, "https://images.example.com/a.jpg", svc.ThumbnailURL("https://images.example.com/a.jpg"))
}
