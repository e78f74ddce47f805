package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubObjectStorage_Upload(t *testing.T) {
	stub := NewStubObjectStorage()

	err := stub.Upload(context.Background(), "pets/rocky.jpg", []byte("image-bytes"), "image/jpeg")
	require.NoError(t, err)

	data, ok := stub.Get("pets/rocky.jpg")
	assert.True(t, ok)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestStubObjectStorage_Upload_RequiresKey(t *testing.T) {
	stub := NewStubObjectStorage()

	err := stub.Upload(context.Background(), "", []byte("data"), "image/png")
	assert.Error(t, err)
}

func TestStubObjectStorage_PublicURL(t *testing.T) {
	stub := NewStubObjectStorage()
	stub.BaseURL = "https://cdn.pawlig.co"

	assert.Equal(t, "https://cdn.pawlig.co/pets/rocky.jpg", stub.PublicURL("pets/rocky.jpg"))
}
