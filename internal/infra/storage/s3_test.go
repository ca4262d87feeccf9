package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = body
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestStore(t *testing.T) (*S3Store, *fakeS3) {
	t.Helper()
	fake := &fakeS3{objects: map[string][]byte{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	store, err := NewS3Store(context.Background(), S3Config{
		Bucket:    "pets",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "test",
		SecretKey: "test",
	})
	require.NoError(t, err)
	return store, fake
}

func TestS3Store_PutAndDelete(t *testing.T) {
	store, fake := newTestStore(t)
	ctx := context.Background()
	data := []byte("RIFF....WEBP")

	require.NoError(t, store.Put(ctx, "pets/1/a.webp", bytes.NewReader(data), int64(len(data)), "image/webp"))
	assert.NotEmpty(t, fake.objects["/pets/pets/1/a.webp"])

	require.NoError(t, store.Delete(ctx, "pets/1/a.webp"))
	assert.NotContains(t, fake.objects, "/pets/pets/1/a.webp")
}

func TestS3Store_URL(t *testing.T) {
	store, err := NewS3Store(context.Background(), S3Config{
		Bucket:    "pets",
		Region:    "us-east-1",
		AccessKey: "k",
		SecretKey: "s",
		PublicURL: "https://cdn.example.com/",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/pets/1/a.webp", store.URL("pets/1/a.webp"))
	assert.Empty(t, store.URL(""))
}

func TestDisabled(t *testing.T) {
	var s Store = Disabled{}

	assert.ErrorIs(t, s.Put(context.Background(), "k", nil, 0, ""), ErrDisabled)
	assert.NoError(t, s.Delete(context.Background(), "k"))
	assert.Empty(t, s.URL("k"))
}
