package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAPI_Upload(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/files/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "photo.png", header.Filename)
		assert.Equal(t, "fake image bytes", string(content))

		_ = json.NewEncoder(w).Encode(map[string]string{"filePath": "/uploads/photo.png"})
	})

	client, _ := newTestClient(t, handler)
	files := NewFileAPI(client, zerolog.Nop())

	path, err := files.Upload(context.Background(), "photo.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/photo.png", path)
}

func TestFileAPI_UploadFailure(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unsupported file type"})
	})

	client, _ := newTestClient(t, handler)
	files := NewFileAPI(client, zerolog.Nop())

	_, err := files.Upload(context.Background(), "notes.txt", strings.NewReader("hello"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}
