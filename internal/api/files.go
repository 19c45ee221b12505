package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog"
)

// fileAPI implements FileAPI.
type fileAPI struct {
	c      *Client
	logger zerolog.Logger
}

// NewFileAPI creates a new file upload client.
func NewFileAPI(c *Client, logger zerolog.Logger) FileAPI {
	return &fileAPI{c: c, logger: logger.With().Str("client", "files").Logger()}
}

// Upload sends the file as a multipart form under the "file" field and
// returns the server-relative path of the stored file.
func (a *fileAPI) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to read upload content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalise multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.c.requestURL("/files/upload", nil), &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result struct {
		Path string `json:"filePath"`
	}
	if err := a.c.doRaw(req, &result); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", filename, err)
	}

	a.logger.Info().Str("filename", filename).Str("path", result.Path).Msg("file uploaded")
	return result.Path, nil
}
