package studio

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"imagestudio/internal/domain"
)

// DefaultMaxUploadBytes bounds a single encoded upload.
const DefaultMaxUploadBytes int64 = 20 << 20

// Encoder turns raw file contents into a transport-ready EncodedImage. It has
// no knowledge of slots; callers store the result themselves.
type Encoder struct {
	maxBytes int64
}

// NewEncoder builds an Encoder. A non-positive maxBytes selects DefaultMaxUploadBytes.
func NewEncoder(maxBytes int64) *Encoder {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &Encoder{maxBytes: maxBytes}
}

// MaxBytes returns the upload ceiling.
func (e *Encoder) MaxBytes() int64 {
	return e.maxBytes
}

// Encode reads r to completion and pairs the base64 payload with the declared
// MIME type. When no type is declared the content is sniffed instead.
func (e *Encoder) Encode(ctx context.Context, r io.Reader, declaredMIME string) (domain.EncodedImage, error) {
	if r == nil {
		return domain.EncodedImage{}, fmt.Errorf("%w: no file", domain.ErrRead)
	}
	if err := ctx.Err(); err != nil {
		return domain.EncodedImage{}, fmt.Errorf("%w: %v", domain.ErrRead, err)
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, &ctxReader{ctx: ctx, r: io.LimitReader(r, e.maxBytes+1)})
	if err != nil {
		return domain.EncodedImage{}, fmt.Errorf("%w: %v", domain.ErrRead, err)
	}
	if n == 0 {
		return domain.EncodedImage{}, fmt.Errorf("%w: file is empty", domain.ErrRead)
	}
	if n > e.maxBytes {
		return domain.EncodedImage{}, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrRead, e.maxBytes)
	}

	mimeType := normalizeMIME(declaredMIME)
	if mimeType == "" {
		mimeType = normalizeMIME(http.DetectContentType(buf.Bytes()))
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return domain.EncodedImage{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedMedia, mimeType)
	}

	return domain.EncodedImage{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// Decode reverses Encode, returning the raw bytes of img.
func Decode(img domain.EncodedImage) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(img.Data)
	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", img.MIMEType, err)
	}
	return data, nil
}

func normalizeMIME(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || value == "application/octet-stream" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return ""
	}
	return strings.ToLower(mediaType)
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
