// Package storage guarda as fotos dos pets em um bucket compatível com S3.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrDisabled indica que nenhum bucket foi configurado.
var ErrDisabled = errors.New("photo storage is not configured")

type Store interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// Disabled é usado quando S3_BUCKET está vazio: uploads falham, URLs ficam vazias.
type Disabled struct{}

func (Disabled) Put(context.Context, string, io.Reader, int64, string) error { return ErrDisabled }
func (Disabled) Delete(context.Context, string) error                        { return nil }
func (Disabled) URL(string) string                                           { return "" }
