// Package imaging normaliza fotos enviadas: decodifica, reduz e grava em WebP.
package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

const (
	MaxUploadBytes = 2 << 20
	MaxDimension   = 1024
	MaxPixels      = 40_000_000
	Quality        = 80
	ContentType    = "image/webp"
)

var ErrUnsupported = errors.New("unsupported image format")

var accepted = map[string]bool{
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// ToWebP lê no máximo MaxUploadBytes; imagens maiores que MaxDimension são
// reduzidas mantendo a proporção. O cabeçalho é conferido antes de decodificar
// para que dimensões declaradas acima de MaxPixels não aloquem o bitmap.
func ToWebP(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read upload")
	}
	if len(raw) > MaxUploadBytes {
		return nil, errors.Wrap(ErrUnsupported, "file too large")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(ErrUnsupported, err.Error())
	}
	if !accepted[format] {
		return nil, ErrUnsupported
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > MaxPixels {
		return nil, errors.Wrapf(ErrUnsupported, "%dx%d exceeds pixel budget", cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(ErrUnsupported, err.Error())
	}

	img := Fit(src, MaxDimension)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: Quality}); err != nil {
		return nil, errors.Wrap(err, "encode webp")
	}
	return buf.Bytes(), nil
}

// Fit devolve src intacta se já cabe em max x max.
func Fit(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	nw, nh := max, max
	if w >= h {
		nh = h * max / w
	} else {
		nw = w * max / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
