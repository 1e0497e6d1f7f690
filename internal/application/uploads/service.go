package uploads

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"regexp"
	"strings"

	"nvp-welfare-backend/internal/domain"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	MaxBytes = 10 << 20
	maxWidth = 2000
	// maxPixels bounds the decoded size; headers are checked before any pixel data is decoded.
	maxPixels = 40_000_000
	// PublicPrefix is where stored files are served from.
	PublicPrefix = "/api/uploads/"
)

var (
	ErrFileRequired   = domain.NewError(domain.ErrInvalidInput, "No file uploaded")
	ErrFileTooLarge   = domain.NewError(domain.ErrInvalidInput, "File too large")
	ErrUnsupported    = domain.NewError(domain.ErrInvalidInput, "Only JPEG, PNG, GIF and WEBP images are allowed")
	ErrCorruptImage   = domain.NewError(domain.ErrInvalidInput, "File is not a valid image")
	ErrImageTooLarge  = domain.NewError(domain.ErrInvalidInput, "Image dimensions too large")
	ErrFileNotFound   = domain.NewError(domain.ErrNotFound, "File not found")
	storedNamePattern = regexp.MustCompile(`^[0-9a-f]{32}\.(jpg|png|gif|webp)$`)
)

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

func contentTypeFor(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	for ct, e := range extensions {
		if e == ext {
			return ct
		}
	}
	return "application/octet-stream"
}

type Service struct {
	Store Storage
}

type Result struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Upload validates an image by its content, downsizes wide JPEG/PNG files, and stores it.
func (s *Service) Upload(ctx context.Context, data []byte) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrFileRequired
	}
	if len(data) > MaxBytes {
		return nil, ErrFileTooLarge
	}
	contentType := mimetype.Detect(data).String()
	ext, ok := extensions[contentType]
	if !ok {
		return nil, ErrUnsupported
	}

	out, err := normalize(data, contentType)
	if err != nil {
		return nil, err
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "") + "." + ext
	if err := s.Store.Put(ctx, name, contentType, out); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	log.Info().Str("file", name).Str("content_type", contentType).Int("bytes", len(out)).Msg("uploads: stored image")
	return &Result{URL: PublicPrefix + name, Filename: name}, nil
}

func checkDimensions(data []byte, contentType string) error {
	var (
		cfg image.Config
		err error
	)
	if contentType == "image/webp" {
		cfg, err = webp.DecodeConfig(bytes.NewReader(data))
	} else {
		cfg, _, err = image.DecodeConfig(bytes.NewReader(data))
	}
	if err != nil {
		return ErrCorruptImage
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return ErrCorruptImage
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return ErrImageTooLarge
	}
	return nil
}

func normalize(data []byte, contentType string) ([]byte, error) {
	if err := checkDimensions(data, contentType); err != nil {
		return nil, err
	}
	if contentType == "image/webp" || contentType == "image/gif" {
		return data, nil
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, ErrCorruptImage
	}
	if img.Bounds().Dx() <= maxWidth {
		return data, nil
	}
	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	format := imaging.PNG
	if contentType == "image/jpeg" {
		format = imaging.JPEG
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("encode resized image: %w", err)
	}
	return buf.Bytes(), nil
}

// Open returns a stored file. Names that were not generated by Upload are reported missing.
func (s *Service) Open(ctx context.Context, name string) (*Object, error) {
	if !storedNamePattern.MatchString(name) {
		return nil, ErrFileNotFound
	}
	return s.Store.Get(ctx, name)
}
