package uploads

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 200, A: 255})
	}
	return img
}

func pngBytes(t *testing.T, w, h int) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(w, h)))
	return buf.Bytes()
}

func setupService(t *testing.T) *Service {
	return &Service{Store: &LocalStorage{Dir: t.TempDir()}}
}

func TestUpload_PNGRoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	res, err := svc.Upload(ctx, pngBytes(t, 20, 10))
	require.NoError(t, err)
	assert.Regexp(t, `^/api/uploads/[0-9a-f]{32}\.png$`, res.URL)

	obj, err := svc.Open(ctx, res.Filename)
	require.NoError(t, err)
	defer obj.Body.Close()
	assert.Equal(t, "image/png", obj.ContentType)
	data, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestUpload_DownscalesWideImages(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	res, err := svc.Upload(ctx, pngBytes(t, 2600, 20))
	require.NoError(t, err)

	obj, err := svc.Open(ctx, res.Filename)
	require.NoError(t, err)
	defer obj.Body.Close()
	img, err := imaging.Decode(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, 2000, img.Bounds().Dx())
}

func TestUpload_GIFAndWEBP(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	var g bytes.Buffer
	require.NoError(t, gif.Encode(&g, testImage(8, 8), nil))
	res, err := svc.Upload(ctx, g.Bytes())
	require.NoError(t, err)
	assert.Contains(t, res.Filename, ".gif")

	var w bytes.Buffer
	require.NoError(t, webp.Encode(&w, testImage(8, 8), &webp.Options{Lossless: true}))
	res, err = svc.Upload(ctx, w.Bytes())
	require.NoError(t, err)
	assert.Contains(t, res.Filename, ".webp")
}

func TestUpload_Rejects(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, nil)
	assert.ErrorIs(t, err, ErrFileRequired)

	_, err = svc.Upload(ctx, []byte("%PDF-1.4 not an image"))
	assert.ErrorIs(t, err, ErrUnsupported)

	truncated := pngBytes(t, 20, 20)[:40]
	_, err = svc.Upload(ctx, truncated)
	assert.ErrorIs(t, err, ErrCorruptImage)

	_, err = svc.Upload(ctx, make([]byte, MaxBytes+1))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

// oversizedPNG rewrites the IHDR of a tiny PNG to declare w x h pixels.
func oversizedPNG(t *testing.T, w, h uint32) []byte {
	data := pngBytes(t, 4, 4)
	require.Equal(t, "IHDR", string(data[12:16]))
	binary.BigEndian.PutUint32(data[16:20], w)
	binary.BigEndian.PutUint32(data[20:24], h)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestUpload_RejectsHugeDimensions(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	cfg, _, err := image.DecodeConfig(bytes.NewReader(oversizedPNG(t, 100000, 100000)))
	require.NoError(t, err)
	assert.Equal(t, 100000, cfg.Width)

	_, err = svc.Upload(ctx, oversizedPNG(t, 100000, 100000))
	assert.ErrorIs(t, err, ErrImageTooLarge)

	var g bytes.Buffer
	require.NoError(t, gif.Encode(&g, testImage(8, 8), nil))
	huge := g.Bytes()
	binary.LittleEndian.PutUint16(huge[6:8], 65535)
	binary.LittleEndian.PutUint16(huge[8:10], 65535)
	_, err = svc.Upload(ctx, huge)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestOpen_RejectsTraversalAndMissing(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	for _, name := range []string{"../../etc/passwd", "..%2F..%2Fsecret", "x.png", ""} {
		_, err := svc.Open(ctx, name)
		assert.ErrorIs(t, err, ErrFileNotFound, name)
	}
	_, err := svc.Open(ctx, "0123456789abcdef0123456789abcdef.png")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestSupabaseStorage(t *testing.T) {
	var gotPath, gotAuth, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"Key":"uploads/a.png"}`)
	}))
	defer srv.Close()

	store := &SupabaseStorage{BaseURL: srv.URL + "/", SecretKey: "service-role", Bucket: "uploads"}
	require.NoError(t, store.Put(context.Background(), "a.png", "image/png", []byte("x")))
	assert.Equal(t, "/storage/v1/object/uploads/a.png", gotPath)
	assert.Equal(t, "Bearer service-role", gotAuth)
	assert.Equal(t, "image/png", gotType)

	obj, err := store.Get(context.Background(), "a.png")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/uploads/a.png", obj.RedirectURL)
}

func TestSupabaseStorage_ServiceRoleHint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"message":"Invalid Compact JWS"}`)
	}))
	defer srv.Close()
	store := &SupabaseStorage{BaseURL: srv.URL, SecretKey: "anon", Bucket: "uploads"}
	err := store.Put(context.Background(), "a.png", "image/png", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service_role")

	empty := &SupabaseStorage{Bucket: "uploads"}
	assert.Error(t, empty.Put(context.Background(), "a.png", "image/png", nil))
}
