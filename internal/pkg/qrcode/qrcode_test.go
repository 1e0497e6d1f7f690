package qrcode

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURI_DecodesToPNG(t *testing.T) {
	uri, err := DataURI("https://nvpwelfare.in/verify-receipt/SM-20240101000000-ABCDEF")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, size, img.Bounds().Dx())
}

func TestPNG_EmptyContent(t *testing.T) {
	_, err := PNG("")
	assert.Error(t, err)
}

func TestVerifyURL(t *testing.T) {
	assert.Equal(t, "https://nvpwelfare.in/verify-certificate/CERT-1", VerifyURL("https://nvpwelfare.in", "certificate", "CERT-1"))
}
