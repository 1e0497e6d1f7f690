package qrcode

import (
	"encoding/base64"
	"fmt"

	goqrcode "github.com/skip2/go-qrcode"
)

const size = 256

// PNG renders content as a QR code image.
func PNG(content string) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qrcode: empty content")
	}
	return goqrcode.Encode(content, goqrcode.Medium, size)
}

// DataURI renders content as a data:image/png;base64 URI suitable for <img src>.
func DataURI(content string) (string, error) {
	png, err := PNG(content)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// VerifyURL builds the public verification link for a receipt or certificate.
func VerifyURL(baseURL, kind, number string) string {
	return fmt.Sprintf("%s/verify-%s/%s", baseURL, kind, number)
}
