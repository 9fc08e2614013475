package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

// DataURL encodes content as a QR code PNG and returns it as a data URL
// suitable for direct embedding in an <img> tag
func DataURL(content string) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, defaultSize)
	if err != nil {
		return "", fmt.Errorf("failed to encode qr code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
