package utils

import (
	"bytes"
	"image"
	"image/png"

	"github.com/skip2/go-qrcode"
)

// QRImage returns the QR code of content as a size x size image.
func QRImage(content string, size int) (image.Image, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return qr.Image(size), nil
}

// GenerateQRCode returns the QR code of content as PNG bytes.
func GenerateQRCode(content string, size int) ([]byte, error) {
	img, err := QRImage(content, size)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
