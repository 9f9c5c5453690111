package helper

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"carbon_zero/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const certificateFolder = "carbon/certificates"

// InitCloudinary returns nil when the account is not configured.
func InitCloudinary(cfg config.App) (*cloudinary.Cloudinary, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, nil
	}
	return cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
}

type CertificateUploader struct {
	Cld *cloudinary.Cloudinary
}

// Upload stores the certificate PNG under its code and returns the secure URL.
func (u CertificateUploader) Upload(ctx context.Context, code string, png []byte) (string, error) {
	if u.Cld == nil {
		return "", nil
	}
	result, err := u.Cld.Upload.Upload(ctx, bytes.NewReader(png), uploader.UploadParams{
		Folder:       certificateFolder,
		PublicID:     strings.ToLower(code),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("upload certificate %s: %w", code, err)
	}
	return result.SecureURL, nil
}

type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
}

// SignUpload signs direct browser uploads; params are the raw values to sign
// (folder, public_id). Empty values are skipped and the timestamp is always added.
func SignUpload(cfg config.App, params map[string]string, now time.Time) (UploadSignature, error) {
	toSign := url.Values{}
	for k, v := range params {
		if v != "" {
			toSign.Set(k, v)
		}
	}
	timestamp := now.Unix()
	toSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(toSign, cfg.CloudinaryAPISecret)
	if err != nil {
		return UploadSignature{}, fmt.Errorf("sign upload: %w", err)
	}
	return UploadSignature{
		Signature: signature,
		Timestamp: timestamp,
		APIKey:    cfg.CloudinaryAPIKey,
		CloudName: cfg.CloudinaryCloudName,
	}, nil
}
