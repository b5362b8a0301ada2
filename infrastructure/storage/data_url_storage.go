package storage

import (
	"context"
	"encoding/base64"

	"search-funnel/domain/services"
)

// DataURLStorage inlines images as data: URLs. It is used when no bucket is
// configured so the wizard still works on a laptop.
type DataURLStorage struct{}

var _ services.ImageStore = DataURLStorage{}

func (DataURLStorage) Upload(_ context.Context, _ string, data []byte, contentType string) (string, error) {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
