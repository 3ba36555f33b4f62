package storage

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"citycast/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestValidateMinIOConfig(t *testing.T) {
	ok := config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", Bucket: "citycast"}
	assert.NoError(t, ValidateMinIOConfig(ok))

	noEndpoint := ok
	noEndpoint.Endpoint = ""
	assert.EqualError(t, ValidateMinIOConfig(noEndpoint), "minio endpoint is required")

	noSecret := ok
	noSecret.SecretKey = ""
	assert.EqualError(t, ValidateMinIOConfig(noSecret), "minio credentials are required")

	noBucket := ok
	noBucket.Bucket = ""
	assert.EqualError(t, ValidateMinIOConfig(noBucket), "minio bucket is required")
}

func TestNewMinIO_InvalidConfig(t *testing.T) {
	s, err := NewMinIO(context.Background(), config.MinIOConfig{})
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestMapError(t *testing.T) {
	missing := minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound}
	assert.ErrorIs(t, mapError("sitemap.xml", missing), ErrNotFound)

	denied := minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden}
	err := mapError("sitemap.xml", denied)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "get sitemap.xml")
}
