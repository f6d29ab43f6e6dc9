package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/ports"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/config"
)

var _ ports.ObjectStore = (*MinioStore)(nil)

// MinioStore adaptador del object store sobre la API S3 (AWS S3, MinIO, etc.).
type MinioStore struct {
	client *minio.Client
	bucket string
	region string
}

// NewMinioStore construye el cliente. Con Region definida la firma de URLs no consulta al servidor.
func NewMinioStore(cfg config.StorageConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente S3: %w", err)
	}
	return &MinioStore{client: client, bucket: cfg.Bucket, region: cfg.Region}, nil
}

// EnsureBucket crea el bucket si no existe (útil con MinIO local).
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	found, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return domain.Upstream("bucket exists", err)
	}
	if !found {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return domain.Upstream("make bucket", err)
		}
	}
	return nil
}

// Put sube el objeto y devuelve su URL pública.
func (s *MinioStore) Put(ctx context.Context, key string, body io.Reader, size int64, meta ports.ObjectMetadata) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType:  meta.ContentType,
		UserMetadata: userMetadata(meta),
	})
	if err != nil {
		return "", domain.Upstream("put object", err)
	}
	return s.objectURL(key), nil
}

// PresignGet emite una URL de descarga de tiempo limitado.
func (s *MinioStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, nil)
	if err != nil {
		return "", domain.Upstream("presign get", err)
	}
	return u.String(), nil
}

// PresignPut emite una URL de subida. Content-Type y metadatos quedan firmados:
// quien suba debe enviar los mismos headers.
func (s *MinioStore) PresignPut(ctx context.Context, key string, expiry time.Duration, meta ports.ObjectMetadata) (string, error) {
	u, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucket, key, expiry, nil, SignedHeaders(meta))
	if err != nil {
		return "", domain.Upstream("presign put", err)
	}
	return u.String(), nil
}

// SignedHeaders headers que acompañan una subida a URL firmada.
func SignedHeaders(meta ports.ObjectMetadata) http.Header {
	h := http.Header{}
	if meta.ContentType != "" {
		h.Set("Content-Type", meta.ContentType)
	}
	for k, v := range userMetadata(meta) {
		h.Set("X-Amz-Meta-"+k, v)
	}
	return h
}

func userMetadata(meta ports.ObjectMetadata) map[string]string {
	m := map[string]string{}
	if meta.Email != "" {
		m["email"] = meta.Email
	}
	if meta.DocumentType != "" {
		m["document-type"] = meta.DocumentType
	}
	return m
}

// objectURL en AWS usa el estilo virtual-host; en otros endpoints, path-style.
func (s *MinioStore) objectURL(key string) string {
	ep := s.client.EndpointURL()
	escaped := (&url.URL{Path: key}).EscapedPath()
	if strings.HasSuffix(ep.Host, "amazonaws.com") {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, escaped)
	}
	return fmt.Sprintf("%s://%s/%s/%s", ep.Scheme, ep.Host, s.bucket, escaped)
}
