package ports

import (
	"context"
	"io"
	"time"
)

// ObjectMetadata metadatos opcionales que acompañan a un objeto subido.
type ObjectMetadata struct {
	ContentType  string
	Email        string
	DocumentType string
}

// ObjectStore puerto del object store (S3 o compatible).
type ObjectStore interface {
	// Put sube el contenido y devuelve la URL del objeto.
	Put(ctx context.Context, key string, body io.Reader, size int64, meta ObjectMetadata) (string, error)
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	PresignPut(ctx context.Context, key string, expiry time.Duration, meta ObjectMetadata) (string, error)
}

// SignRequest pedido al emisor de URLs firmadas.
type SignRequest struct {
	Operation  string // upload | download
	Key        string
	Expiration int // segundos
	Meta       ObjectMetadata
}

// Signer colaborador remoto que emite URLs firmadas de tiempo limitado.
type Signer interface {
	Sign(ctx context.Context, req SignRequest) (string, error)
}

// Transferrer envía bytes a una URL firmada de subida.
type Transferrer interface {
	PutToURL(ctx context.Context, url string, body []byte, meta ObjectMetadata) error
}
