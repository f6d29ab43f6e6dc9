package usecase

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/ports"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

// Operaciones y modos del gateway de archivos.
const (
	OperationUpload   = "upload"
	OperationDownload = "download"

	ModeDirect = "direto"
	ModeSigned = "assinado"

	DefaultContentType = "application/pdf"
	// maxExpirationSeconds límite de S3 para URLs firmadas (7 días).
	maxExpirationSeconds = 7 * 24 * 3600
)

// StorageConfig parámetros del gateway.
type StorageConfig struct {
	Prefix            string // prefijo de las claves, p. ej. "documentos/"
	DefaultExpiration int    // segundos
}

// StorageUseCase sube archivos al object store y emite URLs firmadas.
// Con signer configurado todo pasa por el firmador remoto; sin él se firma localmente.
type StorageUseCase struct {
	store    ports.ObjectStore
	signer   ports.Signer
	transfer ports.Transferrer
	cfg      StorageConfig
	metrics  ports.Metrics
	log      *logger.Logger
}

// NewStorageUseCase construye el caso de uso. signer y transfer pueden ser nil.
func NewStorageUseCase(store ports.ObjectStore, signer ports.Signer, transfer ports.Transferrer, cfg StorageConfig, metrics ports.Metrics, log *logger.Logger) *StorageUseCase {
	if cfg.DefaultExpiration <= 0 {
		cfg.DefaultExpiration = 3600
	}
	return &StorageUseCase{
		store:    store,
		signer:   signer,
		transfer: transfer,
		cfg:      cfg,
		metrics:  metrics,
		log:      log.Component("storage"),
	}
}

func (uc *StorageUseCase) signed() bool {
	return uc.signer != nil && uc.transfer != nil
}

// Upload guarda el archivo en <prefijo><filename>.
func (uc *StorageUseCase) Upload(ctx context.Context, file dto.UploadFile) (*dto.UploadResponse, error) {
	filename := strings.TrimSpace(file.Filename)
	if filename == "" {
		return nil, domain.Invalid("Nome do arquivo não informado")
	}
	key := uc.objectKey(filename)
	// el Content-Type firmado y el del PUT deben coincidir
	meta := ports.ObjectMetadata{
		ContentType:  contentTypeOrDefault(file.ContentType),
		Email:        strings.TrimSpace(file.Email),
		DocumentType: strings.TrimSpace(file.DocumentType),
	}

	var (
		objectURL string
		mode      string
	)
	if uc.signed() {
		mode = ModeSigned
		signedURL, err := uc.signer.Sign(ctx, ports.SignRequest{
			Operation:  OperationUpload,
			Key:        key,
			Expiration: uc.cfg.DefaultExpiration,
			Meta:       meta,
		})
		if err != nil {
			return nil, err
		}
		if err := uc.transfer.PutToURL(ctx, signedURL, file.Body, meta); err != nil {
			return nil, err
		}
		objectURL = stripQuery(signedURL)
	} else {
		mode = ModeDirect
		u, err := uc.store.Put(ctx, key, bytes.NewReader(file.Body), int64(len(file.Body)), meta)
		if err != nil {
			return nil, err
		}
		objectURL = u
	}

	uc.metrics.RecordUpload(mode)
	uc.log.Info().Str("key", key).Int("tamanho", len(file.Body)).Str("modo", mode).Msg("arquivo enviado")
	return &dto.UploadResponse{URL: objectURL, Key: key, Tamanho: len(file.Body), Modo: mode}, nil
}

// Download emite una URL firmada de descarga. key se usa tal cual; filename recibe el prefijo.
func (uc *StorageUseCase) Download(ctx context.Context, key, filename string, expiration int) (*dto.DownloadResponse, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		if f := strings.TrimSpace(filename); f != "" {
			key = uc.objectKey(f)
		}
	}
	if key == "" {
		return nil, domain.MissingField("key")
	}
	exp, err := uc.expiration(expiration)
	if err != nil {
		return nil, err
	}
	u, err := uc.presign(ctx, OperationDownload, key, exp, ports.ObjectMetadata{})
	if err != nil {
		return nil, err
	}
	return &dto.DownloadResponse{URL: u, Key: key, Expiration: exp}, nil
}

// Sign emite una URL firmada de subida o descarga. En subidas, email y document_type
// viajan como x-amz-meta-* y content_type por defecto es application/pdf.
func (uc *StorageUseCase) Sign(ctx context.Context, in dto.SignedURLRequest) (*dto.SignedURLResponse, error) {
	op := strings.ToLower(strings.TrimSpace(in.Operation))
	key := strings.TrimSpace(in.Key)
	if op == "" || key == "" {
		return nil, domain.Invalid("Parâmetros obrigatórios: operation (upload|download) e key")
	}
	if op != OperationUpload && op != OperationDownload {
		return nil, domain.Invalid("operation deve ser 'upload' ou 'download'")
	}
	exp, err := uc.expiration(in.Expiration)
	if err != nil {
		return nil, err
	}

	var meta ports.ObjectMetadata
	if op == OperationUpload {
		meta = ports.ObjectMetadata{
			ContentType:  contentTypeOrDefault(in.ContentType),
			Email:        strings.TrimSpace(in.Email),
			DocumentType: strings.TrimSpace(in.DocumentType),
		}
	}
	u, err := uc.presign(ctx, op, key, exp, meta)
	if err != nil {
		return nil, err
	}
	return &dto.SignedURLResponse{
		URL:          u,
		Operation:    op,
		Key:          key,
		Expiration:   exp,
		Email:        meta.Email,
		DocumentType: meta.DocumentType,
	}, nil
}

func (uc *StorageUseCase) presign(ctx context.Context, op, key string, exp int, meta ports.ObjectMetadata) (string, error) {
	if uc.signer != nil {
		return uc.signer.Sign(ctx, ports.SignRequest{Operation: op, Key: key, Expiration: exp, Meta: meta})
	}
	ttl := time.Duration(exp) * time.Second
	if op == OperationUpload {
		return uc.store.PresignPut(ctx, key, ttl, meta)
	}
	return uc.store.PresignGet(ctx, key, ttl)
}

func (uc *StorageUseCase) expiration(seconds int) (int, error) {
	switch {
	case seconds == 0:
		return uc.cfg.DefaultExpiration, nil
	case seconds < 0 || seconds > maxExpirationSeconds:
		return 0, domain.Invalid("expiration deve estar entre 1 e %d segundos", maxExpirationSeconds)
	}
	return seconds, nil
}

func (uc *StorageUseCase) objectKey(filename string) string {
	filename = strings.TrimLeft(filename, "/")
	if uc.cfg.Prefix == "" || strings.HasPrefix(filename, uc.cfg.Prefix) {
		return filename
	}
	return uc.cfg.Prefix + filename
}

func contentTypeOrDefault(ct string) string {
	if ct = strings.TrimSpace(ct); ct != "" {
		return ct
	}
	return DefaultContentType
}

func stripQuery(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = ""
	return u.String()
}
