package signer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/doyensec/safeurl"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/ports"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
)

const maxResponseBytes = 1 << 20

var (
	_ ports.Signer      = (*Client)(nil)
	_ ports.Transferrer = (*Client)(nil)
)

// NewSafeHTTPClient cliente HTTP que rechaza destinos internos (IPs privadas, loopback, metadata).
func NewSafeHTTPClient(timeout time.Duration) *http.Client {
	cfg := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443).
		Build()
	return safeurl.Client(cfg).Client
}

// Client habla con el servicio emisor de URLs firmadas y sube bytes a la URL devuelta.
// El firmador lo configura el operador y puede vivir en la red interna; las subidas van
// a la URL que devuelve el firmador y usan el cliente de upload.
type Client struct {
	endpoint string
	http     *http.Client
	upload   *http.Client
}

// NewClient recibe el *http.Client para poder inyectar uno plano en tests.
// Sin WithUploadClient las subidas usan el mismo cliente.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	return &Client{endpoint: endpoint, http: httpClient, upload: httpClient}
}

// WithUploadClient fija el cliente usado por PutToURL.
func (c *Client) WithUploadClient(httpClient *http.Client) *Client {
	c.upload = httpClient
	return c
}

type signPayload struct {
	Operation    string `json:"operation"`
	Key          string `json:"key"`
	Expiration   int    `json:"expiration,omitempty"`
	Email        string `json:"email,omitempty"`
	ContentType  string `json:"content_type,omitempty"`
	DocumentType string `json:"document_type,omitempty"`
}

type signResponse struct {
	URL string `json:"url"`
}

// Sign pide una URL firmada. Un status no 2xx o una respuesta sin url es ErrUpstream.
func (c *Client) Sign(ctx context.Context, req ports.SignRequest) (string, error) {
	body, err := json.Marshal(signPayload{
		Operation:    req.Operation,
		Key:          req.Key,
		Expiration:   req.Expiration,
		Email:        req.Meta.Email,
		ContentType:  req.Meta.ContentType,
		DocumentType: req.Meta.DocumentType,
	})
	if err != nil {
		return "", fmt.Errorf("serializar pedido de firma: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("crear pedido de firma: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", domain.Upstream("firmador", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", domain.Upstream("firmador", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", domain.Upstream("firmador", fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))))
	}

	var out signResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", domain.Upstream("firmador", fmt.Errorf("respuesta inválida: %w", err))
	}
	if out.URL == "" {
		return "", domain.Upstream("firmador", fmt.Errorf("respuesta sin url"))
	}
	return out.URL, nil
}

// PutToURL sube los bytes a una URL firmada con los mismos headers que se firmaron.
func (c *Client) PutToURL(ctx context.Context, url string, body []byte, meta ports.ObjectMetadata) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crear subida: %w", err)
	}
	req.ContentLength = int64(len(body))
	if meta.ContentType != "" {
		req.Header.Set("Content-Type", meta.ContentType)
	}
	if meta.Email != "" {
		req.Header.Set("X-Amz-Meta-Email", meta.Email)
	}
	if meta.DocumentType != "" {
		req.Header.Set("X-Amz-Meta-Document-Type", meta.DocumentType)
	}

	resp, err := c.upload.Do(req)
	if err != nil {
		return domain.Upstream("subida firmada", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		return domain.Upstream("subida firmada", fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))))
	}
	return nil
}
