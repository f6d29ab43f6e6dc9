package dto

// UploadRequest cuerpo JSON de la subida; arquivo y file son alias (base64).
type UploadRequest struct {
	Arquivo      string `json:"arquivo"`
	File         string `json:"file"`
	Filename     string `json:"filename"`
	Email        string `json:"email"`
	ContentType  string `json:"content_type"`
	DocumentType string `json:"document_type"`
}

// UploadFile archivo ya normalizado (bytes decodificados + metadatos).
type UploadFile struct {
	Filename     string
	Body         []byte
	Email        string
	ContentType  string
	DocumentType string
}

// UploadResponse resultado de la subida.
type UploadResponse struct {
	URL     string `json:"url"`
	Key     string `json:"key"`
	Tamanho int    `json:"tamanho"`
	Modo    string `json:"modo"` // direto | assinado
}

// DownloadResponse URL firmada de descarga.
type DownloadResponse struct {
	URL        string `json:"url"`
	Key        string `json:"key"`
	Expiration int    `json:"expiration"`
}

// SignedURLRequest POST /url-assinada.
type SignedURLRequest struct {
	Operation    string `json:"operation"`
	Key          string `json:"key"`
	Expiration   int    `json:"expiration"`
	Email        string `json:"email"`
	ContentType  string `json:"content_type"`
	DocumentType string `json:"document_type"`
}

// SignedURLResponse URL emitida y parámetros efectivos.
type SignedURLResponse struct {
	URL          string `json:"url"`
	Operation    string `json:"operation"`
	Key          string `json:"key"`
	Expiration   int    `json:"expiration"`
	Email        string `json:"email,omitempty"`
	DocumentType string `json:"document_type,omitempty"`
}
