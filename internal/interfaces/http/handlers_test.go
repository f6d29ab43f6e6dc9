package http_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/analytics"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/auth"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/ports"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/usecase"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	apphttp "github.com/pedronetodeveloper/back-end-lambdas-aws/internal/interfaces/http"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

type mockDocumentRepo struct{ mock.Mock }

func (m *mockDocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	return m.Called(ctx, d).Error(0)
}
func (m *mockDocumentRepo) ListByEmail(ctx context.Context, email string) ([]*entity.Document, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]*entity.Document), args.Error(1)
}
func (m *mockDocumentRepo) Find(ctx context.Context, nome, email string) (*entity.Document, error) {
	args := m.Called(ctx, nome, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Document), args.Error(1)
}
func (m *mockDocumentRepo) MarkApproved(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}
func (m *mockDocumentRepo) MarkRejected(ctx context.Context, id int64, motivo string, at time.Time) error {
	return m.Called(ctx, id, motivo, at).Error(0)
}
func (m *mockDocumentRepo) ListAll(ctx context.Context, f entity.DocumentFilter) ([]*entity.DocumentWithCandidate, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]*entity.DocumentWithCandidate), args.Error(1)
}

type mockCompanyRepo struct{ mock.Mock }

func (m *mockCompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Company), args.Error(1)
}
func (m *mockCompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCompanyRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockObservabilityRepo struct{ mock.Mock }

func (m *mockObservabilityRepo) ApprovalCounts(ctx context.Context, empresa *string) (entity.ApprovalCounts, error) {
	args := m.Called(ctx, empresa)
	return args.Get(0).(entity.ApprovalCounts), args.Error(1)
}
func (m *mockObservabilityRepo) CountHires(ctx context.Context, empresa *string) (int64, error) {
	args := m.Called(ctx, empresa)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockObservabilityRepo) CountsByType(ctx context.Context, empresa *string) ([]entity.TypeCounts, error) {
	args := m.Called(ctx, empresa)
	return args.Get(0).([]entity.TypeCounts), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error { return m.Called(ctx, u).Error(0) }
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}
func (m *mockUserRepo) List(ctx context.Context, empresa *string) ([]*entity.User, error) {
	return nil, m.Called(ctx, empresa).Error(1)
}
func (m *mockUserRepo) Update(ctx context.Context, u *entity.User) error { return m.Called(ctx, u).Error(0) }
func (m *mockUserRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}
func (m *mockUserRepo) Delete(ctx context.Context, id string) error { return m.Called(ctx, id).Error(0) }

// memStore guarda el último Put en memoria.
type memStore struct {
	mu   sync.Mutex
	key  string
	body []byte
	meta ports.ObjectMetadata
}

func (s *memStore) Put(_ context.Context, key string, body io.Reader, _ int64, meta ports.ObjectMetadata) (string, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key, s.body, s.meta = key, b, meta
	return "https://docs.s3.us-east-1.amazonaws.com/" + key, nil
}
func (s *memStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://signed/" + key, nil
}
func (s *memStore) PresignPut(_ context.Context, key string, _ time.Duration, _ ports.ObjectMetadata) (string, error) {
	return "https://signed/" + key, nil
}

type routeRecorder struct {
	mu     sync.Mutex
	routes []string
	status []int
}

func (r *routeRecorder) RecordHTTP(_, route string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
	r.status = append(r.status, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type testDeps struct {
	documents *mockDocumentRepo
	companies *mockCompanyRepo
	obs       *mockObservabilityRepo
	users     *mockUserRepo
	store     *memStore
	recorder  *routeRecorder
}

func buildRouterApp(t *testing.T, loginRate int) (*fiber.App, *testDeps) {
	t.Helper()
	d := &testDeps{
		documents: &mockDocumentRepo{},
		companies: &mockCompanyRepo{},
		obs:       &mockObservabilityRepo{},
		users:     &mockUserRepo{},
		store:     &memStore{},
		recorder:  &routeRecorder{},
	}
	log := logger.Nop()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:       usecase.NewCompanyUseCase(d.companies),
		DocumentUC:      usecase.NewDocumentUseCase(d.documents, ports.NopMetrics{}, log),
		StorageUC:       usecase.NewStorageUseCase(d.store, nil, nil, usecase.StorageConfig{Prefix: "documentos/", DefaultExpiration: 3600}, ports.NopMetrics{}, log),
		ObservabilityUC: analytics.NewObservabilityUseCase(d.obs),
		AuthUC:          auth.NewAuthUseCase(d.users, auth.JWTConfig{}),
		Log:             log,
		Metrics:         d.recorder,
		LoginRateLimit:  loginRate,
	})
	return app, d
}

func send(t *testing.T, app *fiber.App, method, target, body string, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

// ──────────────────────────────────────────────────────────────────────────────
// Documentos
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentos_ListSinEmail_400(t *testing.T) {
	app, _ := buildRouterApp(t, 0)

	resp, body := send(t, app, http.MethodGet, "/candidatos/documentos", "", nil)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeValidation, body["code"])
	assert.Contains(t, body["message"], "'email'")
	assert.Equal(t, body["message"], body["error"])
}

func TestDocumentos_AprovarNoEncontrado_404(t *testing.T) {
	app, d := buildRouterApp(t, 0)
	d.documents.On("Find", mock.Anything, "RG", "x@y.com").Return(nil, nil)

	resp, body := send(t, app, http.MethodPut, "/candidatos/documentos/aprovar", `{"nome_documento":"RG","email":"x@y.com"}`, nil)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotFound, body["code"])
	assert.Contains(t, body["message"], "RG")
	assert.Contains(t, body["message"], "x@y.com")
}

func TestDocumentos_Reprovar_OK(t *testing.T) {
	app, d := buildRouterApp(t, 0)
	d.documents.On("Find", mock.Anything, "CPF", "ana@acme.com").Return(&entity.Document{ID: 9, Status: entity.DocumentPendente}, nil)
	d.documents.On("MarkRejected", mock.Anything, int64(9), "ilegível", mock.Anything).Return(nil)

	resp, body := send(t, app, http.MethodPut, "/candidatos/documentos/reprovar",
		`{"nome_documento":"CPF","email":"ana@acme.com","motivo":"ilegível"}`, nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Reprovado", body["status_atual"])
	assert.Equal(t, "PENDENTE", body["status_anterior"])
	assert.Equal(t, "ilegível", body["motivo_reprovacao"])
}

func TestDocumentos_TodosFiltros_YMetricaPorRuta(t *testing.T) {
	app, d := buildRouterApp(t, 0)
	status := "REPROVADO"
	d.documents.On("ListAll", mock.Anything, entity.DocumentFilter{Status: &status}).Return([]*entity.DocumentWithCandidate{}, nil)

	resp, body := send(t, app, http.MethodGet, "/candidatos/documentos/todos?status=reprovado", "", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	filtros := body["filtros"].(map[string]any)
	assert.Equal(t, "REPROVADO", filtros["status"])
	assert.Nil(t, filtros["empresa"])
	assert.Equal(t, []any{}, body["documentos"])
	assert.Equal(t, []string{"/candidatos/documentos/todos"}, d.recorder.routes)
	assert.Equal(t, []int{200}, d.recorder.status)
}

func TestDocumentos_TodosStatusInvalido_400(t *testing.T) {
	app, _ := buildRouterApp(t, 0)

	resp, body := send(t, app, http.MethodGet, "/candidatos/documentos/todos?status=arquivado", "", nil)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeValidation, body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresas
// ──────────────────────────────────────────────────────────────────────────────

func TestEmpresas_DeletePorQuery(t *testing.T) {
	app, d := buildRouterApp(t, 0)
	d.companies.On("Delete", mock.Anything, "e-1").Return(nil)

	resp, body := send(t, app, http.MethodDelete, "/empresas?id=e-1", "", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Empresa com id e-1 deletada.", body["message"])
}

func TestEmpresas_DeletePorCuerpoYPath(t *testing.T) {
	app, d := buildRouterApp(t, 0)
	d.companies.On("Delete", mock.Anything, "e-2").Return(nil)
	d.companies.On("Delete", mock.Anything, "e-3").Return(nil)

	resp, _ := send(t, app, http.MethodDelete, "/empresas", `{"id":"e-2"}`, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = send(t, app, http.MethodDelete, "/empresas/e-3", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	d.companies.AssertExpectations(t)
}

func TestEmpresas_UpdateIdDelPath_NoExiste404(t *testing.T) {
	app, d := buildRouterApp(t, 0)
	d.companies.On("Update", mock.Anything, mock.MatchedBy(func(c *entity.Company) bool { return c.ID == "e-9" })).
		Return(domain.NotFoundf("Empresa com id %s não encontrada", "e-9"))

	resp, body := send(t, app, http.MethodPut, "/empresas/e-9", `{"nome":"Acme","cnpj":"123"}`, nil)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Empresa com id e-9 não encontrada", body["message"])
}

func TestEmpresas_FallaDelStore_500ConMensajeCrudo(t *testing.T) {
	app, d := buildRouterApp(t, 0)
	d.companies.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert company: conn refused"))

	resp, body := send(t, app, http.MethodPost, "/empresas", `{"nome":"Acme","cnpj":"123"}`, nil)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInternal, body["code"])
	assert.Equal(t, "insert company: conn refused", body["error"])
}

func TestEmpresas_CuerpoInvalido(t *testing.T) {
	app, _ := buildRouterApp(t, 0)

	resp, body := send(t, app, http.MethodPost, "/empresas", `{"nome":`, nil)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInvalidBody, body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Archivos
// ──────────────────────────────────────────────────────────────────────────────

func TestUpload_CuerpoCrudoBase64ConHeaders(t *testing.T) {
	app, d := buildRouterApp(t, 0)
	req := httptest.NewRequest(http.MethodPost, "/upload-doc-plataforma",
		strings.NewReader(base64.StdEncoding.EncodeToString([]byte("%PDF-1.4"))))
	req.Header.Set("Content-Type", "application/pdf")
	req.Header.Set(apphttp.HeaderBase64Body, "true")
	req.Header.Set("filename", "rg.pdf")
	req.Header.Set("email", "ana@acme.com")
	req.Header.Set("document-type", "RG")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out dto.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "documentos/rg.pdf", out.Key)
	assert.Equal(t, 8, out.Tamanho)
	assert.Equal(t, usecase.ModeDirect, out.Modo)
	assert.Equal(t, []byte("%PDF-1.4"), d.store.body)
	assert.Equal(t, ports.ObjectMetadata{ContentType: "application/pdf", Email: "ana@acme.com", DocumentType: "RG"}, d.store.meta)
}

func TestUpload_JSONConAliasFile(t *testing.T) {
	app, d := buildRouterApp(t, 0)
	payload := `{"file":"` + base64.StdEncoding.EncodeToString([]byte("abc")) + `","filename":"cpf.pdf"}`

	resp, body := send(t, app, http.MethodPost, "/upload-doc-plataforma", payload, nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://docs.s3.us-east-1.amazonaws.com/documentos/cpf.pdf", body["url"])
	assert.Equal(t, []byte("abc"), d.store.body)
}

func TestUpload_SinFilename_400(t *testing.T) {
	app, _ := buildRouterApp(t, 0)

	resp, body := send(t, app, http.MethodPost, "/upload-doc-plataforma", `{"arquivo":""}`, nil)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Nome do arquivo não informado", body["message"])
}

func TestUpload_Base64Invalido_400(t *testing.T) {
	app, _ := buildRouterApp(t, 0)

	resp, body := send(t, app, http.MethodPost, "/upload-doc-plataforma", `{"arquivo":"%%%","filename":"a.pdf"}`, nil)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInvalidBody, body["code"])
}

func TestDownload_PorFilename(t *testing.T) {
	app, _ := buildRouterApp(t, 0)

	resp, body := send(t, app, http.MethodGet, "/download-doc-plataforma?filename=rg.pdf&expiration=120", "", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://signed/documentos/rg.pdf", body["url"])
	assert.Equal(t, float64(120), body["expiration"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Observabilidad y login
// ──────────────────────────────────────────────────────────────────────────────

func TestObservability_TaxaAprovacaoPorEmpresa(t *testing.T) {
	app, d := buildRouterApp(t, 0)
	empresa := "Acme"
	d.obs.On("ApprovalCounts", mock.Anything, &empresa).Return(entity.ApprovalCounts{Aprovados: 2, Total: 3}, nil)

	resp, body := send(t, app, http.MethodGet, "/observability/taxa-aprovacao?empresa=Acme", "", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 66.7, body["taxa_aprovacao"])
	assert.Equal(t, "Acme", body["empresa"])
}

func TestLogin_CredencialesInvalidas_401(t *testing.T) {
	app, d := buildRouterApp(t, 0)
	d.users.On("FindByEmail", mock.Anything, "x@y.com").Return(nil, nil)

	resp, body := send(t, app, http.MethodPost, "/login", `{"email":"x@y.com","senha":"a"}`, nil)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Credenciais inválidas", body["message"])
}

func TestLogin_LimitePorIP_429(t *testing.T) {
	app, d := buildRouterApp(t, 1)
	d.users.On("FindByEmail", mock.Anything, "x@y.com").Return(nil, nil)

	resp, _ := send(t, app, http.MethodPost, "/login", `{"email":"x@y.com","senha":"a"}`, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, body := send(t, app, http.MethodPost, "/login", `{"email":"x@y.com","senha":"a"}`, nil)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, apphttp.CodeRateLimited, body["code"])
	assert.Equal(t, "60", resp.Header.Get(fiber.HeaderRetryAfter))
}
