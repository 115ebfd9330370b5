package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"rotahub/internal/dto"
	"rotahub/internal/engine"
	"rotahub/internal/model"
	"rotahub/internal/service"
	"rotahub/pkg/jwt"
	"rotahub/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult   *dto.TokenResponse
	loginErr      error
	refreshResult *dto.TokenResponse
	refreshErr    error
	logoutErr     error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ *dto.RefreshRequest) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwt.Claims) error {
	return m.logoutErr
}

// ── Mock RotaService ──

type mockRotaService struct {
	generateResult *dto.GenerateRotaResponse
	generateErr    error
	listResult     []dto.RotaEntryResponse
	listErr        error
}

func (m *mockRotaService) Generate(_ context.Context, _, _ int) (*dto.GenerateRotaResponse, error) {
	return m.generateResult, m.generateErr
}
func (m *mockRotaService) ListMonth(_ context.Context, _, _ int) ([]dto.RotaEntryResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockRotaService) ListEmployeeMonth(_ context.Context, _ uint, _, _ int) ([]dto.RotaEntryResponse, error) {
	return m.listResult, m.listErr
}

// ── Mock ExceptionService ──

type mockExceptionService struct {
	processResult *dto.ProcessExceptionsResponse
	processErr    error
	getResult     *model.ExceptionReport
	getErr        error
	listResult    []model.ExceptionReport
	listTotal     int64
	listErr       error
	reviewResult  *model.ExceptionReport
	reviewErr     error
}

func (m *mockExceptionService) Process(_ context.Context, _, _ int) (*dto.ProcessExceptionsResponse, error) {
	return m.processResult, m.processErr
}
func (m *mockExceptionService) Get(_ context.Context, _ uint) (*model.ExceptionReport, error) {
	return m.getResult, m.getErr
}
func (m *mockExceptionService) List(_ context.Context, _ *dto.ExceptionListRequest) ([]model.ExceptionReport, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockExceptionService) Review(_ context.Context, _ uint, _ *dto.UpdateExceptionRequest) (*model.ExceptionReport, error) {
	return m.reviewResult, m.reviewErr
}

// ── Helpers ──

func performJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

// ── Auth ──

func TestLoginHandler_Success(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{
		loginResult: &dto.TokenResponse{AccessToken: "tok", ExpiresIn: 900},
	})
	r := gin.New()
	r.POST("/auth/login", h.Login)

	w := performJSON(r, http.MethodPost, "/auth/login",
		dto.LoginRequest{Username: "admin", Password: "hunter22"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrBadCredentials})
	r := gin.New()
	r.POST("/auth/login", h.Login)

	w := performJSON(r, http.MethodPost, "/auth/login",
		dto.LoginRequest{Username: "admin", Password: "wrongpw"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLoginHandler_BindingFailure(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})
	r := gin.New()
	r.POST("/auth/login", h.Login)

	// Password below the minimum length.
	w := performJSON(r, http.MethodPost, "/auth/login",
		dto.LoginRequest{Username: "admin", Password: "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

// ── Rota ──

func TestGenerateHandler_ExplicitPeriod(t *testing.T) {
	h := NewRotaHandler(&mockRotaService{
		generateResult: &dto.GenerateRotaResponse{Period: "2025-06", Policy: "weekday_pattern", Rows: 150},
	})
	r := gin.New()
	r.POST("/rota/generate", h.Generate)

	w := performJSON(r, http.MethodPost, "/rota/generate", dto.PeriodRequest{Year: 2025, Month: 6})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("code = %d, want 0", resp.Code)
	}
}

func TestGenerateHandler_InvalidPeriod(t *testing.T) {
	h := NewRotaHandler(&mockRotaService{generateErr: engine.ErrInvalidPeriod})
	r := gin.New()
	r.POST("/rota/generate", h.Generate)

	w := performJSON(r, http.MethodPost, "/rota/generate", dto.PeriodRequest{Year: 2025, Month: 13})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

// ── Exceptions ──

func TestReviewHandler_InvalidTransition(t *testing.T) {
	h := NewExceptionHandler(&mockExceptionService{reviewErr: service.ErrInvalidTransition})
	r := gin.New()
	r.PUT("/exceptions/:id", h.Review)

	w := performJSON(r, http.MethodPut, "/exceptions/7",
		dto.UpdateExceptionRequest{Action: "process"})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestReviewHandler_UnknownAction(t *testing.T) {
	h := NewExceptionHandler(&mockExceptionService{})
	r := gin.New()
	r.PUT("/exceptions/:id", h.Review)

	// "escalate" is not in the oneof set, so binding rejects it.
	w := performJSON(r, http.MethodPut, "/exceptions/7",
		dto.UpdateExceptionRequest{Action: "escalate"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestReviewHandler_BadID(t *testing.T) {
	h := NewExceptionHandler(&mockExceptionService{})
	r := gin.New()
	r.PUT("/exceptions/:id", h.Review)

	w := performJSON(r, http.MethodPut, "/exceptions/abc",
		dto.UpdateExceptionRequest{Action: "process"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestProcessHandler_DataIntegrityBecomesInternal(t *testing.T) {
	h := NewExceptionHandler(&mockExceptionService{processErr: engine.ErrDataIntegrity})
	r := gin.New()
	r.POST("/exceptions/process", h.Process)

	w := performJSON(r, http.MethodPost, "/exceptions/process",
		dto.PeriodRequest{Year: 2025, Month: 6})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
