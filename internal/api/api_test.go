package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaraainfra/weekly-mis/internal/auth"
	"github.com/aaraainfra/weekly-mis/internal/config"
	"github.com/aaraainfra/weekly-mis/internal/domain"
	"github.com/aaraainfra/weekly-mis/internal/repository"
	"github.com/aaraainfra/weekly-mis/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	doc       *domain.WeeklyData
	getErr    error
	upsertErr error
	pingErr   error
}

func (m *memRepo) Get(ctx context.Context) (*domain.WeeklyData, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.doc == nil {
		return nil, repository.ErrNotFound
	}
	copied := *m.doc
	return &copied, nil
}

func (m *memRepo) Upsert(ctx context.Context, doc *domain.WeeklyData) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	copied := *doc
	m.doc = &copied
	return nil
}

func (m *memRepo) Ping(ctx context.Context) error {
	return m.pingErr
}

type stubGenerator struct {
	result domain.NarrativeResult
}

func (s *stubGenerator) Generate(ctx context.Context, doc domain.WeeklyData) domain.NarrativeResult {
	return s.result
}

func newTestRouter(t *testing.T, repo *memRepo, gen *stubGenerator) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if gen == nil {
		gen = &stubGenerator{result: domain.FallbackNarrative("test stub")}
	}

	tokens := auth.NewTokenManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1})
	router := NewRouter(&Services{
		Reports:   service.NewReportService(repo, nil),
		Generator: gen,
		Tokens:    tokens,
	}, nil)

	return router, tokens
}

func bearerFor(t *testing.T, tokens *auth.TokenManager, username string) string {
	t.Helper()
	user, err := auth.Authenticate(username, "123")
	require.NoError(t, err)
	token, err := tokens.Issue(user)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(router *gin.Engine, method, path, authHeader string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	router, _ := newTestRouter(t, &memRepo{}, nil)

	t.Run("procurement gets its tabs", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/login", "",
			gin.H{"username": "proc", "password": "123"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token       string    `json:"token"`
			User        auth.User `json:"user"`
			Views       []string  `json:"views"`
			DefaultView string    `json:"defaultView"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, auth.RoleProcurement, resp.User.Role)
		assert.Equal(t, "dashboard", resp.DefaultView)
		assert.NotContains(t, resp.Views, "finance-dashboard")
	})

	t.Run("finance gets its tabs", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/login", "",
			gin.H{"username": "acc", "password": "123"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Views       []string `json:"views"`
			DefaultView string   `json:"defaultView"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "finance-dashboard", resp.DefaultView)
		assert.NotContains(t, resp.Views, "dashboard")
		assert.NotContains(t, resp.Views, "report")
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/login", "",
			gin.H{"username": "proc", "password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("unknown username", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/login", "",
			gin.H{"username": "nobody", "password": "123"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid username")
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetReportRequiresSession(t *testing.T) {
	router, _ := newTestRouter(t, &memRepo{}, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/report", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetReportServesDefaultOnStorageFailure(t *testing.T) {
	repo := &memRepo{getErr: errors.New("connection refused")}
	router, tokens := newTestRouter(t, repo, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/report", bearerFor(t, tokens, "acc"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc domain.WeeklyData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, domain.DefaultWeeklyData().WeekStarting, doc.WeekStarting)
}

func TestSaveReportRoundTrip(t *testing.T) {
	repo := &memRepo{}
	router, tokens := newTestRouter(t, repo, nil)
	procAuth := bearerFor(t, tokens, "proc")

	doc := domain.DefaultWeeklyData()
	doc.WeekStarting = "23-Dec-2024"
	doc.Projects[0].CriticalShortages = []string{"Cement", " Steel ", ""}

	w := doJSON(router, http.MethodPut, "/api/v1/report", procAuth, doc)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/report", procAuth, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.WeeklyData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "23-Dec-2024", got.WeekStarting)
	assert.Equal(t, []string{"Cement", "Steel"}, got.Projects[0].CriticalShortages)
}

func TestSaveReportSurfacesWriteFailure(t *testing.T) {
	repo := &memRepo{upsertErr: errors.New("write timeout")}
	router, tokens := newTestRouter(t, repo, nil)

	w := doJSON(router, http.MethodPut, "/api/v1/report",
		bearerFor(t, tokens, "proc"), domain.DefaultWeeklyData())

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "not persisted")
	assert.Nil(t, repo.doc)
}

func TestFinanceCannotUseProcurementRoutes(t *testing.T) {
	router, tokens := newTestRouter(t, &memRepo{}, nil)
	finAuth := bearerFor(t, tokens, "acc")

	w := doJSON(router, http.MethodPut, "/api/v1/report", finAuth, domain.DefaultWeeklyData())
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/report/narrative", finAuth, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFinanceSavesFinanceSubset(t *testing.T) {
	stored := domain.DefaultWeeklyData()
	repo := &memRepo{doc: &stored}
	router, tokens := newTestRouter(t, repo, nil)

	finance := stored.Finance
	finance.OverduePayables = 777

	w := doJSON(router, http.MethodPut, "/api/v1/report/finance",
		bearerFor(t, tokens, "acc"), finance)
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.WeeklyData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(777), got.Finance.OverduePayables)
	assert.Equal(t, stored.WeekStarting, got.WeekStarting)
}

func TestNarrativeEndpointTagsSource(t *testing.T) {
	gen := &stubGenerator{result: domain.NarrativeResult{
		Sections: domain.NarrativeSections{
			ExecutiveSummary: "• Solid week.",
			VendorFollowUps:  "• None pending.",
			RisksAndIssues:   "• Steel pricing volatility.",
			ActionItems:      "• Close out approvals.",
			Conclusion:       "Ready for next week.",
		},
		Source: domain.SourceGenerated,
	}}
	router, tokens := newTestRouter(t, &memRepo{}, gen)

	w := doJSON(router, http.MethodPost, "/api/v1/report/narrative",
		bearerFor(t, tokens, "proc"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Sections domain.NarrativeSections `json:"sections"`
		Source   domain.NarrativeSource   `json:"source"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.SourceGenerated, resp.Source)
	assert.True(t, resp.Sections.Complete())
}

func TestNarrativeEndpointReportsFallback(t *testing.T) {
	router, tokens := newTestRouter(t, &memRepo{},
		&stubGenerator{result: domain.FallbackNarrative("model unreachable")})

	w := doJSON(router, http.MethodPost, "/api/v1/report/narrative",
		bearerFor(t, tokens, "proc"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Sections domain.NarrativeSections `json:"sections"`
		Source   domain.NarrativeSource   `json:"source"`
		Reason   string                   `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.SourceFallback, resp.Source)
	assert.Equal(t, "model unreachable", resp.Reason)
	assert.True(t, resp.Sections.Complete())
}

type capturingArchive struct {
	key  string
	data []byte
}

func (a *capturingArchive) Put(ctx context.Context, key string, data []byte) error {
	a.key = key
	a.data = data
	return nil
}

func TestNarrativeArchiveOptIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	gen := &stubGenerator{result: domain.NarrativeResult{
		Sections: domain.NarrativeSections{
			ExecutiveSummary: "• Solid week.",
			VendorFollowUps:  "• None pending.",
			RisksAndIssues:   "• None.",
			ActionItems:      "• None.",
			Conclusion:       "Steady.",
		},
		Source: domain.SourceGenerated,
	}}
	archive := &capturingArchive{}
	tokens := auth.NewTokenManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1})
	router := NewRouter(&Services{
		Reports:   service.NewReportService(&memRepo{}, nil),
		Generator: gen,
		Archive:   archive,
		Tokens:    tokens,
	}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/report/narrative?archive=true",
		bearerFor(t, tokens, "proc"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Body.String(), "archiveKey")
	assert.Contains(t, archive.key, "reports/")
	assert.Contains(t, string(archive.data), "Solid week")
}

func TestStatusProbe(t *testing.T) {
	repo := &memRepo{}
	router, tokens := newTestRouter(t, repo, nil)
	finAuth := bearerFor(t, tokens, "acc")

	w := doJSON(router, http.MethodGet, "/api/v1/status", finAuth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"connected":true`)

	repo.pingErr = errors.New("refused")
	w = doJSON(router, http.MethodGet, "/api/v1/status", finAuth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"connected":false`)
}

func TestViewsEndpoint(t *testing.T) {
	router, tokens := newTestRouter(t, &memRepo{}, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/views", bearerFor(t, tokens, "acc"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Views       []string `json:"views"`
		DefaultView string   `json:"defaultView"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "finance-dashboard", resp.DefaultView)
	assert.ElementsMatch(t, []string{"finance-dashboard", "data-entry"}, resp.Views)
}
