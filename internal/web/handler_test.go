package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stahnma/github-explorer/internal/explorer"
	"github.com/stahnma/github-explorer/internal/github"
	"github.com/stahnma/github-explorer/internal/repolist"
	"github.com/stahnma/github-explorer/internal/storage/file"
)

// mockClient implements github.Client for testing.
type mockClient struct {
	getRepositoryFn func(ctx context.Context, fullName string) (*github.RepositoryDetail, error)
	listIssuesFn    func(ctx context.Context, fullName string) ([]github.Issue, error)
}

func (m *mockClient) GetRepository(ctx context.Context, fullName string) (*github.RepositoryDetail, error) {
	return m.getRepositoryFn(ctx, fullName)
}

func (m *mockClient) ListIssues(ctx context.Context, fullName string) ([]github.Issue, error) {
	return m.listIssuesFn(ctx, fullName)
}

func defaultMockClient() *mockClient {
	return &mockClient{
		getRepositoryFn: func(_ context.Context, fullName string) (*github.RepositoryDetail, error) {
			if fullName != "facebook/react" {
				return nil, errors.New("404 Not Found")
			}
			return &github.RepositoryDetail{
				RepositorySummary: github.RepositorySummary{
					ID:          10270250,
					FullName:    "facebook/react",
					Description: "The library for web and native user interfaces.",
					Owner:       github.Owner{Login: "facebook", AvatarURL: "https://example.com/fb.png"},
				},
				StargazersCount: 4242,
				ForksCount:      1717,
				OpenIssuesCount: 808,
			}, nil
		},
		listIssuesFn: func(_ context.Context, fullName string) ([]github.Issue, error) {
			if fullName != "facebook/react" {
				return nil, errors.New("404 Not Found")
			}
			return []github.Issue{
				{ID: 2, Title: "Second issue", HTMLURL: "https://github.com/facebook/react/issues/2", User: github.IssueUser{Login: "bob"}},
				{ID: 1, Title: "First issue", HTMLURL: "https://github.com/facebook/react/issues/1", User: github.IssueUser{Login: "alice"}},
			}, nil
		},
	}
}

func newTestRouter(t *testing.T, client github.Client) (*gin.Engine, *repolist.Service) {
	t.Helper()
	store, err := file.NewFileStorage(filepath.Join(t.TempDir(), "store.gob"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	lists := repolist.NewService(store)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dashboard := explorer.NewDashboard(context.Background(), client, lists)
	return SetupRoutes(NewHandler(dashboard, client, logger), logger), lists
}

func do(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postSearch(router http.Handler, identifier string) *httptest.ResponseRecorder {
	form := url.Values{"repository": {identifier}}
	req := httptest.NewRequest(http.MethodPost, "/repositories", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(router, req)
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t, defaultMockClient())
	w := do(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestDashboard_Empty(t *testing.T) {
	router, _ := newTestRouter(t, defaultMockClient())
	w := do(router, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Explore repositórios no Github.", "Pesquisar", "Digite o nome do repositório"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestAddRepository_Success(t *testing.T) {
	router, lists := newTestRouter(t, defaultMockClient())

	w := postSearch(router, "facebook/react")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q", loc)
	}

	stored := lists.Load(context.Background())
	if len(stored) != 1 || stored[0].FullName != "facebook/react" {
		t.Fatalf("stored list = %+v", stored)
	}

	body := do(router, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
	if !strings.Contains(body, `href="/repositories/facebook/react"`) {
		t.Errorf("expected link to detail route, got:\n%s", body)
	}
	if !strings.Contains(body, "https://example.com/fb.png") {
		t.Error("expected owner avatar")
	}
	if strings.Contains(body, `class="has-error"`) {
		t.Error("input should not be in error state")
	}
}

func TestAddRepository_Empty(t *testing.T) {
	router, lists := newTestRouter(t, defaultMockClient())

	w := postSearch(router, "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Digite o autor/nome do repositório.") {
		t.Errorf("expected InputMissing message, got:\n%s", body)
	}
	if !strings.Contains(body, `class="has-error"`) {
		t.Error("expected error style on input")
	}
	if len(lists.Load(context.Background())) != 0 {
		t.Error("list should still be empty")
	}
}

func TestAddRepository_NotFound(t *testing.T) {
	router, lists := newTestRouter(t, defaultMockClient())

	w := postSearch(router, "zzz/nonexistent-repo-xyz")
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Repositório não encontrado.") {
		t.Errorf("expected LookupFailed message, got:\n%s", body)
	}
	if !strings.Contains(body, `value="zzz/nonexistent-repo-xyz"`) {
		t.Error("input should keep its text")
	}
	if len(lists.Load(context.Background())) != 0 {
		t.Error("list should be unchanged")
	}
}

func TestAddRepository_DashboardServedDuringLookup(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	client := defaultMockClient()
	client.getRepositoryFn = func(_ context.Context, fullName string) (*github.RepositoryDetail, error) {
		close(started)
		<-release
		return defaultMockClient().getRepositoryFn(context.Background(), fullName)
	}
	router, lists := newTestRouter(t, client)

	posted := make(chan int, 1)
	go func() {
		posted <- postSearch(router, "facebook/react").Code
	}()
	<-started

	served := make(chan int, 1)
	go func() {
		served <- do(router, httptest.NewRequest(http.MethodGet, "/", nil)).Code
	}()
	select {
	case code := <-served:
		if code != http.StatusOK {
			t.Errorf("GET / status = %d", code)
		}
	case <-time.After(2 * time.Second):
		close(release)
		t.Fatal("GET / blocked while a lookup was in flight")
	}

	close(release)
	if code := <-posted; code != http.StatusSeeOther {
		t.Errorf("POST status = %d, want 303", code)
	}
	if len(lists.Load(context.Background())) != 1 {
		t.Error("expected the repository to be saved")
	}
}

func TestRepositoryPage(t *testing.T) {
	router, _ := newTestRouter(t, defaultMockClient())

	w := do(router, httptest.NewRequest(http.MethodGet, "/repositories/facebook/react", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"facebook/react", "4242", "Stars", "1717", "Forks", "808", "Issues abertas", "Voltar",
		`href="https://github.com/facebook/react/issues/2"`, "Second issue", "alice"} {
		if !strings.Contains(body, want) {
			t.Errorf("detail page missing %q", want)
		}
	}
	if strings.Index(body, "Second issue") > strings.Index(body, "First issue") {
		t.Error("issues should keep the order they were fetched in")
	}
}

func TestRepositoryPage_Failed(t *testing.T) {
	router, _ := newTestRouter(t, defaultMockClient())

	body := do(router, httptest.NewRequest(http.MethodGet, "/repositories/zzz/nope", nil)).Body.String()
	if !strings.Contains(body, "Não foi possível carregar zzz/nope") {
		t.Errorf("expected failure line, got:\n%s", body)
	}
	if !strings.Contains(body, "Não foi possível carregar as issues") {
		t.Error("expected issues failure line")
	}
}

func TestAPI(t *testing.T) {
	router, _ := newTestRouter(t, defaultMockClient())
	postSearch(router, "facebook/react")

	var saved struct {
		Data []github.RepositorySummary `json:"data"`
	}
	w := do(router, httptest.NewRequest(http.MethodGet, "/api/saved", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatal(err)
	}
	if len(saved.Data) != 1 || saved.Data[0].ID != 10270250 {
		t.Errorf("saved = %+v", saved.Data)
	}

	var repo struct {
		Data github.RepositoryDetail `json:"data"`
	}
	w = do(router, httptest.NewRequest(http.MethodGet, "/api/repository/facebook/react", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &repo); err != nil {
		t.Fatal(err)
	}
	if repo.Data.StargazersCount != 4242 {
		t.Errorf("repository = %+v", repo.Data)
	}

	var issues struct {
		Data []github.Issue `json:"data"`
	}
	w = do(router, httptest.NewRequest(http.MethodGet, "/api/issues/facebook/react", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &issues); err != nil {
		t.Fatal(err)
	}
	if len(issues.Data) != 2 {
		t.Errorf("issues = %+v", issues.Data)
	}
}

func TestAPI_NotFound(t *testing.T) {
	router, _ := newTestRouter(t, defaultMockClient())

	w := do(router, httptest.NewRequest(http.MethodGet, "/api/repository/zzz/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error.Code != "LOOKUP_FAILED" || body.Error.Message != "Repositório não encontrado." {
		t.Errorf("error = %+v", body.Error)
	}
}
