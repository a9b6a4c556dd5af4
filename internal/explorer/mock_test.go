package explorer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stahnma/github-explorer/internal/github"
	"github.com/stahnma/github-explorer/internal/repolist"
	"github.com/stahnma/github-explorer/internal/storage"
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

func makeRepo(id int64, fullName string, stars, forks, open int) *github.RepositoryDetail {
	return &github.RepositoryDetail{
		RepositorySummary: github.RepositorySummary{
			ID:          id,
			FullName:    fullName,
			Description: "description of " + fullName,
			Owner:       github.Owner{Login: "owner", AvatarURL: "https://example.com/avatar.png"},
		},
		StargazersCount: stars,
		ForksCount:      forks,
		OpenIssuesCount: open,
	}
}

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	s, err := file.NewFileStorage(filepath.Join(t.TempDir(), "store.gob"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestDashboard(t *testing.T, client github.Client) (*Dashboard, *repolist.Service) {
	t.Helper()
	lists := repolist.NewService(newTestStore(t))
	return NewDashboard(context.Background(), client, lists), lists
}
