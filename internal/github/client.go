package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// Client defines the GitHub API methods used by this application.
type Client interface {
	GetRepository(ctx context.Context, fullName string) (*RepositoryDetail, error)
	ListIssues(ctx context.Context, fullName string) ([]Issue, error)
}

// APIClient wraps the go-github client, keeping its base URL fixed for the
// lifetime of the client.
type APIClient struct {
	inner *gh.Client
}

// NewClient creates a client for the API at baseURL. The token is optional;
// when set it is sent as a bearer token on every request.
func NewClient(baseURL, token string) (*APIClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	inner := gh.NewClient(httpClient)
	inner.BaseURL = u
	return &APIClient{inner: inner}, nil
}

// Get issues a GET for path, relative to the base URL, and decodes the JSON
// body into v. Any non-2xx status is returned as a *gh.ErrorResponse.
func (c *APIClient) Get(ctx context.Context, path string, v any) error {
	req, err := c.inner.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	_, err = c.inner.Do(ctx, req, v)
	return err
}

// GetRepository fetches repos/{fullName}. fullName is used verbatim, so
// "owner/name" spans two path segments.
func (c *APIClient) GetRepository(ctx context.Context, fullName string) (*RepositoryDetail, error) {
	var repo RepositoryDetail
	if err := c.Get(ctx, "repos/"+fullName, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// ListIssues fetches the first page of repos/{fullName}/issues in the API's
// default order.
func (c *APIClient) ListIssues(ctx context.Context, fullName string) ([]Issue, error) {
	issues := []Issue{}
	if err := c.Get(ctx, "repos/"+fullName+"/issues", &issues); err != nil {
		return nil, err
	}
	return issues, nil
}
