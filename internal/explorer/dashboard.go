package explorer

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/stahnma/github-explorer/internal/errors"
	"github.com/stahnma/github-explorer/internal/github"
	"github.com/stahnma/github-explorer/internal/repolist"
)

// Dashboard is the list screen: the saved repositories plus the search
// input and its error state. It is not safe for concurrent use; front ends
// serialise access.
type Dashboard struct {
	client github.Client
	lists  *repolist.Service

	Repositories repolist.List
	Input        string
	InputError   string
	HasError     bool
}

var errEmptyResponse = errors.New("empty response")

// SearchResult is the outcome of looking up one identifier.
type SearchResult struct {
	Identifier string
	Repository *github.RepositoryDetail
	Err        error
}

// NewDashboard loads the saved list from lists.
func NewDashboard(ctx context.Context, client github.Client, lists *repolist.Service) *Dashboard {
	return &Dashboard{
		client:       client,
		lists:        lists,
		Repositories: lists.Load(ctx),
	}
}

// SetInput replaces the text in the search input.
func (d *Dashboard) SetInput(s string) {
	d.Input = s
}

// BeginSearch validates the input and returns the identifier to look up,
// exactly as typed. An input that is empty or only whitespace sets the
// InputMissing state and returns its error.
func (d *Dashboard) BeginSearch() (string, error) {
	if strings.TrimSpace(d.Input) == "" {
		err := apperrors.NewInputMissingError()
		d.setError(err)
		return "", err
	}
	return d.Input, nil
}

// Lookup resolves identifier against the API. It does not touch the
// dashboard's state and may run on any goroutine.
func (d *Dashboard) Lookup(ctx context.Context, identifier string) SearchResult {
	repo, err := d.client.GetRepository(ctx, identifier)
	return SearchResult{Identifier: identifier, Repository: repo, Err: err}
}

// ApplySearch folds a lookup result into the dashboard. On success the
// repository is appended and the list saved; the input and error state are
// cleared even if the save fails, in which case the storage error is
// returned. On failure the list and input are left alone and the
// LookupFailed state is set.
func (d *Dashboard) ApplySearch(ctx context.Context, res SearchResult) error {
	if res.Err != nil || res.Repository == nil {
		cause := res.Err
		if cause == nil {
			cause = errEmptyResponse
		}
		err := apperrors.NewLookupFailedError(res.Identifier, cause)
		d.setError(err)
		return err
	}

	d.Repositories = repolist.Append(d.Repositories, res.Repository.RepositorySummary)
	d.Input = ""
	d.InputError = ""
	d.HasError = false

	return d.lists.Save(ctx, d.Repositories)
}

// Submit runs BeginSearch, Lookup and ApplySearch in sequence.
func (d *Dashboard) Submit(ctx context.Context) error {
	identifier, err := d.BeginSearch()
	if err != nil {
		return err
	}
	return d.ApplySearch(ctx, d.Lookup(ctx, identifier))
}

// SubmitSearch types identifier into the input and submits it.
func (d *Dashboard) SubmitSearch(ctx context.Context, identifier string) error {
	d.SetInput(identifier)
	return d.Submit(ctx)
}

func (d *Dashboard) setError(err *apperrors.AppError) {
	d.InputError = err.Message
	d.HasError = true
}
