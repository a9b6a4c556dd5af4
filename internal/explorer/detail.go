package explorer

import (
	"context"
	"sync"

	"github.com/stahnma/github-explorer/internal/github"
)

// Status is the lifecycle of one fetched resource.
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Resource holds a value that is fetched asynchronously.
type Resource[T any] struct {
	Status Status
	Value  T
	Err    error
}

// Ticket identifies one Open call. Results carry the ticket they were
// fetched for so that late arrivals can be recognised.
type Ticket struct {
	Generation uint64
	Identifier string
}

// RepositoryResult is the outcome of the repository fetch.
type RepositoryResult struct {
	Ticket
	Repository *github.RepositoryDetail
	Err        error
}

// IssuesResult is the outcome of the issues fetch.
type IssuesResult struct {
	Ticket
	Issues []github.Issue
	Err    error
}

// DetailState is a snapshot of the detail screen.
type DetailState struct {
	Identifier string
	Repository Resource[*github.RepositoryDetail]
	Issues     Resource[[]github.Issue]
}

// Detail is the repository screen. The repository and its issues are
// fetched independently; each result updates only its own resource, and
// results for anything but the most recent Open are dropped.
type Detail struct {
	client github.Client

	mu    sync.Mutex
	gen   uint64
	state DetailState
}

// NewDetail creates an empty detail screen.
func NewDetail(client github.Client) *Detail {
	return &Detail{client: client}
}

// Open targets identifier, resetting both resources to loading.
func (d *Detail) Open(identifier string) Ticket {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	d.state = DetailState{Identifier: identifier}
	return Ticket{Generation: d.gen, Identifier: identifier}
}

// FetchRepository performs the repository request for t without touching state.
func (d *Detail) FetchRepository(ctx context.Context, t Ticket) RepositoryResult {
	repo, err := d.client.GetRepository(ctx, t.Identifier)
	return RepositoryResult{Ticket: t, Repository: repo, Err: err}
}

// FetchIssues performs the issues request for t without touching state.
func (d *Detail) FetchIssues(ctx context.Context, t Ticket) IssuesResult {
	issues, err := d.client.ListIssues(ctx, t.Identifier)
	return IssuesResult{Ticket: t, Issues: issues, Err: err}
}

// ApplyRepository stores r unless it is stale. It reports whether r was applied.
func (d *Detail) ApplyRepository(r RepositoryResult) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.current(r.Ticket) {
		return false
	}
	if r.Err != nil || r.Repository == nil {
		err := r.Err
		if err == nil {
			err = errEmptyResponse
		}
		d.state.Repository = Resource[*github.RepositoryDetail]{Status: StatusFailed, Err: err}
		return true
	}
	d.state.Repository = Resource[*github.RepositoryDetail]{Status: StatusLoaded, Value: r.Repository}
	return true
}

// ApplyIssues stores r unless it is stale. It reports whether r was applied.
func (d *Detail) ApplyIssues(r IssuesResult) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.current(r.Ticket) {
		return false
	}
	if r.Err != nil {
		d.state.Issues = Resource[[]github.Issue]{Status: StatusFailed, Err: r.Err}
		return true
	}
	issues := r.Issues
	if issues == nil {
		issues = []github.Issue{}
	}
	d.state.Issues = Resource[[]github.Issue]{Status: StatusLoaded, Value: issues}
	return true
}

func (d *Detail) current(t Ticket) bool {
	return t.Generation == d.gen && t.Identifier == d.state.Identifier
}

// State returns a snapshot of the screen.
func (d *Detail) State() DetailState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Load opens identifier and starts both fetches on their own goroutines.
// The returned channel is closed once both results have been applied or
// dropped.
func (d *Detail) Load(ctx context.Context, identifier string) <-chan struct{} {
	t := d.Open(identifier)
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		d.ApplyRepository(d.FetchRepository(ctx, t))
	}()
	go func() {
		defer wg.Done()
		d.ApplyIssues(d.FetchIssues(ctx, t))
	}()
	go func() {
		wg.Wait()
		close(done)
	}()
	return done
}
