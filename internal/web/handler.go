package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	apperrors "github.com/stahnma/github-explorer/internal/errors"
	"github.com/stahnma/github-explorer/internal/explorer"
	"github.com/stahnma/github-explorer/internal/github"
)

type labels struct {
	AppName, Title, InputPlaceholder, SubmitLabel, BackLabel string
	StarsLabel, ForksLabel, OpenIssuesLabel, LoadingLabel   string
}

var pageLabels = labels{
	AppName:          explorer.AppName,
	Title:            explorer.Title,
	InputPlaceholder: explorer.InputPlaceholder,
	SubmitLabel:      explorer.SubmitLabel,
	BackLabel:        explorer.BackLabel,
	StarsLabel:       explorer.StarsLabel,
	ForksLabel:       explorer.ForksLabel,
	OpenIssuesLabel:  explorer.OpenIssuesLabel,
	LoadingLabel:     explorer.LoadingLabel,
}

type dashboardPage struct {
	L            labels
	Input        string
	InputError   string
	HasError     bool
	StoreError   string
	Repositories []github.RepositorySummary
}

type repositoryPage struct {
	L               labels
	Identifier      string
	Repository      *github.RepositoryDetail
	RepositoryError string
	Issues          []github.Issue
	IssuesError     string
}

// Handler serves both screens. The dashboard is shared by every request, the
// way a single browser tab owns its local storage.
type Handler struct {
	mu        sync.Mutex
	dashboard *explorer.Dashboard
	client    github.Client
	logger    *slog.Logger
}

// NewHandler creates a new web handler
func NewHandler(dashboard *explorer.Dashboard, client github.Client, logger *slog.Logger) *Handler {
	return &Handler{
		dashboard: dashboard,
		client:    client,
		logger:    logger,
	}
}

// HealthCheck returns the health status of the server
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Dashboard renders the saved list and search form
// GET /
func (h *Handler) Dashboard(c *gin.Context) {
	h.mu.Lock()
	page := h.dashboardPage(nil)
	h.mu.Unlock()

	c.HTML(http.StatusOK, "dashboard.html", page)
}

// AddRepository submits the search form
// POST /repositories
func (h *Handler) AddRepository(c *gin.Context) {
	ctx := c.Request.Context()

	h.mu.Lock()
	h.dashboard.SetInput(c.PostForm("repository"))
	identifier, err := h.dashboard.BeginSearch()
	if err != nil {
		defer h.mu.Unlock()
		h.logger.Debug("search rejected", "error", err)
		c.HTML(http.StatusUnprocessableEntity, "dashboard.html", h.dashboardPage(nil))
		return
	}
	h.mu.Unlock()

	// Lookup does not touch dashboard state.
	res := h.dashboard.Lookup(ctx, identifier)

	h.mu.Lock()
	defer h.mu.Unlock()

	err = h.dashboard.ApplySearch(ctx, res)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/")
	case apperrors.KindOf(err) == apperrors.KindStorageFailed:
		h.logger.Error("saving repositories", "error", err)
		c.HTML(http.StatusInternalServerError, "dashboard.html", h.dashboardPage(err))
	default:
		h.logger.Debug("search rejected", "error", err)
		c.HTML(http.StatusUnprocessableEntity, "dashboard.html", h.dashboardPage(nil))
	}
}

func (h *Handler) dashboardPage(storeErr error) dashboardPage {
	page := dashboardPage{
		L:            pageLabels,
		Input:        h.dashboard.Input,
		InputError:   h.dashboard.InputError,
		HasError:     h.dashboard.HasError,
		Repositories: append([]github.RepositorySummary(nil), h.dashboard.Repositories...),
	}
	if storeErr != nil {
		page.StoreError = apperrors.UserMessage(storeErr)
	}
	return page
}

// Repository renders the detail screen for one repository
// GET /repositories/*repository
func (h *Handler) Repository(c *gin.Context) {
	identifier := repositoryParam(c)
	detail := explorer.NewDetail(h.client)

	select {
	case <-detail.Load(c.Request.Context(), identifier):
	case <-c.Request.Context().Done():
	}

	st := detail.State()
	page := repositoryPage{L: pageLabels, Identifier: identifier}
	switch st.Repository.Status {
	case explorer.StatusLoaded:
		page.Repository = st.Repository.Value
	case explorer.StatusFailed:
		page.RepositoryError = errString(st.Repository.Err)
	}
	switch st.Issues.Status {
	case explorer.StatusLoaded:
		page.Issues = st.Issues.Value
	case explorer.StatusFailed:
		page.IssuesError = errString(st.Issues.Err)
	}

	c.HTML(http.StatusOK, "repository.html", page)
}

// GetSaved returns the saved repository list
// GET /api/saved
func (h *Handler) GetSaved(c *gin.Context) {
	h.mu.Lock()
	list := append([]github.RepositorySummary{}, h.dashboard.Repositories...)
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"data": list,
	})
}

// GetRepository proxies the repository fetch
// GET /api/repository/*repository
func (h *Handler) GetRepository(c *gin.Context) {
	identifier := repositoryParam(c)
	repo, err := h.client.GetRepository(c.Request.Context(), identifier)
	if err != nil {
		respondError(c, apperrors.NewLookupFailedError(identifier, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": repo,
	})
}

// GetIssues proxies the issues fetch
// GET /api/issues/*repository
func (h *Handler) GetIssues(c *gin.Context) {
	identifier := repositoryParam(c)
	issues, err := h.client.ListIssues(c.Request.Context(), identifier)
	if err != nil {
		respondError(c, apperrors.NewLookupFailedError(identifier, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": issues,
	})
}

func repositoryParam(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("repository"), "/")
}

func errString(err error) string {
	if err == nil {
		return "resposta vazia"
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "requisição cancelada"
	}
	return err.Error()
}

func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case apperrors.KindInputMissing:
		status = http.StatusBadRequest
	case apperrors.KindLookupFailed:
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    appErr.Kind,
			"message": appErr.Message,
		},
	})
}
