package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/stahnma/github-explorer/internal/errors"
	"github.com/stahnma/github-explorer/internal/explorer"
)

type screen int

const (
	screenDashboard screen = iota
	screenDetail
)

type searchDoneMsg struct {
	result explorer.SearchResult
}

type repositoryMsg explorer.RepositoryResult

type issuesMsg explorer.IssuesResult

// Model is the two-screen terminal client.
type Model struct {
	ctx       context.Context
	dashboard *explorer.Dashboard
	detail    *explorer.Detail

	screen    screen
	input     textinput.Model
	spinner   spinner.Model
	listFocus bool
	cursor    int
	searching bool
	storeErr  error
}

// New creates the model on the dashboard screen.
func New(ctx context.Context, dashboard *explorer.Dashboard, detail *explorer.Detail) Model {
	ti := textinput.New()
	ti.Placeholder = explorer.InputPlaceholder
	ti.CharLimit = 200
	ti.Width = 48
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		ctx:       ctx,
		dashboard: dashboard,
		detail:    detail,
		input:     ti,
		spinner:   s,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.screen == screenDetail {
			return m.updateDetailKeys(msg)
		}
		return m.updateDashboardKeys(msg)

	case searchDoneMsg:
		m.searching = false
		err := m.dashboard.ApplySearch(m.ctx, msg.result)
		m.input.SetValue(m.dashboard.Input)
		m.storeErr = nil
		if err != nil && apperrors.KindOf(err) == apperrors.KindStorageFailed {
			slog.Debug("saving repositories", "error", err)
			m.storeErr = err
		}
		return m, nil

	case repositoryMsg:
		m.detail.ApplyRepository(explorer.RepositoryResult(msg))
		return m, nil

	case issuesMsg:
		m.detail.ApplyIssues(explorer.IssuesResult(msg))
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.screen == screenDashboard && !m.listFocus {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.listFocus {
		switch msg.String() {
		case "up", "k":
			if m.cursor == 0 {
				m.listFocus = false
				return m, m.input.Focus()
			}
			m.cursor--
		case "down", "j":
			if m.cursor < len(m.dashboard.Repositories)-1 {
				m.cursor++
			}
		case "tab", "esc":
			m.listFocus = false
			return m, m.input.Focus()
		case "enter":
			return m.openDetail(m.dashboard.Repositories[m.cursor].FullName)
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "enter":
		return m.submit()
	case "down", "tab":
		if len(m.dashboard.Repositories) > 0 {
			m.listFocus = true
			m.input.Blur()
			if m.cursor >= len(m.dashboard.Repositories) {
				m.cursor = 0
			}
		}
		return m, nil
	case "esc":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.searching {
		return m, nil
	}
	m.dashboard.SetInput(m.input.Value())
	identifier, err := m.dashboard.BeginSearch()
	if err != nil {
		return m, nil
	}
	m.searching = true
	dashboard, ctx := m.dashboard, m.ctx
	search := func() tea.Msg {
		return searchDoneMsg{result: dashboard.Lookup(ctx, identifier)}
	}
	return m, tea.Batch(m.spinner.Tick, search)
}

func (m Model) openDetail(fullName string) (tea.Model, tea.Cmd) {
	m.screen = screenDetail
	m.input.Blur()
	t := m.detail.Open(fullName)
	detail, ctx := m.detail, m.ctx
	fetchRepository := func() tea.Msg {
		return repositoryMsg(detail.FetchRepository(ctx, t))
	}
	fetchIssues := func() tea.Msg {
		return issuesMsg(detail.FetchIssues(ctx, t))
	}
	return m, tea.Batch(m.spinner.Tick, fetchRepository, fetchIssues)
}

func (m Model) updateDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "left", "h":
		m.screen = screenDashboard
		return m, nil
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) loading() bool {
	if m.searching {
		return true
	}
	return m.screen == screenDetail && m.detail.State().Repository.Status == explorer.StatusLoading
}

func (m Model) View() string {
	if m.screen == screenDetail {
		return m.detailView()
	}
	return m.dashboardView()
}

func (m Model) dashboardView() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render(explorer.AppName) + "\n")
	b.WriteString("  " + nameStyle.Render(explorer.Title) + "\n\n")

	box := inputStyle
	if m.dashboard.HasError {
		box = inputErrorStyle
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, box.Render(m.input.View()), "  ["+explorer.SubmitLabel+"]")
	if m.searching {
		row += " " + m.spinner.View()
	}
	b.WriteString(indent(row) + "\n")
	if m.dashboard.InputError != "" {
		b.WriteString("  " + errorStyle.Render(m.dashboard.InputError) + "\n")
	}
	if m.storeErr != nil {
		b.WriteString("  " + errorStyle.Render(apperrors.UserMessage(m.storeErr)) + "\n")
	}
	b.WriteString("\n")

	for i, repo := range m.dashboard.Repositories {
		entry := fmt.Sprintf("%s %s  %s\n%s",
			ownerStyle.Render("@"+repo.Owner.Login), urlStyle.Render(repo.Owner.AvatarURL),
			nameStyle.Render(repo.FullName)+"  ›", descStyle.Render(repo.Description))
		if m.listFocus && i == m.cursor {
			b.WriteString(selectedEntryStyle.Render(entry) + "\n")
		} else {
			b.WriteString(entryStyle.Render(entry) + "\n")
		}
	}

	b.WriteString("\n  " + helpStyle.Render("enter: pesquisar/abrir • tab: lista • esc: sair") + "\n")
	return b.String()
}

func (m Model) detailView() string {
	st := m.detail.State()
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render(explorer.AppName) + "    " + helpStyle.Render("‹ "+explorer.BackLabel+" (esc)") + "\n\n")

	switch st.Repository.Status {
	case explorer.StatusLoading:
		b.WriteString("  " + m.spinner.View() + " " + explorer.LoadingLabel + "\n")
	case explorer.StatusFailed:
		b.WriteString("  " + errorStyle.Render(fmt.Sprintf("Não foi possível carregar %s: %v", st.Identifier, st.Repository.Err)) + "\n")
	case explorer.StatusLoaded:
		r := st.Repository.Value
		b.WriteString("  " + nameStyle.Render(r.FullName) + "\n")
		b.WriteString("  " + descStyle.Render(r.Description) + "\n")
		b.WriteString("  " + ownerStyle.Render("@"+r.Owner.Login) + " " + urlStyle.Render(r.Owner.AvatarURL) + "\n\n")
		b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n",
			counterStyle.Render(fmt.Sprint(r.StargazersCount)), explorer.StarsLabel,
			counterStyle.Render(fmt.Sprint(r.ForksCount)), explorer.ForksLabel,
			counterStyle.Render(fmt.Sprint(r.OpenIssuesCount)), explorer.OpenIssuesLabel))
	}
	b.WriteString("\n")

	switch st.Issues.Status {
	case explorer.StatusFailed:
		b.WriteString("  " + errorStyle.Render(fmt.Sprintf("Não foi possível carregar as issues: %v", st.Issues.Err)) + "\n")
	case explorer.StatusLoaded:
		for _, issue := range st.Issues.Value {
			entry := fmt.Sprintf("%s  ›\n%s %s", nameStyle.Render(issue.Title), descStyle.Render(issue.User.Login), urlStyle.Render(issue.HTMLURL))
			b.WriteString(entryStyle.Render(entry) + "\n")
		}
	}
	return b.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(ctx context.Context, dashboard *explorer.Dashboard, detail *explorer.Detail) error {
	p := tea.NewProgram(New(ctx, dashboard, detail), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
