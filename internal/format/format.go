package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/stahnma/github-explorer/internal/explorer"
	"github.com/stahnma/github-explorer/internal/github"
)

// WriteJSON writes indented JSON to w.
func WriteJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// WriteRepositories writes the saved list as a table, in list order.
func WriteRepositories(w io.Writer, repos []github.RepositorySummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Repository", "Owner", "Description"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for i, r := range repos {
		table.Append([]string{strconv.Itoa(i + 1), r.FullName, r.Owner.Login, r.Description})
	}
	table.Render()
}

// WriteDetail writes the detail screen: the repository block followed by
// the issues, each according to its own status.
func WriteDetail(w io.Writer, st explorer.DetailState) {
	switch st.Repository.Status {
	case explorer.StatusLoading:
		fmt.Fprintln(w, explorer.LoadingLabel)
	case explorer.StatusFailed:
		fmt.Fprintf(w, "Não foi possível carregar %s: %v\n", st.Identifier, st.Repository.Err)
	case explorer.StatusLoaded:
		r := st.Repository.Value
		fmt.Fprintln(w, r.FullName)
		if r.Description != "" {
			fmt.Fprintln(w, r.Description)
		}
		fmt.Fprintf(w, "@%s %s\n\n", r.Owner.Login, r.Owner.AvatarURL)

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{explorer.StarsLabel, explorer.ForksLabel, explorer.OpenIssuesLabel})
		table.SetBorder(false)
		table.Append([]string{strconv.Itoa(r.StargazersCount), strconv.Itoa(r.ForksCount), strconv.Itoa(r.OpenIssuesCount)})
		table.Render()
	}
	fmt.Fprintln(w)

	switch st.Issues.Status {
	case explorer.StatusFailed:
		fmt.Fprintf(w, "Não foi possível carregar as issues: %v\n", st.Issues.Err)
	case explorer.StatusLoaded:
		if len(st.Issues.Value) == 0 {
			return
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Issue", "Author", "URL"})
		table.SetAutoWrapText(false)
		table.SetBorder(false)
		for _, issue := range st.Issues.Value {
			table.Append([]string{issue.Title, issue.User.Login, issue.HTMLURL})
		}
		table.Render()
	}
}
