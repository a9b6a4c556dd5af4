package github

// Owner is the account a repository belongs to.
type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// RepositorySummary is the part of a repository that is saved in the
// dashboard list. Description is empty when the API returns null.
type RepositorySummary struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Owner       Owner  `json:"owner"`
}

// RepositoryDetail adds the counters shown on the detail screen.
type RepositoryDetail struct {
	RepositorySummary
	StargazersCount int `json:"stargazers_count"`
	ForksCount      int `json:"forks_count"`
	OpenIssuesCount int `json:"open_issues_count"`
}

// IssueUser is the author of an issue.
type IssueUser struct {
	Login string `json:"login"`
}

// Issue is one entry of a repository's issue list.
type Issue struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	HTMLURL string    `json:"html_url"`
	User    IssueUser `json:"user"`
}
