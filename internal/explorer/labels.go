package explorer

// Text shown by every front end.
const (
	AppName          = "Github Explorer"
	Title            = "Explore repositórios no Github."
	InputPlaceholder = "Digite o nome do repositório"
	SubmitLabel      = "Pesquisar"
	BackLabel        = "Voltar"

	StarsLabel      = "Stars"
	ForksLabel      = "Forks"
	OpenIssuesLabel = "Issues abertas"

	LoadingLabel = "Carregando..."
)
