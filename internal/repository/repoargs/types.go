package repoargs

type RepositoryName string

const (
	OrderRepoName            RepositoryName = "order"
	TerminateRequestRepoName RepositoryName = "terminate_request"
	OutboxRepoName           RepositoryName = "outbox"
)
