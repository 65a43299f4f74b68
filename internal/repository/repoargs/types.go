package repoargs

type RepositoryName string

const (
	OrderRepoName   RepositoryName = "order"
	PaymentRepoName RepositoryName = "payment"
	OfferRepoName   RepositoryName = "offer"
)

// BatchExecQueryRow вызывается для каждой строки батч запроса.
type BatchExecQueryRow func(i int, err error)
