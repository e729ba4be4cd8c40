package reviewhistory

const (
	// collection name
	reviewHistoryNode string = "reviewHistory"

	// Fields' name and path
	AsinFieldPath      string = "asin"
	UserIdFieldPath    string = "userId"
	CreatedAtFieldPath string = "createdAt"
)
