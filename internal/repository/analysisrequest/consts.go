package analysisrequest

import "time"

const (
	// collection name
	analysisRequestNode string = "analysisRequests"

	// Fields' name and path
	IdFieldPath        string = "id"
	UserIdFieldPath    string = "userId"
	AsinFieldPath      string = "asin"
	ProcessedFieldPath string = "processed"
	CreatedAtFieldPath string = "createdAt"
	UpdatedAtFieldPath string = "updatedAt"

	// It must not exceed the write timeout of the database.firestore.notifyOnChanges
	channelWriteTimeout time.Duration = time.Second * 3
)
