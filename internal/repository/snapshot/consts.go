package snapshot

import "time"

const (
	// collection name
	snapshotNode string = "sentimentSnapshots"

	// Fields' name and path
	AsinFieldPath      string = "asin"
	UserIdFieldPath    string = "userId"
	TimestampFieldPath string = "timestamp"

	// It must not exceed the write timeout of the database.firestore.notifyOnChanges
	channelWriteTimeout time.Duration = time.Second * 3
)
