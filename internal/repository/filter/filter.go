package filter

// Where is one query filter clause applied to a firestore query.
type Where struct {
	Path  string
	Op    string
	Value interface{}
}
