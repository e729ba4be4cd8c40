package ops

// Firestore query operators.
const (
	Equal        string = "=="
	NotEqual     string = "!="
	Less         string = "<"
	LessEqual    string = "<="
	Greater      string = ">"
	GreaterEqual string = ">="
)
