package model

// LineRange is a 1-based, inclusive span of source lines.
type LineRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type DefKind string

const (
	KindFunction      DefKind = "function"
	KindAsyncFunction DefKind = "async-function"
	KindClass         DefKind = "class"
)

type RefKind int

const (
	// RefSimple is a bare identifier reference, e.g. @overload.
	RefSimple RefKind = iota
	// RefQualified is an attribute access; Name holds the final attribute,
	// e.g. @typing.overload resolves to "overload".
	RefQualified
	// RefOpaque covers every other decorator expression (calls, subscripts).
	RefOpaque
)

// DecoratorRef identifies what a decorator expression resolves to,
// syntactically. No import tracking is done on purpose.
type DecoratorRef struct {
	Kind RefKind
	Name string
}

type Decorator struct {
	Line int
	Ref  DecoratorRef
}

// Statement is one statement in a definition body. IsString marks a bare
// string-literal expression (a docstring when it comes first).
type Statement struct {
	Start    int
	End      int
	IsString bool
}

// Definition is a named function/async-function/class node lowered out of
// the syntax tree. Start is the header line (def/class keyword), not the
// first decorator; decorators carry their own lines.
type Definition struct {
	Name       string
	Kind       DefKind
	Start      int
	End        int
	Decorators []Decorator
	Body       []Statement
}

// RevisionRecord is one parsed entry from line-history output. Date keeps
// the raw string as emitted by the history tool.
type RevisionRecord struct {
	Hash        string `json:"hash"`
	AuthorName  string `json:"authorName"`
	AuthorEmail string `json:"authorEmail"`
	Date        string `json:"date"`
	Message     string `json:"message"`
	Diff        string `json:"diff"`
}

// Warning flags suspected drift between a definition's sub-ranges.
type Warning struct {
	Message string `json:"message"`
	Hash    string `json:"hash"`
}
