package messageformat

// Node is a single element of a parsed message tree. The set of
// implementations is closed: LiteralNode, ArgumentNode, HashNode,
// PluralNode, and SelectNode. Every consumer switches over all of them.
type Node interface {
	node()
}

// Message is an ordered sequence of nodes. The top level of a template and
// every case body is a Message. Nodes are owned by exactly one Message.
type Message []Node

// LiteralNode is opaque text emitted verbatim.
type LiteralNode struct {
	Text string
}

// ArgumentNode is a variable substitution with an optional format type
// (number, date, time, or a custom registered kind) and an optional style.
type ArgumentNode struct {
	Name  string
	Kind  string
	Style string
}

// HashNode is the "#" placeholder inside a plural or selectordinal body.
// At format time it is replaced with the locale-formatted operand.
type HashNode struct{}

// PluralNode selects a case body by the plural (or, when Ordinal is set,
// the ordinal) category of a numeric value. Offset is subtracted from the
// operand before categorization and before "#" substitution; explicit "=N"
// cases match the original value.
type PluralNode struct {
	Name    string
	Cases   []PluralCase
	Offset  float64
	Ordinal bool
}

// PluralCase is one named alternative body of a PluralNode. Name is a CLDR
// category or an explicit "=N" match.
type PluralCase struct {
	Name string
	Body Message
}

// SelectNode dispatches on the stringified value of a variable to the case
// with the matching name, falling back to "other".
type SelectNode struct {
	Name  string
	Cases []SelectCase
}

// SelectCase is one named alternative body of a SelectNode.
type SelectCase struct {
	Name string
	Body Message
}

func (*LiteralNode) node()  {}
func (*ArgumentNode) node() {}
func (*HashNode) node()     {}
func (*PluralNode) node()   {}
func (*SelectNode) node()   {}
