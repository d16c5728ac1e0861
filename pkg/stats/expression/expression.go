package expression

// Type selects which production set of the embedded grammar is active.
type Type int

const (
	// TypeBoost parses boost lists (AC(2);Advantage(AttackRoll)).
	TypeBoost Type = iota
	// TypeFunctor parses stats functor lists (DealDamage(1d6,Fire)).
	TypeFunctor
	// TypeDescriptionParams parses tooltip/description parameter lists.
	TypeDescriptionParams
)

// Grammar variant tags used in the synthetic buffer prefix.
const (
	TagProperties        = "Properties"
	TagRequirements      = "Requirements"
	TagDescriptionParams = "DescriptionParams"
)

// Expression is the parsed form of one expression value: an ordered list of
// calls.
type Expression struct {
	Calls []*Call
}

// Call is one boost/functor/parameter invocation.
type Call struct {
	Name string
	Args []Arg
}

// Arg is a single call argument: either a nested call or a literal
// (number, dice roll, identifier path, or quoted string).
type Arg struct {
	Call *Call  // non-nil for nested calls
	Text string // literal text otherwise
}

// SyntaxError reports a grammar failure at a byte offset into the parsed
// buffer. Column is 0-based; the bridge remaps it into the caller's value
// coordinates.
type SyntaxError struct {
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return e.Message
}
