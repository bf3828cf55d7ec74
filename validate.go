package messageformat

import (
	"fmt"
	"strings"
)

// ValidateOptions controls structural validation of a parsed or hand-built
// message tree.
type ValidateOptions struct {
	// RequireOtherCase demands an "other" case on every branching construct.
	RequireOtherCase bool
	// AllowCircular permits shared or cyclic branching nodes in hand-built
	// trees. The parser never produces them.
	AllowCircular bool
	// MaxDepth bounds message nesting; zero means DefaultMaxDepth.
	MaxDepth int
}

// DefaultValidateOptions returns the options Validate applies behind
// (*MessageFormat).Validate when nothing is overridden.
func DefaultValidateOptions() ValidateOptions {
	return ValidateOptions{RequireOtherCase: true, MaxDepth: DefaultMaxDepth}
}

// Validate walks a message tree and checks structural completeness
// independent of any runtime values: non-empty argument and case names,
// legal plural/selectordinal case names, the "other" case requirement, and
// nesting depth. The walk re-counts depth on its own so trees built by
// other means than Parse are bounded too. Validation is all-or-nothing:
// the first violation aborts the walk.
func Validate(msg Message, opts ValidateOptions) error {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	v := &validator{opts: opts, seen: make(map[Node]struct{})}
	return v.message(msg, 1)
}

type validator struct {
	opts ValidateOptions
	seen map[Node]struct{}
}

func (v *validator) message(msg Message, depth int) error {
	if depth > v.opts.MaxDepth {
		return &ValidationError{
			Err:    ErrDepthExceeded,
			Reason: fmt.Sprintf("nesting depth %d exceeds limit %d", depth, v.opts.MaxDepth),
		}
	}

	for _, node := range msg {
		switch n := node.(type) {
		case *LiteralNode, *HashNode:
			// nothing to check
		case *ArgumentNode:
			if n.Name == "" {
				return &ValidationError{Err: ErrEmptyArgumentName, Reason: "argument has no name"}
			}
		case *PluralNode:
			if err := v.plural(n, depth); err != nil {
				return err
			}
		case *SelectNode:
			if err := v.selectNode(n, depth); err != nil {
				return err
			}
		default:
			return &ValidationError{Err: ErrInvalidCaseName, Reason: fmt.Sprintf("unknown node type %T", node)}
		}
	}

	return nil
}

func (v *validator) plural(n *PluralNode, depth int) error {
	if n.Name == "" {
		return &ValidationError{Err: ErrEmptyArgumentName, Reason: "plural argument has no name"}
	}
	visited, err := v.mark(n, n.Name)
	if err != nil {
		return err
	}
	if visited {
		return nil
	}

	hasOther := false
	for _, c := range n.Cases {
		if !isCategoryName(c.Name) && !isExactCase(c.Name) {
			return &ValidationError{
				Err:    ErrInvalidCaseName,
				Name:   n.Name,
				Reason: fmt.Sprintf("case %q is not a CLDR category or an =N match", c.Name),
			}
		}
		if c.Name == PluralOther {
			hasOther = true
		}
	}

	if v.opts.RequireOtherCase && !hasOther {
		return &ValidationError{
			Err:    ErrMissingOtherCase,
			Name:   n.Name,
			Reason: "branching construct must cover the other case",
		}
	}

	for _, c := range n.Cases {
		if err := v.message(c.Body, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func (v *validator) selectNode(n *SelectNode, depth int) error {
	if n.Name == "" {
		return &ValidationError{Err: ErrEmptyArgumentName, Reason: "select argument has no name"}
	}
	visited, err := v.mark(n, n.Name)
	if err != nil {
		return err
	}
	if visited {
		return nil
	}

	hasOther := false
	for _, c := range n.Cases {
		if c.Name == "" {
			return &ValidationError{Err: ErrInvalidCaseName, Name: n.Name, Reason: "select case has no name"}
		}
		if c.Name == PluralOther {
			hasOther = true
		}
	}

	if v.opts.RequireOtherCase && !hasOther {
		return &ValidationError{
			Err:    ErrMissingOtherCase,
			Name:   n.Name,
			Reason: "branching construct must cover the other case",
		}
	}

	for _, c := range n.Cases {
		if err := v.message(c.Body, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// mark records a branching node and reports revisits, which can only occur
// in hand-built trees that share or cycle nodes. A revisit with
// AllowCircular set is skipped instead of re-walked so cycles terminate.
func (v *validator) mark(node Node, name string) (bool, error) {
	if _, dup := v.seen[node]; dup {
		if v.opts.AllowCircular {
			return true, nil
		}
		return true, &ValidationError{
			Err:    ErrCircularReference,
			Name:   name,
			Reason: "branching node appears more than once in the tree",
		}
	}
	v.seen[node] = struct{}{}
	return false, nil
}

func isCategoryName(name string) bool {
	switch name {
	case PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther:
		return true
	}
	return false
}

// isExactCase reports whether name is an explicit numeric match like "=5".
func isExactCase(name string) bool {
	if len(name) < 2 || name[0] != '=' {
		return false
	}
	return strings.IndexFunc(name[1:], func(r rune) bool { return r < '0' || r > '9' }) < 0
}
