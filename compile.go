package messageformat

import (
	"strconv"
	"strings"
)

// CompiledTemplate is the immutable executable form of a validated
// message. It closes over the message tree and the registry in effect at
// compile time, and is safe for concurrent reuse.
type CompiledTemplate struct {
	reg  *Registry
	emit emitter
}

// emitter writes one node's rendering. Compilation lowers every node into
// an emitter once; execution only walks closures.
type emitter func(b *strings.Builder, env Values, rc *renderContext)

// renderContext threads the format context, the registry, and the stack of
// formatted plural operands for "#" substitution through one execution.
type renderContext struct {
	reg  *Registry
	ctx  Context
	hash []string
}

// Execute renders the template against a value environment and a format
// context. It never fails: missing values and type mismatches degrade to
// visible fallbacks instead of errors.
func (ct *CompiledTemplate) Execute(values Values, ctx Context) string {
	var b strings.Builder
	ct.emit(&b, values, &renderContext{reg: ct.reg, ctx: ctx})
	return b.String()
}

// compileMessage lowers a validated message into a CompiledTemplate.
// Compilation is total: behavior on an unvalidated tree with illegal case
// names is undefined and remains the caller's responsibility.
func compileMessage(msg Message, reg *Registry) *CompiledTemplate {
	return &CompiledTemplate{reg: reg, emit: compileNodes(msg)}
}

func compileNodes(msg Message) emitter {
	emitters := make([]emitter, len(msg))
	for i, node := range msg {
		emitters[i] = compileNode(node)
	}

	if len(emitters) == 1 {
		return emitters[0]
	}
	return func(b *strings.Builder, env Values, rc *renderContext) {
		for _, emit := range emitters {
			emit(b, env, rc)
		}
	}
}

func compileNode(node Node) emitter {
	switch n := node.(type) {
	case *LiteralNode:
		text := n.Text
		return func(b *strings.Builder, _ Values, _ *renderContext) {
			b.WriteString(text)
		}
	case *HashNode:
		return func(b *strings.Builder, _ Values, rc *renderContext) {
			if len(rc.hash) > 0 {
				b.WriteString(rc.hash[len(rc.hash)-1])
			} else {
				b.WriteByte('#')
			}
		}
	case *ArgumentNode:
		return compileArgument(n)
	case *PluralNode:
		return compilePlural(n)
	case *SelectNode:
		return compileSelect(n)
	default:
		return func(*strings.Builder, Values, *renderContext) {}
	}
}

// compileArgument emits the named value. A missing value renders the
// original placeholder unchanged, a deliberate visible failure signal.
func compileArgument(n *ArgumentNode) emitter {
	name, kind, style := n.Name, n.Kind, n.Style
	placeholder := "{" + name + "}"

	return func(b *strings.Builder, env Values, rc *renderContext) {
		value, ok := env[name]
		if !ok {
			b.WriteString(placeholder)
			return
		}

		if kind != "" {
			if f, ok := rc.reg.Formatter(kind); ok {
				b.WriteString(f.Format(value, style, rc.ctx))
				return
			}
		}

		b.WriteString(stringify(value))
	}
}

// compilePlural precompiles every case body and selects among them at
// execution time. Explicit "=N" cases match the original operand; the
// category rule and "#" substitution see the operand with the offset
// subtracted.
func compilePlural(n *PluralNode) emitter {
	name, offset := n.Name, n.Offset
	placeholder := "{" + name + "}"

	categoryKind := "plural"
	if n.Ordinal {
		categoryKind = "selectordinal"
	}
	ordinal := n.Ordinal

	caseNames := make([]string, len(n.Cases))
	compiled := make([]emitter, len(n.Cases))
	exactValues := make([]float64, len(n.Cases))
	exact := make([]bool, len(n.Cases))
	for i, c := range n.Cases {
		caseNames[i] = c.Name
		compiled[i] = compileNodes(c.Body)
		if isExactCase(c.Name) {
			if v, err := strconv.ParseFloat(c.Name[1:], 64); err == nil {
				exactValues[i], exact[i] = v, true
			}
		}
	}

	fallbackIdx := caseIndex(caseNames, PluralOther)
	if fallbackIdx < 0 {
		fallbackIdx = caseIndex(caseNames, PluralOne)
	}
	if fallbackIdx < 0 {
		fallbackIdx = 0
	}

	return func(b *strings.Builder, env Values, rc *renderContext) {
		value, ok := env[name]
		if !ok {
			b.WriteString(placeholder)
			return
		}

		num, isNum := toNumber(value)
		if !isNum {
			rc.hash = append(rc.hash, stringify(value))
			compiled[fallbackIdx](b, env, rc)
			rc.hash = rc.hash[:len(rc.hash)-1]
			return
		}

		m := num - offset

		idx := -1
		for i := range compiled {
			if exact[i] && exactValues[i] == num {
				idx = i
				break
			}
		}
		if idx < 0 {
			category := resolveCategory(rc, categoryKind, ordinal, m)
			for i := range caseNames {
				if !exact[i] && caseNames[i] == category {
					idx = i
					break
				}
			}
		}
		if idx < 0 {
			idx = fallbackIdx
		}

		rc.hash = append(rc.hash, formatHashNumber(rc, m))
		compiled[idx](b, env, rc)
		rc.hash = rc.hash[:len(rc.hash)-1]
	}
}

// resolveCategory asks the registered plural/selectordinal formatter for
// the category, falling back to the engine directly if the formatter was
// replaced by something that is no longer registered.
func resolveCategory(rc *renderContext, kind string, ordinal bool, m float64) string {
	if f, ok := rc.reg.Formatter(kind); ok {
		return f.Format(m, "", rc.ctx)
	}
	if ordinal {
		return OrdinalCategory(rc.ctx.Locale, m)
	}
	return PluralCategory(rc.ctx.Locale, m)
}

// formatHashNumber renders the "#" replacement with locale-correct
// grouping separators via the registered number formatter.
func formatHashNumber(rc *renderContext, m float64) string {
	if f, ok := rc.reg.Formatter("number"); ok {
		return f.Format(m, "", rc.ctx)
	}
	return strconv.FormatFloat(m, 'f', -1, 64)
}

func compileSelect(n *SelectNode) emitter {
	name := n.Name
	placeholder := "{" + name + "}"

	caseNames := make([]string, len(n.Cases))
	compiled := make([]emitter, len(n.Cases))
	for i, c := range n.Cases {
		caseNames[i] = c.Name
		compiled[i] = compileNodes(c.Body)
	}
	otherIdx := caseIndex(caseNames, PluralOther)

	return func(b *strings.Builder, env Values, rc *renderContext) {
		value, ok := env[name]
		if !ok {
			if otherIdx >= 0 {
				compiled[otherIdx](b, env, rc)
			} else {
				b.WriteString(placeholder)
			}
			return
		}

		key := stringify(value)
		if f, ok := rc.reg.Formatter("select"); ok {
			key = f.Format(value, "", rc.ctx)
		}

		idx := caseIndex(caseNames, key)
		if idx < 0 {
			idx = otherIdx
		}
		if idx < 0 {
			idx = 0
		}
		if idx < len(compiled) {
			compiled[idx](b, env, rc)
		}
	}
}

func caseIndex(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
