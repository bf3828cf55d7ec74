package messageformat

// Default limits applied when no option overrides them.
const (
	// DefaultMaxDepth bounds message nesting.
	DefaultMaxDepth = 10
	// DefaultMaxLength bounds raw template length in bytes.
	DefaultMaxLength = 10000
	// DefaultCacheCapacity bounds the compiled template cache.
	DefaultCacheCapacity = 1000
)

// Values is the runtime value environment a template is formatted against.
type Values map[string]any

// Context carries the ambient formatting state: the target locale and the
// currency code used by the number formatter's currency style.
type Context struct {
	Locale   string
	Currency string
}

// MessageFormat compiles ICU-style message templates and formats them
// against runtime values. It is immutable after construction apart from
// the compiled template cache and explicit formatter registration, making
// it safe for concurrent use; registration itself belongs to the setup
// phase before concurrent formatting begins.
type MessageFormat struct {
	registry      *Registry
	cache         *templateCache
	maxDepth      int
	maxLength     int
	cacheCapacity int
	requireOther  bool
}

// New creates a MessageFormat engine with the given options.
func New(opts ...Option) (*MessageFormat, error) {
	mf := &MessageFormat{
		registry:      NewRegistry(),
		maxDepth:      DefaultMaxDepth,
		maxLength:     DefaultMaxLength,
		cacheCapacity: DefaultCacheCapacity,
		requireOther:  true,
	}

	for _, opt := range opts {
		if err := opt(mf); err != nil {
			return nil, err
		}
	}

	mf.cache = newTemplateCache(mf.cacheCapacity)

	return mf, nil
}

// Format renders a raw template against a value environment and a format
// context. The compiled form is cached per (locale, template) pair, so
// repeated formatting of the same template costs a cache lookup.
//
// Format fails only for structural problems: a template over the maximum
// length, a parse error, or a validation error. Missing values and type
// mismatches degrade to visible fallbacks in the output instead.
func (mf *MessageFormat) Format(template string, values Values, ctx Context) (string, error) {
	ct, err := mf.cache.getOrCompile(cacheKey(ctx.Locale, template), func() (*CompiledTemplate, error) {
		msg, err := mf.Parse(template)
		if err != nil {
			return nil, err
		}
		if err := mf.Validate(msg); err != nil {
			return nil, err
		}
		return mf.Compile(msg), nil
	})
	if err != nil {
		return "", err
	}

	return ct.Execute(values, ctx), nil
}

// Parse tokenizes and parses a raw template into a message tree, applying
// the engine's length and depth limits.
func (mf *MessageFormat) Parse(template string) (Message, error) {
	return parse(template, mf.maxLength, mf.maxDepth)
}

// Validate checks a message tree against the engine's validation settings.
func (mf *MessageFormat) Validate(msg Message) error {
	return Validate(msg, ValidateOptions{
		RequireOtherCase: mf.requireOther,
		MaxDepth:         mf.maxDepth,
	})
}

// Compile lowers a validated message tree into its executable form bound
// to the engine's formatter registry. The tree must have been validated;
// compiling an unvalidated tree with illegal case names is undefined.
func (mf *MessageFormat) Compile(msg Message) *CompiledTemplate {
	return compileMessage(msg, mf.registry)
}

// Register adds or replaces a value formatter by name. Registration is
// additive and idempotent by name. Callers must synchronize registration
// that happens after concurrent formatting has begun.
func (mf *MessageFormat) Register(name string, f Formatter) {
	mf.registry.Register(name, f)
}

// Parse parses a raw template with the default length and depth limits.
func Parse(template string) (Message, error) {
	return parse(template, DefaultMaxLength, DefaultMaxDepth)
}

func cacheKey(locale, template string) string {
	return locale + ":" + template
}
