// Package messageformat compiles ICU-style message templates with variable
// substitution, locale-aware number/date/time formatting, and
// plural/select/selectordinal branching, and formats them against runtime
// values.
//
// The engine is a small compiler pipeline: a lexer tokenizes the raw
// template, a recursive-descent parser builds the message tree, a
// validator checks structural completeness, and a compiler lowers the tree
// into an executable closure. Compiled templates are memoized in a bounded
// LRU cache keyed by locale and template text, so repeated formatting of
// the same template is a cache lookup.
//
// # Basic Usage
//
// Create an engine and format templates against values and a locale:
//
//	mf, err := messageformat.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out, err := mf.Format(
//		"Hello {name}, you have {count, plural, one {# message} other {# messages}}.",
//		messageformat.Values{"name": "Ada", "count": 3},
//		messageformat.Context{Locale: "en-US"},
//	)
//	// Output: "Hello Ada, you have 3 messages."
//
// With count 1234 the other case renders "1,234 messages": the "#"
// placeholder is replaced with the operand formatted using the locale's
// grouping separators.
//
// # Branching
//
// Plural and selectordinal constructs pick a case body by the CLDR
// category of a numeric value; select dispatches on the stringified value:
//
//	{count, plural, offset:1 =0 {nobody} =1 {just you} one {you and # other} other {you and # others}}
//	{place, selectordinal, one {#st} two {#nd} few {#rd} other {#th}}
//	{gender, select, female {her} male {his} other {their}}
//
// The offset is subtracted before the category rule runs and before "#"
// substitution; explicit "=N" cases match the original value. Case
// selection falls back to "other" when the exact category has no case.
//
// # Formatters
//
// Arguments may name a format type and style:
//
//	{total, number, currency}   // $1,234.50, using Context.Currency (USD default)
//	{share, number, percent}    // 42%, at most two fraction digits
//	{when, date, long}          // January 2, 2006
//	{when, time, short}         // 3:04 PM
//
// Custom format types are registered by name, either at construction with
// WithFormatter or later with Register; re-registering a name replaces the
// prior formatter.
//
// # Degradation
//
// Format fails only for structural problems: template over the maximum
// length, malformed grammar, or failed validation. Bad runtime data never
// fails: a missing value renders the original {name} placeholder, a
// non-numeric plural operand falls back to the "other" case, and a value a
// formatter cannot interpret renders as its plain stringification. The
// design goal is: never crash on bad data, always on bad grammar.
//
// # Limits
//
// Templates over 10,000 bytes and nesting deeper than 10 levels are
// rejected; both bounds and the 1,000-entry cache capacity are adjustable
// through options:
//
//	mf, err := messageformat.New(
//		messageformat.WithMaxDepth(4),
//		messageformat.WithMaxLength(2048),
//		messageformat.WithCacheCapacity(100),
//		messageformat.WithoutOtherRequirement(),
//	)
//
// # Plural Categories
//
// PluralCategory and OrdinalCategory expose the CLDR category engine
// directly, with per-language rules for English, Russian, Arabic, Polish,
// French, Welsh, Irish, and a dozen more; unknown locales use the English
// rule. RequiredCategories reports which categories a locale's authored
// content must cover, for use by authoring tools.
//
// # Thread Safety
//
// Lexing, parsing, validation, compilation, and execution are pure;
// compiled templates are immutable and reusable across goroutines. The
// template cache serializes its mutation internally and deduplicates
// concurrent compilation of the same template. Formatter registration is a
// setup-phase operation: synchronize it externally if it must happen after
// concurrent formatting begins.
package messageformat
