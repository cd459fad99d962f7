package catalog

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Entry is a single rule-to-template association.
type Entry struct {
	Rule     string `json:"rule"`
	Template string `json:"template"`
}

// Catalog is an ordered, immutable mapping from validation rule names to
// message templates. All configuration happens in New, so a *Catalog is
// safe for concurrent use without synchronization.
type Catalog struct {
	// Rule name -> position in entries.
	index   map[string]int
	entries []Entry
}

// Option configures the Catalog during construction.
type Option func(*Catalog) error

// New creates a catalog from the given options. Without options the catalog
// is empty; use WithBase(Default()) to start from the built-in messages.
// Options are applied in order, so later options override earlier ones.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int)}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Catalog {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// WithBase copies every entry of base into the catalog, preserving order.
// A nil base is a no-op.
func WithBase(base *Catalog) Option {
	return func(c *Catalog) error {
		if base == nil {
			return nil
		}
		for _, e := range base.entries {
			c.set(e.Rule, e.Template)
		}
		return nil
	}
}

// WithMessage sets the template for a single rule.
func WithMessage(rule, template string) Option {
	return func(c *Catalog) error {
		if rule == "" {
			return ErrEmptyRule
		}
		c.set(rule, template)
		return nil
	}
}

// WithMessages sets templates for several rules at once. Rules that already
// exist keep their position; new rules are appended in alphabetical order.
func WithMessages(messages map[string]string) Option {
	return func(c *Catalog) error {
		return c.merge(messages)
	}
}

// Lookup returns the template registered for rule, byte-for-byte as authored.
// The second result is false when the rule is unknown.
func (c *Catalog) Lookup(rule string) (string, bool) {
	i, ok := c.index[rule]
	if !ok {
		return "", false
	}
	return c.entries[i].Template, true
}

// Has reports whether the catalog contains rule.
func (c *Catalog) Has(rule string) bool {
	_, ok := c.index[rule]
	return ok
}

// Message looks up rule and substitutes args into its placeholders.
// See Format for the substitution rules.
func (c *Catalog) Message(rule string, args ...any) (string, bool) {
	tmpl, ok := c.Lookup(rule)
	if !ok {
		return "", false
	}
	return Format(tmpl, args...), true
}

// Len returns the number of rules in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Rules returns the rule names in catalog order.
func (c *Catalog) Rules() []string {
	rules := make([]string, len(c.entries))
	for i, e := range c.entries {
		rules[i] = e.Rule
	}
	return rules
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// All iterates over rule/template pairs in catalog order.
func (c *Catalog) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range c.entries {
			if !yield(e.Rule, e.Template) {
				return
			}
		}
	}
}

func (c *Catalog) set(rule, template string) {
	if i, exists := c.index[rule]; exists {
		c.entries[i].Template = template
		return
	}
	c.index[rule] = len(c.entries)
	c.entries = append(c.entries, Entry{Rule: rule, Template: template})
}

func (c *Catalog) merge(messages map[string]string) error {
	if _, ok := messages[""]; ok {
		return ErrEmptyRule
	}
	for _, rule := range slices.Sorted(maps.Keys(messages)) {
		c.set(rule, messages[rule])
	}
	return nil
}
