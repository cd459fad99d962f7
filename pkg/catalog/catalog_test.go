package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ketchup/pkg/catalog"
)

var allRules = []string{
	"required", "minlength", "maxlength", "rangelength", "rangelengthOrBlank",
	"min", "max", "range", "rangeFloat", "rangeOrBlank", "number", "numberOrBlank",
	"digits", "positiveIntegerOrBlank", "positiveInteger", "positiveIntegerLessThanOneMillion",
	"integerOrBlank", "integer", "email", "emailOrBlank", "url", "username",
	"usernameOrBlank", "match", "date", "minselect", "maxselect", "rangeselect",
	"unique", "uniqueOrBlank", "time", "timeOrBlank",
}

func TestDefault(t *testing.T) {
	t.Parallel()

	c := catalog.Default()

	t.Run("contains every rule in order", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, allRules, c.Rules())
		require.Equal(t, 32, c.Len())
	})

	t.Run("every rule has a non-empty template", func(t *testing.T) {
		t.Parallel()
		for _, rule := range allRules {
			tmpl, ok := c.Lookup(rule)
			require.True(t, ok, rule)
			require.NotEmpty(t, tmpl, rule)
		}
	})

	t.Run("rule names are unique", func(t *testing.T) {
		t.Parallel()
		seen := make(map[string]bool)
		for _, rule := range c.Rules() {
			require.False(t, seen[rule], "duplicate rule %q", rule)
			seen[rule] = true
		}
	})

	t.Run("templates are kept verbatim", func(t *testing.T) {
		t.Parallel()
		tests := []struct{ rule, want string }{
			{"required", "This field is required."},
			{"minlength", "This field must have a minimal length of $arg1."},
			{"range", "Must be between $arg1 and $arg2."},
			{"rangeFloat", "Must be between $arg1 and $arg2"},
			{"rangelengthOrBlank", "This field must have a length between $arg1 and $arg2 or be blank"},
			{"positiveIntegerLessThanOneMillion", "Must be a positive number (less than 1 000 000)."},
			{"timeOrBlank", "Must be of format hh:mm or blank."},
		}
		for _, tt := range tests {
			got, ok := c.Lookup(tt.rule)
			require.True(t, ok)
			assert.Equal(t, tt.want, got, tt.rule)
		}
	})

	t.Run("unique and uniqueOrBlank share their text", func(t *testing.T) {
		t.Parallel()
		unique, _ := c.Lookup(catalog.RuleUnique)
		uniqueOrBlank, _ := c.Lookup(catalog.RuleUniqueOrBlank)
		require.Equal(t, unique, uniqueOrBlank)
	})

	t.Run("returns the same shared instance", func(t *testing.T) {
		t.Parallel()
		require.Same(t, catalog.Default(), catalog.Default())
	})
}

func TestCatalog_Lookup(t *testing.T) {
	t.Parallel()

	c := catalog.Default()

	t.Run("unknown rule is absent", func(t *testing.T) {
		t.Parallel()
		tmpl, ok := c.Lookup("not_a_real_rule")
		require.False(t, ok)
		require.Empty(t, tmpl)
		require.False(t, c.Has("not_a_real_rule"))
	})

	t.Run("empty rule is absent", func(t *testing.T) {
		t.Parallel()
		_, ok := c.Lookup("")
		require.False(t, ok)
	})

	t.Run("is case sensitive", func(t *testing.T) {
		t.Parallel()
		_, ok := c.Lookup("Required")
		require.False(t, ok)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		first, _ := c.Lookup(catalog.RuleEmail)
		for range 10 {
			again, _ := c.Lookup(catalog.RuleEmail)
			require.Equal(t, first, again)
		}
	})
}

func TestCatalog_Message(t *testing.T) {
	t.Parallel()

	c := catalog.Default()

	msg, ok := c.Message(catalog.RuleMinLength, 5)
	require.True(t, ok)
	require.Equal(t, "This field must have a minimal length of 5.", msg)

	msg, ok = c.Message(catalog.RuleRangeSelect, 2, 4)
	require.True(t, ok)
	require.Equal(t, "Select between 2 and 4 checkboxes.", msg)

	_, ok = c.Message("nope", 1)
	require.False(t, ok)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("empty without options", func(t *testing.T) {
		t.Parallel()
		c, err := catalog.New()
		require.NoError(t, err)
		require.Zero(t, c.Len())
		require.Empty(t, c.Rules())
	})

	t.Run("copies the base catalog", func(t *testing.T) {
		t.Parallel()
		c, err := catalog.New(catalog.WithBase(catalog.Default()))
		require.NoError(t, err)
		require.Equal(t, catalog.Default().Entries(), c.Entries())
	})

	t.Run("nil base is ignored", func(t *testing.T) {
		t.Parallel()
		c, err := catalog.New(catalog.WithBase(nil))
		require.NoError(t, err)
		require.Zero(t, c.Len())
	})

	t.Run("override keeps position and leaves base untouched", func(t *testing.T) {
		t.Parallel()
		c, err := catalog.New(
			catalog.WithBase(catalog.Default()),
			catalog.WithMessage(catalog.RuleRequired, "Please fill in this field."),
		)
		require.NoError(t, err)

		require.Equal(t, catalog.RuleRequired, c.Rules()[0])
		got, _ := c.Lookup(catalog.RuleRequired)
		require.Equal(t, "Please fill in this field.", got)

		orig, _ := catalog.Default().Lookup(catalog.RuleRequired)
		require.Equal(t, "This field is required.", orig)
	})

	t.Run("new rules are appended alphabetically", func(t *testing.T) {
		t.Parallel()
		c, err := catalog.New(
			catalog.WithMessage("zip", "Must be a valid ZIP code."),
			catalog.WithMessages(map[string]string{
				"phone": "Must be a valid phone number.",
				"iban":  "Must be a valid IBAN.",
				"zip":   "Must be a valid postcode.",
			}),
		)
		require.NoError(t, err)
		require.Equal(t, []string{"zip", "iban", "phone"}, c.Rules())

		got, _ := c.Lookup("zip")
		require.Equal(t, "Must be a valid postcode.", got)
	})

	t.Run("rejects empty rule names", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(catalog.WithMessage("", "x"))
		require.ErrorIs(t, err, catalog.ErrEmptyRule)

		_, err = catalog.New(catalog.WithMessages(map[string]string{"": "x"}))
		require.ErrorIs(t, err, catalog.ErrEmptyRule)
	})

	t.Run("MustNew panics on error", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() {
			catalog.MustNew(catalog.WithMessage("", "x"))
		})
	})
}

func TestCatalog_Copies(t *testing.T) {
	t.Parallel()

	c := catalog.MustNew(catalog.WithBase(catalog.Default()))

	rules := c.Rules()
	rules[0] = "mutated"
	entries := c.Entries()
	entries[0].Template = "mutated"

	require.Equal(t, catalog.RuleRequired, c.Rules()[0])
	got, _ := c.Lookup(catalog.RuleRequired)
	require.Equal(t, "This field is required.", got)
}

func TestCatalog_All(t *testing.T) {
	t.Parallel()

	var rules []string
	for rule, tmpl := range catalog.Default().All() {
		require.NotEmpty(t, tmpl)
		rules = append(rules, rule)
	}
	require.Equal(t, allRules, rules)

	t.Run("stops early", func(t *testing.T) {
		t.Parallel()
		n := 0
		for range catalog.Default().All() {
			n++
			if n == 3 {
				break
			}
		}
		require.Equal(t, 3, n)
	})
}
