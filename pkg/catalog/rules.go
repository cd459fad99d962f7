package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Built-in validation rule names.
const (
	RuleRequired                          = "required"
	RuleMinLength                         = "minlength"
	RuleMaxLength                         = "maxlength"
	RuleRangeLength                       = "rangelength"
	RuleRangeLengthOrBlank                = "rangelengthOrBlank"
	RuleMin                               = "min"
	RuleMax                               = "max"
	RuleRange                             = "range"
	RuleRangeFloat                        = "rangeFloat"
	RuleRangeOrBlank                      = "rangeOrBlank"
	RuleNumber                            = "number"
	RuleNumberOrBlank                     = "numberOrBlank"
	RuleDigits                            = "digits"
	RulePositiveIntegerOrBlank            = "positiveIntegerOrBlank"
	RulePositiveInteger                   = "positiveInteger"
	RulePositiveIntegerLessThanOneMillion = "positiveIntegerLessThanOneMillion"
	RuleIntegerOrBlank                    = "integerOrBlank"
	RuleInteger                           = "integer"
	RuleEmail                             = "email"
	RuleEmailOrBlank                      = "emailOrBlank"
	RuleURL                               = "url"
	RuleUsername                          = "username"
	RuleUsernameOrBlank                   = "usernameOrBlank"
	RuleMatch                             = "match"
	RuleDate                              = "date"
	RuleMinSelect                         = "minselect"
	RuleMaxSelect                         = "maxselect"
	RuleRangeSelect                       = "rangeselect"
	RuleUnique                            = "unique"
	RuleUniqueOrBlank                     = "uniqueOrBlank"
	RuleTime                              = "time"
	RuleTimeOrBlank                       = "timeOrBlank"
)

// defaultEntries is the English message table shipped with the plugin.
// Punctuation is kept exactly as authored, including the missing full stops.
var defaultEntries = []Entry{
	{RuleRequired, "This field is required."},
	{RuleMinLength, "This field must have a minimal length of $arg1."},
	{RuleMaxLength, "This field must have a maximal length of $arg1."},
	{RuleRangeLength, "This field must have a length between $arg1 and $arg2."},
	{RuleRangeLengthOrBlank, "This field must have a length between $arg1 and $arg2 or be blank"},
	{RuleMin, "Must be at least $arg1."},
	{RuleMax, "Can not be greater than $arg1."},
	{RuleRange, "Must be between $arg1 and $arg2."},
	{RuleRangeFloat, "Must be between $arg1 and $arg2"},
	{RuleRangeOrBlank, "Must be between $arg1 and $arg2 or blank."},
	{RuleNumber, "Must be a number."},
	{RuleNumberOrBlank, "Must be a number or blank."},
	{RuleDigits, "Must be digits."},
	{RulePositiveIntegerOrBlank, "Must be a positive number or blank."},
	{RulePositiveInteger, "Must be a positive number."},
	{RulePositiveIntegerLessThanOneMillion, "Must be a positive number (less than 1 000 000)."},
	{RuleIntegerOrBlank, "Must be a whole number or blank."},
	{RuleInteger, "Must be a whole number."},
	{RuleEmail, "Must be a valid E-Mail."},
	{RuleEmailOrBlank, "Must be a valid E-Mail or blank."},
	{RuleURL, "Must be a valid URL."},
	{RuleUsername, "Must be a valid username."},
	{RuleUsernameOrBlank, "Must be a valid username or blank."},
	{RuleMatch, "Must match the field above."},
	{RuleDate, "Must be a valid date."},
	{RuleMinSelect, "Select at least $arg1 checkboxes."},
	{RuleMaxSelect, "Select not more than $arg1 checkboxes."},
	{RuleRangeSelect, "Select between $arg1 and $arg2 checkboxes."},
	{RuleUnique, "All values must be unique."},
	// Same text as unique; the "or blank" wording was never authored.
	{RuleUniqueOrBlank, "All values must be unique."},
	{RuleTime, "Must be of format hh:mm."},
	{RuleTimeOrBlank, "Must be of format hh:mm or blank."},
}

var defaultCatalog = func() *Catalog {
	c := &Catalog{
		index:   make(map[string]int, len(defaultEntries)),
		entries: make([]Entry, 0, len(defaultEntries)),
	}
	for _, e := range defaultEntries {
		c.set(e.Rule, e.Template)
	}
	return c
}()

// Default returns the built-in English catalog. The returned value is shared
// and immutable.
func Default() *Catalog {
	return defaultCatalog
}

// DefaultArity returns the number of arguments each built-in rule supplies
// when its message is rendered. The returned map is a fresh copy.
func DefaultArity() map[string]int {
	arity := make(map[string]int, len(defaultEntries))
	for _, e := range defaultEntries {
		arity[e.Rule] = 0
	}
	for _, rule := range []string{RuleMinLength, RuleMaxLength, RuleMin, RuleMax, RuleMinSelect, RuleMaxSelect} {
		arity[rule] = 1
	}
	for _, rule := range []string{RuleRangeLength, RuleRangeLengthOrBlank, RuleRange, RuleRangeFloat, RuleRangeOrBlank, RuleRangeSelect} {
		arity[rule] = 2
	}
	return arity
}

// CheckArity verifies that every rule in arity is present in the catalog and
// that its template references exactly the expected number of arguments.
// Rules present in the catalog but absent from arity are not checked.
// All problems are reported together.
func (c *Catalog) CheckArity(arity map[string]int) error {
	var errs []error
	for _, rule := range slices.Sorted(maps.Keys(arity)) {
		tmpl, ok := c.Lookup(rule)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownRule, rule))
			continue
		}
		if got, want := Placeholders(tmpl), arity[rule]; got != want {
			errs = append(errs, fmt.Errorf("%w: %q references %d, expected %d", ErrArityMismatch, rule, got, want))
		}
	}
	return errors.Join(errs...)
}
