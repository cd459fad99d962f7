package catalog

import (
	"fmt"
	"regexp"
	"strconv"
)

// placeholderRe matches $argN with N >= 1. Digits are matched greedily, so
// $arg10 is read as the tenth argument rather than $arg1 followed by "0".
var placeholderRe = regexp.MustCompile(`\$arg([1-9][0-9]*)`)

// Format substitutes positional placeholders in template. $arg1 is replaced
// with the string form of args[0], $arg2 with args[1], and so on. Everything
// else in the template is kept verbatim.
//
// Extra arguments are ignored. A placeholder without a matching argument is
// left in the output as-is; use FormatStrict to treat that as an error.
//
// Example:
//
//	Format("Must be between $arg1 and $arg2.", 1, 10)
//	// "Must be between 1 and 10."
func Format(template string, args ...any) string {
	if len(args) == 0 {
		return template
	}
	return placeholderRe.ReplaceAllStringFunc(template, func(token string) string {
		if n := argIndex(token); n <= len(args) {
			return fmt.Sprint(args[n-1])
		}
		return token
	})
}

// FormatStrict is like Format but returns ErrMissingArgument when template
// references an argument that was not supplied.
func FormatStrict(template string, args ...any) (string, error) {
	if n := Placeholders(template); n > len(args) {
		return "", fmt.Errorf("%w: template references $arg%d, got %d argument(s)", ErrMissingArgument, n, len(args))
	}
	return Format(template, args...), nil
}

// Placeholders returns the highest placeholder index referenced by template,
// or 0 when it has none.
func Placeholders(template string) int {
	highest := 0
	for _, token := range placeholderRe.FindAllString(template, -1) {
		highest = max(highest, argIndex(token))
	}
	return highest
}

// argIndex parses N out of a "$argN" token matched by placeholderRe.
func argIndex(token string) int {
	n, err := strconv.Atoi(token[len("$arg"):])
	if err != nil {
		// Index overflows int; no argument list can satisfy it.
		return int(^uint(0) >> 1)
	}
	return n
}
