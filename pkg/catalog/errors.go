package catalog

import "errors"

var (
	ErrEmptyRule       = errors.New("catalog: rule name cannot be empty")
	ErrInvalidFile     = errors.New("catalog: invalid messages file")
	ErrMissingArgument = errors.New("catalog: missing placeholder argument")
	ErrArityMismatch   = errors.New("catalog: placeholder count does not match rule arity")
	ErrUnknownRule     = errors.New("catalog: unknown rule")
)
