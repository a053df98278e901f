package sqlquery

import "errors"

var (
	// ErrUntranslatable the predicate uses something SQL cannot express, such
	// as a function call, a nested field path or an unmapped field.
	ErrUntranslatable = errors.New("sqlquery: untranslatable expression")

	// ErrNotStruct rows can only be scanned into struct types.
	ErrNotStruct = errors.New("sqlquery: entity is not a struct")
)
