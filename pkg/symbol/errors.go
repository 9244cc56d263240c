package symbol

import "errors"

var (
	// ErrUnbalancedScope is returned when a scope is closed that was never opened,
	// or when Pop would remove a scope boundary
	ErrUnbalancedScope = errors.New("unbalanced scope")

	// ErrEmptyTable is returned by Pop on a table without bindings
	ErrEmptyTable = errors.New("table is empty")

	// ErrSymbolLimit is returned by TryIntern once the interner is full
	ErrSymbolLimit = errors.New("symbol limit reached")
)
