package model

import (
	"errors"
	"fmt"
)

// Kind classifies analytics failures so callers can branch without
// matching error strings.
type Kind int

const (
	// KindUnknown is the zero value for errors that did not originate here.
	KindUnknown Kind = iota
	// KindInvalidParameter marks malformed or out-of-domain numeric input.
	KindInvalidParameter
	// KindInsufficientData marks a price series too short to compute from.
	KindInsufficientData
	// KindMissingData marks an absent price series for a requested symbol.
	KindMissingData
	// KindDataIntegrity marks a non-positive price breaking log-return math.
	KindDataIntegrity
	// KindDivisionByZero marks a zero portfolio volatility breaking the Sharpe ratio.
	KindDivisionByZero
)

// String returns the stable name of the kind, used in logs and error bodies.
func (k Kind) String() string {
	switch k {
	case KindInvalidParameter:
		return "invalid_parameter"
	case KindInsufficientData:
		return "insufficient_data"
	case KindMissingData:
		return "missing_data"
	case KindDataIntegrity:
		return "data_integrity"
	case KindDivisionByZero:
		return "division_by_zero"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by the analytics core.
// Symbol is set when the failure concerns a specific asset.
type Error struct {
	Kind   Kind
	Symbol string
	Msg    string
}

func (e *Error) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Symbol, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Errorf builds a typed analytics error.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// SymbolErrorf builds a typed analytics error attributed to one symbol.
func SymbolErrorf(kind Kind, symbol, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Symbol: symbol, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from err, unwrapping as needed.
// Returns KindUnknown for errors outside the taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
