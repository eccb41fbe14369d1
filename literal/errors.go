// Package literal implements the set-valued literal types -- Strings,
// Counts, Booleans, AbstractEnums, NumericSet, Numbers -- and the setic
// operation family shared by all of them (spec §4.5-§4.7).
package literal

import "errors"

// Sentinel errors for literal operations (spec §7).
var (
	// ErrNotSingleton is returned by GetSingle on a set whose size != 1.
	ErrNotSingleton = errors.New("literal: not a singleton")

	// ErrInvalidArgument is returned by Any on an empty set, and by Numbers
	// arithmetic whose domain the operation does not cover (e.g. Pow of a
	// negative base by a non-integer exponent).
	ErrInvalidArgument = errors.New("literal: invalid argument")

	// ErrInvalidInterval is returned when constructing an interval with
	// min > max.
	ErrInvalidInterval = errors.New("literal: invalid interval, min > max")

	// ErrUnitsNotCommensurable is returned by Numbers arithmetic between
	// operands whose units are not commensurable.
	ErrUnitsNotCommensurable = errors.New("literal: units not commensurable")

	// ErrInvalidSerializedType is returned by UnmarshalJSON on an unknown
	// "type" discriminator.
	ErrInvalidSerializedType = errors.New("literal: invalid serialized type")

	// ErrIncompatibleTypes is returned when an operator is applied to
	// mismatched literal kinds (package expr returns it when an operator
	// receives a Booleans operand).
	ErrIncompatibleTypes = errors.New("literal: incompatible literal types")
)
