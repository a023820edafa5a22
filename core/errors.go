package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrOperationForbidden operation forbidden
	ErrOperationForbidden ErrorCode = 100001

	// ErrNotOwner caller is not the current owner
	ErrNotOwner ErrorCode = 100100
	// ErrNotPendingOwner caller is not the nominated pending owner
	ErrNotPendingOwner ErrorCode = 100101
	// ErrRenounceDisabled renouncing ownership is permanently disabled
	ErrRenounceDisabled ErrorCode = 100102
	// ErrZeroCeiling price ceiling must be strictly positive
	ErrZeroCeiling ErrorCode = 100103
	// ErrInvalidNominee empty or invalid pending owner
	ErrInvalidNominee ErrorCode = 100104
	// ErrGovernanceNotFound governance row missing
	ErrGovernanceNotFound ErrorCode = 100105
	// ErrVersionConflict concurrent governance update lost the race
	ErrVersionConflict ErrorCode = 100106

	// ErrZeroSupply outstanding supply is zero, price undefined
	ErrZeroSupply ErrorCode = 100200
	// ErrInvalidSource missing upstream source binding
	ErrInvalidSource ErrorCode = 100201
	// ErrInvalidReading upstream returned an unparsable or negative value
	ErrInvalidReading ErrorCode = 100202
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
