package codes

import (
	"errors"
	"strconv"

	"woracle/core"

	"github.com/twitchtv/twirp"
)

const (
	// CustomCodeKey code key
	CustomCodeKey = "custom_code"
)

// Twirp wraps a service error as a twirp error with the woracle custom
// code attached, so rest responses carry both an http status and a code.
func Twirp(err error) twirp.Error {
	var code core.ErrorCode
	if !errors.As(err, &code) {
		return twirp.InternalErrorWith(err)
	}

	var twerr twirp.Error
	switch code {
	case core.ErrNotOwner, core.ErrNotPendingOwner, core.ErrRenounceDisabled, core.ErrOperationForbidden:
		twerr = twirp.NewError(twirp.PermissionDenied, err.Error())
	case core.ErrZeroCeiling, core.ErrInvalidNominee:
		twerr = twirp.NewError(twirp.InvalidArgument, err.Error())
	case core.ErrGovernanceNotFound:
		twerr = twirp.NotFoundError(err.Error())
	case core.ErrVersionConflict:
		twerr = twirp.NewError(twirp.Aborted, err.Error())
	case core.ErrZeroSupply, core.ErrInvalidReading, core.ErrInvalidSource:
		twerr = twirp.NewError(twirp.FailedPrecondition, err.Error())
	default:
		twerr = twirp.InternalErrorWith(err)
	}

	return twerr.WithMeta(CustomCodeKey, strconv.Itoa(int(code)))
}

// Status http status for a wrapped error
func Status(twerr twirp.Error) int {
	return twirp.ServerHTTPStatusFromErrorCode(twerr.Code())
}

// Get get custom code from a wrapped error
func Get(twerr twirp.Error) int {
	code, _ := strconv.Atoi(twerr.Meta(CustomCodeKey))
	return code
}
