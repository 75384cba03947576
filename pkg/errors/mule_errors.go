package errors

var (
	// Domain errors — used in usecase/repository
	ErrMuleMessageNotFound   = NotFound("mule message not found")
	ErrMuleInactive          = FailedPrecondition("mule is not active")
	ErrMuleCapacityExhausted = FailedPrecondition("mule has no space available")
	ErrDuplicateCustody      = FailedPrecondition("mule is already carrying this announcement to this destination")
	ErrMuleMessageExpired    = FailedPrecondition("mule message custody has expired")
	ErrMuleMessageTerminal   = FailedPrecondition("mule message is already delivered or expired")
	ErrNotCoLocated          = FailedPrecondition("mule and destination must be at the same place")
	ErrNotMuleCarrier        = Forbidden("only the carrying mule can deliver this message")
	ErrNotAuthor             = Forbidden("only the author can send an announcement via mule")
	ErrInvalidMuleSpace      = InvalidArg("maxSpaceBytes must be between 1 byte and 100 MiB")
)

func ErrAssignFailed(cause error) error {
	return Wrap(CodeInternal, "failed to assign mule message", cause)
}

func ErrDeliverFailed(cause error) error {
	return Wrap(CodeInternal, "failed to deliver mule message", cause)
}
