package errors

var (
	ErrPeerServiceStopped = FailedPrecondition("peer propagation service is not running")
	ErrNotDecentralized   = InvalidArg("only DECENTRALIZED announcements can be gossiped")
	ErrUnknownPeer        = NotFound("peer not discovered")
	ErrTransportClosed    = Unavailable("peer transport is closed")
)
