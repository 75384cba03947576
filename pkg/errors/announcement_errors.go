package errors

var (
	// Domain errors — used in usecase/repository
	ErrAnnouncementNotFound = NotFound("announcement not found")
	ErrLocationNotFound     = NotFound("location not found")
	ErrUserNotFound         = NotFound("user not found")
	ErrPresenceNotFound     = NotFound("no presence fix on file")
	ErrInvalidCoordinates   = InvalidArg("latitude must be in [-90,90] and longitude in [-180,180]")
	ErrInvalidRestriction   = InvalidArg("policy restriction key cannot be empty")
	ErrInvalidTimeWindow    = InvalidArg("startsAt must not be after endsAt")
	ErrNotAnnouncementOwner = Forbidden("only the author can modify an announcement")
)

func ErrAnnouncementLookupFailed(cause error) error {
	return Wrap(CodeInternal, "failed to load announcements", cause)
}
