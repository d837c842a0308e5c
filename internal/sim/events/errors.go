package events

const (
	// Argument validation.
	ErrBadRequest    = "E_BAD_REQUEST"
	ErrInvalidTarget = "E_INVALID_TARGET"

	// Resource/capacity layer.
	ErrNoResource  = "E_NO_RESOURCE"
	ErrNoSpace     = "E_NO_SPACE"
	ErrConflict    = "E_CONFLICT"
	ErrNotAccepted = "E_NOT_ACCEPTED"
)

var knownCodes = map[string]struct{}{
	ErrBadRequest:    {},
	ErrInvalidTarget: {},
	ErrNoResource:    {},
	ErrNoSpace:       {},
	ErrConflict:      {},
	ErrNotAccepted:   {},
}

func IsKnownCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := knownCodes[code]
	return ok
}
