package sdl

// Error is the single error kind for failed native calls.
//
// The native library keeps one process-global error slot that every call
// may overwrite, so the message is fetched at the moment of failure and
// captured here; it is never re-queried later.
type Error struct {
	Op  string // the operation that failed, e.g. "create window"
	Msg string // native diagnostic at the time of failure
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "sdl: " + e.Op + " failed"
	}
	return "sdl: " + e.Op + ": " + e.Msg
}

// newError builds an *Error for op, fetching the native diagnostic
// immediately so a later native call cannot clobber it.
func newError(op string) error {
	return &Error{Op: op, Msg: drv.GetError()}
}
