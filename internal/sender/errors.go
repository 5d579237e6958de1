package sender

import "errors"

// ErrConcurrentSend is returned when Send is called while a prior Send on
// the same Sender is still in flight. The codec is exclusively owned by
// one caller at a time; this guard makes that discipline
// enforceable instead of merely documented.
var ErrConcurrentSend = errors.New("sender: concurrent Send call")
