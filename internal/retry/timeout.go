package retry

import (
	"context"
	"errors"
	"net"
	"os"
)

// IsReadTimeout reports whether err is a network read timeout. Those are expected while
// the upstream is rate limiting us, so their stack traces are not logged.
func IsReadTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
