package testchannel

import (
	"errors"
	"time"
)

// ErrChannelNotClosed is returned by DrainChannel when the channel is empty
// but still open.
var ErrChannelNotClosed = errors.New("channel is empty but not closed")

// DrainChannel attempts to receive from the given channel, blocking, until it is
// empty. It returns an error if the channel is not closed by the time it's empty.
func DrainChannel[V any](ch <-chan V) error {
	for {
		select {
		case _, ok := <-ch:
			if ok {
				continue
			}
			return nil
		case <-time.After(time.Millisecond):
			return ErrChannelNotClosed
		}
	}
}
