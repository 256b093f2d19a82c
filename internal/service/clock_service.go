package service

import "time"

// Clock supplies the monotonic timestamp the host hands to every operation.
// The ledger core never reads time itself; handlers take one reading per
// request and pass it down.
type Clock interface {
	Now() uint64
}

type systemClock struct{}

func NewSystemClock() Clock {
	return &systemClock{}
}

// Now returns milliseconds since the Unix epoch. Two bookings landing inside
// the same millisecond collide on the table key and the second caller
// retries; the clock never disambiguates.
func (c *systemClock) Now() uint64 {
	return uint64(time.Now().UnixMilli())
}
