package utils

import (
	"time"
)

// RetryHandler retries a function with a fixed interval until it succeeds,
// the attempt cap is reached or the overall timeout expires. It is meant for
// outbound API clients only; the aggregation core must stay retry-free.
type RetryHandler struct {
	timeout  time.Duration
	interval time.Duration
	attempts int
}

func NewRetryHandler(timeout, interval time.Duration, attempts int) RetryHandler {
	return RetryHandler{
		timeout:  timeout,
		interval: interval,
		attempts: attempts,
	}
}

func (r RetryHandler) Do(fn func() error) error {
	deadline := time.Now().Add(r.timeout)

	var err error
	for i := 0; i < r.attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}

		if time.Now().Add(r.interval).After(deadline) {
			return err
		}
		time.Sleep(r.interval)
	}

	return err
}
