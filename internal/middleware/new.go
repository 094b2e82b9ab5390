package middleware

import (
	"golang.org/x/time/rate"

	"voice-timesheet/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the middleware bundle. perMin is the allowed number of
// process submissions per minute; zero disables limiting.
func New(l log.Logger, perMin int) Middleware {
	var limiter *rate.Limiter
	if perMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin)
	}

	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
