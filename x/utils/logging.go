package utils

import (
	"time"

	"github.com/clasp-net/clasp"
)

// Logging reports every transaction to the logger carried in the
// context, with its duration and outcome.
type Logging struct{}

var _ clasp.Decorator = Logging{}

// NewLogging returns a transaction logging decorator.
func NewLogging() Logging {
	return Logging{}
}

// Check logs the outcome of the check, successes at debug level.
func (l Logging) Check(ctx clasp.Context, store clasp.KVStore, tx clasp.Tx, next clasp.Checker) (*clasp.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, true)
	return res, err
}

// Deliver logs the outcome of the delivery, failures as errors.
func (l Logging) Deliver(ctx clasp.Context, store clasp.KVStore, tx clasp.Tx, next clasp.Deliverer) (*clasp.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, false)
	return res, err
}

// logDuration emits one entry per call with the elapsed time. The
// entry is written even for an empty result message, the surrounding
// fields still carry the call information.
func logDuration(ctx clasp.Context, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := clasp.GetLogger(ctx).With("duration", delta/time.Microsecond)

	switch {
	case err != nil:
		logger.With("err", err).Error(msg)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
