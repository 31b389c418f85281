package commands

import (
	"golang.org/x/time/rate"

	"github.com/sipeed/picocmd/pkg/logger"
)

const throttledMessage = "Slow down: too many commands."

// Throttled gates an Executor with a token bucket. Lines that are not
// commands pass straight through and do not spend a token.
type Throttled struct {
	next     Executor
	limiter  *rate.Limiter
	catalyst string
}

// NewThrottled allows perSecond commands per second with bursts of burst.
// Command lines are recognised by the catalyst of next when it exposes one,
// and by DefaultCatalyst otherwise.
func NewThrottled(next Executor, perSecond float64, burst int) *Throttled {
	catalyst := DefaultCatalyst
	if c, ok := next.(interface{ Catalyst() string }); ok {
		catalyst = c.Catalyst()
	}
	return &Throttled{
		next:     next,
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		catalyst: catalyst,
	}
}

func (t *Throttled) Catalyst() string { return t.catalyst }

func (t *Throttled) Execute(line string) string {
	if HasCatalyst(line, t.catalyst) && !t.limiter.Allow() {
		logger.WarnCF("commands", "Command throttled", map[string]any{
			"limit": float64(t.limiter.Limit()),
			"burst": t.limiter.Burst(),
		})
		return throttledMessage
	}
	return t.next.Execute(line)
}
