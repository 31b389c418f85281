package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sipeed/picocmd/pkg/logger"
)

const DefaultCatalyst = "."

const nullMessage = "Exception Caught: Null Message!"

// Dispatcher executes command lines against a Registry. It keeps no state
// between calls.
type Dispatcher struct {
	reg      *Registry
	catalyst string
}

type Option func(*Dispatcher)

// WithCatalyst sets the prefix that marks a line as a command.
func WithCatalyst(catalyst string) Option {
	return func(d *Dispatcher) {
		if catalyst != "" {
			d.catalyst = catalyst
		}
	}
}

func NewDispatcher(reg *Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{reg: reg, catalyst: DefaultCatalyst}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Catalyst() string { return d.catalyst }

func (d *Dispatcher) Registry() *Registry { return d.reg }

// Execute runs line and always returns text: the handler's reply, an empty
// string, or a description of what went wrong.
func (d *Dispatcher) Execute(line string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorCF("commands", "Handler panicked", map[string]any{
				"line":  line,
				"panic": fmt.Sprint(r),
			})
			reply = failureMessage(fmt.Errorf("%v", r))
		}
	}()

	reply, err := d.run(line)
	if err == nil {
		return reply
	}

	var (
		ie *invocationError
		ce *CoercionError
	)
	switch {
	case errors.As(err, &ie):
		return failureMessage(ie.err)
	case errors.Is(err, ErrNotACommand):
		return fmt.Sprintf("Supplied command does not start with catalyst, \"%s\".", d.catalyst)
	case errors.Is(err, ErrAliasNotFound):
		return fmt.Sprintf("Function for command %s not found.", aliasOf(err))
	case errors.Is(err, ErrInstanceNotFound):
		return fmt.Sprintf("Class for function %s not found.", aliasOf(err))
	case errors.As(err, &ce):
		return fmt.Sprintf("Argument Mismatch: Required = \"%s\", received = \"%s\"", ce.Shape.Usage(), ce.Payload())
	}
	return failureMessage(err)
}

func (d *Dispatcher) run(line string) (string, error) {
	alias, tokens, ok := Tokenize(line, d.catalyst)
	if !ok {
		return "", ErrNotACommand
	}

	h, ok := d.reg.Resolve(alias)
	if !ok {
		logger.DebugCF("commands", "Unknown command", map[string]any{
			"alias":       alias,
			"suggestions": d.reg.Suggest(alias),
		})
		return "", &aliasError{alias: alias, err: ErrAliasNotFound}
	}

	id, ok := d.reg.OwnerOf(h)
	if !ok {
		return "", &aliasError{alias: alias, err: ErrInstanceNotFound}
	}
	inst, err := d.reg.InstanceFor(id)
	if err != nil {
		return "", &aliasError{alias: alias, err: err}
	}

	args, err := Coerce(tokens, h.Params)
	if err != nil {
		logger.DebugCF("commands", "Argument mismatch", map[string]any{
			"alias":  alias,
			"tokens": tokenTexts(tokens),
			"error":  err.Error(),
		})
		return "", err
	}

	if h.Handler == nil {
		return "", nil
	}
	out, err := h.Handler(inst, args)
	if err != nil {
		logger.DebugCF("commands", "Handler failed", map[string]any{
			"alias": alias,
			"error": err.Error(),
		})
		return "", &invocationError{err: err}
	}
	if h.Returns != ReturnString {
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

// aliasError carries the alias a resolution failure was about.
type aliasError struct {
	alias string
	err   error
}

func (e *aliasError) Error() string { return e.alias + ": " + e.err.Error() }
func (e *aliasError) Unwrap() error { return e.err }

// invocationError marks an error returned by a handler so it is shown as-is.
type invocationError struct {
	err error
}

func (e *invocationError) Error() string { return e.err.Error() }
func (e *invocationError) Unwrap() error { return e.err }

func aliasOf(err error) string {
	var ae *aliasError
	if errors.As(err, &ae) {
		return ae.alias
	}
	return ""
}

func failureMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return nullMessage
}
