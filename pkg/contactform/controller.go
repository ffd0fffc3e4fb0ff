package contactform

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/Alijeyrad/portfolio_backend/pkg/contactapi"
)

type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Receipt is the endpoint's answer to an accepted submission.
type Receipt struct {
	Message         string
	DevelopmentMode bool
	Duplicate       bool
	RequestID       string
}

// Transport delivers one submission. Failures should be *SubmitError.
type Transport interface {
	Send(ctx context.Context, sub contactapi.Submission, idempotencyKey string) (*Receipt, error)
}

type Option func(*Controller)

// WithKeyGenerator replaces the idempotency key source.
func WithKeyGenerator(fn func() string) Option {
	return func(c *Controller) { c.newKey = fn }
}

// WithFields pre-fills the form.
func WithFields(f Fields) Option {
	return func(c *Controller) { c.fields = f }
}

type transition struct{ from, to State }

// Controller owns one contact form. It is safe for concurrent use; at most
// one submission is in flight at a time.
type Controller struct {
	transport Transport
	newKey    func() string

	mu        sync.Mutex
	state     State
	fields    Fields
	errs      ValidationErrors
	lastErr   *SubmitError
	key       string
	observers []func(from, to State)
}

func New(transport Transport, opts ...Option) *Controller {
	c := &Controller{
		transport: transport,
		newKey:    uuid.NewString,
		state:     StateEditing,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.key = c.newKey()
	c.errs = Validate(c.fields)
	return c
}

// OnTransition registers fn to be called after every state change. Observers
// run outside the controller lock.
func (c *Controller) OnTransition(fn func(from, to State)) {
	c.mu.Lock()
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Fields() Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// SetField updates one field and re-validates the form.
func (c *Controller) SetField(field Field, value string) {
	c.mu.Lock()
	c.fields.set(field, value)
	c.errs = Validate(c.fields)
	c.mu.Unlock()
}

func (c *Controller) SetWantsReply(v bool) {
	c.mu.Lock()
	c.fields.WantsReply = v
	c.errs = Validate(c.fields)
	c.mu.Unlock()
}

// Errors returns the current per-field validation errors.
func (c *Controller) Errors() ValidationErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(ValidationErrors, len(c.errs))
	for k, v := range c.errs {
		out[k] = v
	}
	return out
}

// LastError is the most recent submission failure, nil after a success or a
// new message.
func (c *Controller) LastError() *SubmitError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// IdempotencyKey identifies the message being composed. Retries after a
// failure reuse it.
func (c *Controller) IdempotencyKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.key
}

// Preview is the message as displayed, with the contact block when a reply is
// requested. The stored message is never modified.
func (c *Controller) Preview() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ComposePreview(c.fields.Message, c.fields.Email, c.fields.Phone, c.fields.WantsReply)
}

// Submit validates and sends the form once. Invalid forms return
// ValidationErrors without touching the network.
func (c *Controller) Submit(ctx context.Context) (*Receipt, error) {
	c.mu.Lock()
	switch c.state {
	case StateSubmitting:
		c.mu.Unlock()
		return nil, ErrSubmitInProgress
	case StateSucceeded:
		c.mu.Unlock()
		return nil, ErrAlreadySent
	}

	c.errs = Validate(c.fields)
	if !c.errs.Valid() {
		errs := c.errs
		c.mu.Unlock()
		return nil, errs
	}

	sub := c.fields.Submission()
	key := c.key
	c.lastErr = nil
	moved := c.moveLocked(StateSubmitting)
	c.mu.Unlock()
	c.notify(moved)

	receipt, err := c.transport.Send(ctx, sub, key)

	c.mu.Lock()
	if err != nil {
		c.lastErr = asSubmitError(err)
		moved = c.moveLocked(StateFailed)
		moved = append(moved, c.moveLocked(StateEditing)...)
		c.mu.Unlock()
		c.notify(moved)
		return nil, c.lastErr
	}

	c.fields = Fields{}
	c.errs = Validate(c.fields)
	moved = c.moveLocked(StateSucceeded)
	c.mu.Unlock()
	c.notify(moved)
	return receipt, nil
}

// SendAnother leaves the success state with an empty form and a new
// idempotency key.
func (c *Controller) SendAnother() {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return
	}
	c.fields = Fields{}
	c.errs = Validate(c.fields)
	c.lastErr = nil
	c.key = c.newKey()
	moved := c.moveLocked(StateEditing)
	c.mu.Unlock()
	c.notify(moved)
}

func (c *Controller) moveLocked(to State) []transition {
	from := c.state
	if from == to {
		return nil
	}
	c.state = to
	return []transition{{from: from, to: to}}
}

func (c *Controller) notify(moved []transition) {
	if len(moved) == 0 {
		return
	}
	c.mu.Lock()
	observers := append([]func(from, to State){}, c.observers...)
	c.mu.Unlock()

	for _, t := range moved {
		for _, fn := range observers {
			fn(t.from, t.to)
		}
	}
}

func asSubmitError(err error) *SubmitError {
	var se *SubmitError
	if errors.As(err, &se) {
		return se
	}
	kind := contactapi.KindNetwork
	if errors.Is(err, context.DeadlineExceeded) {
		kind = contactapi.KindTimeout
	}
	return &SubmitError{Kind: kind, Message: GenericFailure, Err: err}
}
