package contactclient

import (
	"context"
	"errors"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
)

// Input limits. They shape what the form accepts; the server stays the
// authority on validity.
const (
	MaxNameLength    = 50
	MaxEmailLength   = 100
	MaxSubjectLength = 150
	MaxMessageLength = 1000
)

// FallbackErrorMessage is shown when a failure carries no server message.
const FallbackErrorMessage = "Please try again or email me directly."

// SentDisplayDuration is how long the form stays Sent before going Idle.
const SentDisplayDuration = 3 * time.Second

var (
	// ErrSubmitInFlight is returned by Submit while a previous submit is running.
	ErrSubmitInFlight = errors.New("contactclient: submission already in flight")
	// ErrJustSent is returned by Submit while the form is still showing Sent.
	ErrJustSent = errors.New("contactclient: submission just sent")
)

type State int

const (
	Idle State = iota
	Submitting
	Sent
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Sent:
		return "sent"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Form holds the five contact fields and tracks one submit cycle at a time.
// It is safe for concurrent use.
type Form struct {
	sender Sender

	mu         sync.Mutex
	fields     types.ContactRequest
	state      State
	lastErr    string
	sentFor    time.Duration
	resetTimer *time.Timer
}

func NewForm(sender Sender) *Form {
	return &Form{sender: sender, sentFor: SentDisplayDuration}
}

func (f *Form) SetFirstName(v string) { f.set(&f.fields.FirstName, v, MaxNameLength) }
func (f *Form) SetLastName(v string)  { f.set(&f.fields.LastName, v, MaxNameLength) }
func (f *Form) SetEmail(v string)     { f.set(&f.fields.Email, v, MaxEmailLength) }
func (f *Form) SetSubject(v string)   { f.set(&f.fields.Subject, v, MaxSubjectLength) }
func (f *Form) SetMessage(v string)   { f.set(&f.fields.Message, v, MaxMessageLength) }

func (f *Form) set(field *string, v string, limit int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	*field = truncateRunes(v, limit)
}

// Fields returns a copy of the current input.
func (f *Form) Fields() types.ContactRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// LastError is the message to show after a failed submit, or "".
func (f *Form) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Submit sends the current fields once. On success the fields are cleared
// and the form shows Sent for SentDisplayDuration. On failure the fields
// are kept and LastError explains what to do. Submitting is refused until
// the form is back to Idle or Failed.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case Submitting:
		f.mu.Unlock()
		return ErrSubmitInFlight
	case Sent:
		f.mu.Unlock()
		return ErrJustSent
	}
	f.state = Submitting
	f.lastErr = ""
	req := f.fields
	f.mu.Unlock()

	_, err := f.sender.Send(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = Failed
		f.lastErr = failureMessage(err)
		return err
	}

	f.fields = types.ContactRequest{}
	f.state = Sent
	f.resetTimer = time.AfterFunc(f.sentFor, f.clearSent)
	return nil
}

func (f *Form) clearSent() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Sent {
		f.state = Idle
	}
	f.resetTimer = nil
}

func failureMessage(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message
	}
	return FallbackErrorMessage
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
