package i18n

import (
	"errors"
	"fmt"
	"sync"
)

// TranslatableError is an error whose message is looked up by key at the time it is printed.
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	WithProvider(p MessageProvider) TranslatableError
}

// MessageProvider resolves a message key to a format string.
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider serves message formats from a Bundle.
type BundleMessageProvider struct {
	bundle *Bundle
}

func NewBundleMessageProvider(b *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: b}
}

// GetMessage returns the format of key, or the key itself when the bundle lacks it.
func (p *BundleMessageProvider) GetMessage(key string) string {
	if format, ok := p.bundle.Format(key); ok {
		return format
	}

	return key
}

// TrError is a translatable error. Copies made by WithArgs, Wrap and WithProvider keep the
// sentinel, so errors.Is matches every derived error against the declared variable.
//
//	err := errs.ErrUnknownArgument.WithArgs("--nope")
//	errors.Is(err, errs.ErrUnknownArgument) // true
type TrError struct {
	sentinel        error
	key             string
	args            []interface{}
	wrapped         error
	messageProvider MessageProvider
}

// NewError declares a translatable error for key.
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

func (e *TrError) provider() MessageProvider {
	if e.messageProvider != nil {
		return e.messageProvider
	}

	return DefaultMessageProvider()
}

func (e *TrError) Error() string {
	msg := e.provider().GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	c := *e
	c.args = args

	return &c
}

func (e *TrError) Wrap(err error) TranslatableError {
	c := *e
	c.wrapped = err

	return &c
}

func (e *TrError) WithProvider(p MessageProvider) TranslatableError {
	c := *e
	c.messageProvider = p

	return &c
}

func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

func (e *TrError) Key() string {
	return e.key
}

func (e *TrError) Args() []interface{} {
	return e.args
}

func (e *TrError) Unwrap() error {
	return e.wrapped
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by errors that carry none.
// Passing nil restores the embedded messages.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

// DefaultMessageProvider returns the provider installed with SetDefaultMessageProvider, or
// the messages of the default bundle.
func DefaultMessageProvider() MessageProvider {
	defaultProviderMux.RLock()
	p := defaultProvider
	defaultProviderMux.RUnlock()
	if p != nil {
		return p
	}

	return NewBundleMessageProvider(Default())
}
