package upstream

import (
	"context"
	"errors"
	"net/http"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
)

// ErrNoCredentials is returned when no upstream credentials are configured.
var ErrNoCredentials = errors.New("no upstream credentials configured")

// Unconfigured returns an Upstream that fails every call with HTTP 500 and
// the given reason. Health and ping routes stay up; only proxied operations
// short-circuit.
func Unconfigured(reason string) Upstream {
	return &unconfigured{reason: reason}
}

type unconfigured struct {
	reason string
}

func (u *unconfigured) Name() string {
	return "unconfigured"
}

func (u *unconfigured) fail(w http.ResponseWriter) (*Result, error) {
	types.WriteError(w, http.StatusInternalServerError, u.reason)
	return &Result{
		StatusCode:   http.StatusInternalServerError,
		Error:        ErrNoCredentials,
		ErrorMessage: u.reason,
	}, ErrNoCredentials
}

func (u *unconfigured) Chat(ctx context.Context, w http.ResponseWriter, opts *Options) (*Result, error) {
	return u.fail(w)
}

func (u *unconfigured) GenerateImage(ctx context.Context, w http.ResponseWriter, opts *Options) (*Result, error) {
	return u.fail(w)
}

func (u *unconfigured) WebSearch(ctx context.Context, w http.ResponseWriter, opts *Options) (*Result, error) {
	return u.fail(w)
}

func (u *unconfigured) MapSearch(ctx context.Context, w http.ResponseWriter, opts *Options) (*Result, error) {
	return u.fail(w)
}
