// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package svccall

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/google/uuid"
)

// Option configures a Service at construction time.
type Option func(*options)

type options struct {
	client *http.Client
	logger log.Interface
}

// WithHTTPClient replaces the descriptor-derived HTTP client. Useful for
// injecting custom transports; note that the descriptor's redirect,
// keepalive and credential settings only take effect through the derived
// client, so a replacement owns those concerns itself.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.client = client }
}

// WithLogger sets the logger used for per-invocation debug output. The
// default logger discards everything.
func WithLogger(logger log.Interface) Option {
	return func(o *options) { o.logger = logger }
}

// Service issues JSON requests against one descriptor and tracks their
// lifecycle in an observable state container. In is the request body type,
// Out the success payload type, Fail the error payload type.
//
// A Service handles one invocation at a time by design. Nothing stops a
// caller from overlapping Execute calls, but overlapping calls race on the
// shared state container and the last writer wins; there is no fencing and
// no cancellation of in-flight requests.
type Service[In, Out, Fail any] struct {
	desc   Descriptor
	client *http.Client
	logger log.Interface
	states *Container[Out, Fail]
}

// New validates the descriptor and creates a Service for it.
func New[In, Out, Fail any](desc Descriptor, opts ...Option) (*Service[In, Out, Fail], error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.client == nil {
		o.client = newHTTPClient(desc)
	}
	if o.logger == nil {
		o.logger = &log.Logger{Handler: discard.New(), Level: log.InfoLevel}
	}

	return &Service[In, Out, Fail]{
		desc:   desc,
		client: o.client,
		logger: o.logger,
		states: NewContainer[Out, Fail](),
	}, nil
}

// Descriptor returns a copy of the service's descriptor.
func (s *Service[In, Out, Fail]) Descriptor() Descriptor {
	return s.desc
}

// StateSnapshot returns the current lifecycle state.
func (s *Service[In, Out, Fail]) StateSnapshot() State[Out, Fail] {
	return s.states.Snapshot()
}

// Subscribe registers fn to observe every state transition. The returned
// function cancels the subscription.
func (s *Service[In, Out, Fail]) Subscribe(fn func(State[Out, Fail])) func() {
	return s.states.Subscribe(fn)
}

// Execute performs one invocation against the service.
//
// The lifecycle is: Pending is set (previous Data and Err are kept), the
// request is issued with the descriptor's settings and forced JSON
// headers, and the response is classified by HTTP status. A success-range
// status decodes the body into Out, records it as Data with Success set,
// and returns {OK: true}. Any other status decodes the body into Fail,
// records it as Err with Success cleared, and returns {OK: false} — an
// error status from the service is a normal result, not an error.
//
// Three conditions are errors: the request body cannot be encoded, the
// request fails at the transport layer (the underlying network error is
// returned, wrapped), or the response body is not valid JSON (a
// *DecodeError is returned). In every case, including errors, Pending is
// cleared before Execute returns; on the error paths Success, Data and Err
// keep their prior values.
//
// A nil body means the request carries no body.
func (s *Service[In, Out, Fail]) Execute(ctx context.Context, body *In) (Result[Out, Fail], error) {
	var zero Result[Out, Fail]

	callID := uuid.NewString()
	method := string(s.desc.method())
	logger := s.logger.WithFields(log.Fields{
		"call":   callID,
		"method": method,
		"url":    s.desc.URL,
	})

	s.states.Apply(Patch[Out, Fail]{Pending: boolPtr(true)})

	// Pending must be cleared on every exit path. The completion patches
	// below already clear it; this covers the error paths.
	settled := false
	defer func() {
		if !settled {
			s.states.Apply(Patch[Out, Fail]{Pending: boolPtr(false)})
		}
	}()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("encode request body: %w", err)
		}
		logger.Debugf("request body: %s", raw)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.desc.URL, reqBody)
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}
	for name, value := range s.desc.Headers {
		req.Header.Set(name, value)
	}
	// Forced headers win over anything the descriptor supplies.
	req.Header.Set("Content-Type", ContentTypeJSON)
	req.Header.Set("Accept", ContentTypeJSON)
	if !s.desc.Keepalive {
		req.Close = true
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, s.desc.URL, err)
	}
	defer resp.Body.Close()

	raw, err := readBody(resp.Body, s.desc.MaxResponseBytes)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, s.desc.URL, err)
	}
	logger.Debugf("response: status=%d body=%d bytes", resp.StatusCode, len(raw))

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		var out Out
		if decodeErr := json.Unmarshal(raw, &out); decodeErr != nil {
			return zero, newDecodeError(resp.StatusCode, raw, decodeErr)
		}
		settled = true
		s.states.Apply(Patch[Out, Fail]{
			Pending: boolPtr(false),
			Success: boolPtr(true),
			Data:    &out,
		})
		return Result[Out, Fail]{OK: true, Data: out}, nil
	}

	var fail Fail
	if decodeErr := json.Unmarshal(raw, &fail); decodeErr != nil {
		return zero, newDecodeError(resp.StatusCode, raw, decodeErr)
	}
	settled = true
	s.states.Apply(Patch[Out, Fail]{
		Pending: boolPtr(false),
		Success: boolPtr(false),
		Err:     &fail,
	})
	return Result[Out, Fail]{OK: false, Err: fail}, nil
}

// readBody drains the response body, enforcing the descriptor's size
// bound when one is set.
func readBody(body io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		raw, err := io.ReadAll(body)
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}
		return raw, nil
	}

	raw, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if int64(len(raw)) > limit {
		return nil, fmt.Errorf("response body exceeds %d bytes", limit)
	}
	return raw, nil
}

func boolPtr(b bool) *bool {
	return &b
}
