package api

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// recordingSender is a test helper that records requests and answers each
// one with a canned JSON response.
type recordingSender struct {
	mu       sync.Mutex
	calls    []Request
	response any
	err      error
}

func (r *recordingSender) Send(ctx context.Context, req Request, out any) error {
	r.mu.Lock()
	r.calls = append(r.calls, req)
	r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if out == nil || r.response == nil {
		return nil
	}
	b, err := json.Marshal(r.response)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func (r *recordingSender) last() Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		panic("no requests recorded")
	}
	return r.calls[len(r.calls)-1]
}

// errSender always fails (simulates a gateway failure).
type errSender struct{}

func (errSender) Send(context.Context, Request, any) error { return fmt.Errorf("boom") }

// bodyJSON renders a recorded request body the way the gateway would send it.
func bodyJSON(req Request) string {
	b, err := json.Marshal(req.Body)
	if err != nil {
		panic(err)
	}
	return string(b)
}
