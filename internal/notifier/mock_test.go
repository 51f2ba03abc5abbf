package notifier

import (
	"context"
)

type mockBackend struct {
	Calls    int
	Requests []Request
	Err      error
	Panic    any
}

func (m *mockBackend) Deliver(ctx context.Context, req Request) error {
	m.Calls++
	m.Requests = append(m.Requests, req)
	if m.Panic != nil {
		panic(m.Panic)
	}
	return m.Err
}
