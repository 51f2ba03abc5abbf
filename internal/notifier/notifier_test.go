package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Send(t *testing.T) {
	t.Run("backend succeeds", func(t *testing.T) {
		backend := &mockBackend{}
		n := New(backend)

		res := n.Send(context.Background(), Request{Title: "Build", Message: "done"})
		assert.True(t, res.OK)
		assert.NoError(t, res.Err)
		require.Len(t, backend.Requests, 1)
		assert.Equal(t, "Build", backend.Requests[0].Title)
		assert.Equal(t, "done", backend.Requests[0].Message)
	})

	t.Run("backend fails", func(t *testing.T) {
		backend := &mockBackend{Err: &DeliveryError{Kind: KindExit, ExitCode: 1}}
		n := New(backend)

		res := n.Send(context.Background(), Request{Title: "Build", Message: "done"})
		assert.False(t, res.OK)
		var delErr *DeliveryError
		require.True(t, errors.As(res.Err, &delErr))
		assert.Equal(t, KindExit, delErr.Kind)
	})

	t.Run("backend panics", func(t *testing.T) {
		backend := &mockBackend{Panic: "boom"}
		n := New(backend)

		var res Result
		assert.NotPanics(t, func() {
			res = n.Send(context.Background(), Request{Title: "Build", Message: "done"})
		})
		assert.False(t, res.OK)
		assert.ErrorContains(t, res.Err, "boom")
	})
}

func TestNotifier_SendCompletion(t *testing.T) {
	t.Run("without task name", func(t *testing.T) {
		backend := &mockBackend{}
		res := New(backend).SendCompletion(context.Background(), "")

		assert.True(t, res.OK)
		require.Len(t, backend.Requests, 1)
		assert.Equal(t, DefaultCompletionTitle, backend.Requests[0].Title)
		assert.Equal(t, "The task completed successfully.", backend.Requests[0].Message)
	})

	t.Run("with task name", func(t *testing.T) {
		backend := &mockBackend{}
		New(backend).SendCompletion(context.Background(), "nightly build")

		require.Len(t, backend.Requests, 1)
		assert.Contains(t, backend.Requests[0].Message, "nightly build")
	})

	t.Run("custom title and duration", func(t *testing.T) {
		backend := &mockBackend{}
		n := New(backend, WithCompletionTitle("Done"), WithDuration(Long))
		n.SendCompletion(context.Background(), "")

		require.Len(t, backend.Requests, 1)
		assert.Equal(t, "Done", backend.Requests[0].Title)
		assert.Equal(t, Long, backend.Requests[0].Duration)
	})

	t.Run("empty title option keeps default", func(t *testing.T) {
		n := New(&mockBackend{}, WithCompletionTitle(""))
		assert.Equal(t, DefaultCompletionTitle, n.CompletionRequest("").Title)
	})
}

func TestNotifier_SendError(t *testing.T) {
	backend := &mockBackend{}
	res := New(backend, WithErrorTitle("Oops")).SendError(context.Background(), "disk full")

	assert.True(t, res.OK)
	require.Len(t, backend.Requests, 1)
	req := backend.Requests[0]
	assert.Equal(t, "Oops", req.Title)
	assert.Contains(t, req.Message, "disk full")
	assert.Equal(t, Long, req.Duration)
}

func TestParseDuration(t *testing.T) {
	testCases := []struct {
		in      string
		want    Duration
		wantErr bool
	}{
		{in: "", want: Short},
		{in: "short", want: Short},
		{in: " LONG ", want: Long},
		{in: "forever", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDuration(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDeliveryError_Error(t *testing.T) {
	inner := errors.New("exec: not found")
	err := &DeliveryError{Kind: KindSpawn, Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "failed to start notifier")

	exitErr := &DeliveryError{Kind: KindExit, ExitCode: 3, Output: "  bad things\n"}
	assert.Equal(t, "notifier exited with code 3: bad things", exitErr.Error())
}
