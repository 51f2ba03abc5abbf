package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_Deliver(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		var gotTitle, gotMessage string
		l := NewLocal(time.Second)
		l.notify = func(title, message, icon string) error {
			gotTitle, gotMessage = title, message
			return nil
		}

		err := l.Deliver(context.Background(), Request{Title: "Build", Message: "green\x00"})
		require.NoError(t, err)
		assert.Equal(t, "Build", gotTitle)
		assert.Equal(t, "green ", gotMessage)
	})

	t.Run("notify error", func(t *testing.T) {
		l := NewLocal(time.Second)
		l.notify = func(title, message, icon string) error {
			return errors.New("dbus: no session bus")
		}

		err := l.Deliver(context.Background(), Request{Title: "Build", Message: "red"})
		var delErr *DeliveryError
		require.True(t, errors.As(err, &delErr))
		assert.Equal(t, KindSpawn, delErr.Kind)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		l := NewLocal(100 * time.Millisecond)
		l.notify = func(title, message, icon string) error {
			<-release
			return nil
		}

		err := l.Deliver(context.Background(), Request{Title: "Build", Message: "slow"})
		var delErr *DeliveryError
		require.True(t, errors.As(err, &delErr))
		assert.Equal(t, KindTimeout, delErr.Kind)
	})
}
