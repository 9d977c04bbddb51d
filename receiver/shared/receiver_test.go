// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go.opentelemetry.io/dataflow/channel"
	"go.opentelemetry.io/dataflow/internal/testutil"
	"go.opentelemetry.io/dataflow/msg"
	"go.opentelemetry.io/dataflow/receiver/receivererror"
)

func TestEffectHandlerSendMessage(t *testing.T) {
	ctx := context.Background()
	tx, rx := channel.NewShared[string](2)
	eh := NewEffectHandler("test", tx, zap.NewNop())

	assert.Equal(t, "test", eh.Name())
	require.NoError(t, eh.SendMessage(ctx, "payload"))

	v, err := rx.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, "payload", v)
}

func TestEffectHandlerSendAfterConsumerGone(t *testing.T) {
	tx, rx := channel.NewShared[string](1)
	eh := NewEffectHandler("test", tx, zap.NewNop())

	rx.Close()
	require.ErrorIs(t, eh.SendMessage(context.Background(), "payload"), channel.ErrClosed)
}

func TestEffectHandlerClonesSendConcurrently(t *testing.T) {
	ctx := context.Background()
	tx, rx := channel.NewShared[int](8)
	eh := NewEffectHandler("test", tx, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		clone := eh.Clone()
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, clone.SendMessage(ctx, n))
		}(i)
	}
	wg.Wait()

	seen := map[int]bool{}
	for i := 0; i < 4; i++ {
		v, err := rx.Recv(ctx)
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}

func TestEffectHandlerListenTCP(t *testing.T) {
	ctx := context.Background()
	tx, _ := channel.NewShared[string](1)
	eh := NewEffectHandler("test", tx, zap.NewNop())

	endpoint := testutil.GetAvailableLocalAddress(t)
	ln, err := eh.ListenTCP(ctx, endpoint)
	require.NoError(t, err)
	defer ln.Close()

	_, err = eh.ListenTCP(ctx, endpoint)
	require.Error(t, err)
	var le *receivererror.ListenError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, endpoint, le.Endpoint)
}

func TestControlChannelRecvAndDone(t *testing.T) {
	ctx := context.Background()
	tx, rx := channel.NewShared[msg.ControlMsg](4)
	cc := NewControlChannel(rx)

	require.NoError(t, tx.Send(ctx, msg.Shutdown(0, "test")))
	m, err := cc.Recv(ctx)
	require.NoError(t, err)
	assert.True(t, m.IsShutdown())

	tx.Close()
	_, err = cc.Recv(ctx)
	require.ErrorIs(t, err, channel.ErrClosed)

	select {
	case <-cc.Done():
	default:
		t.Fatal("Done not closed after the last control producer closed")
	}
}
