// Copyright 2020 Meridian, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package meridian

import (
	"context"
	"testing"
	"time"

	"github.com/meridiandb/client-go/proto/pkg/api"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// trackingAPI records which backend a call landed on.
type trackingAPI struct {
	stubAPI
	id    int
	order *[]int
}

func (s *trackingAPI) CheckVersion(ctx context.Context, in *api.Check, opts ...grpc.CallOption) (*api.Version, error) {
	*s.order = append(*s.order, s.id)
	return &api.Version{Tag: "dev"}, nil
}

func TestRoundRobin(t *testing.T) {
	var order []int
	backends := make([]api.MeridianClient, 3)
	for i := range backends {
		backends[i] = &trackingAPI{id: i, order: &order}
	}
	c := NewClient(backends...)

	for i := 0; i < 7; i++ {
		_, err := c.CheckVersion(context.Background())
		require.NoError(t, err)
	}
	// Consecutive calls walk the pool modulo its size.
	require.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, order)
}

func TestClientClosed(t *testing.T) {
	stub := &stubAPI{}
	c := NewClient(stub)
	txn := c.NewTxn()

	c.Close()
	c.Close() // double close is a no-op

	_, err := c.CheckVersion(context.Background())
	require.Equal(t, ErrClientClosed, err)
	_, err = txn.Query(context.Background(), "{ q }")
	require.Equal(t, ErrClientClosed, err)
	require.Empty(t, stub.queries)
}

func TestNewClientRequiresBackend(t *testing.T) {
	require.Panics(t, func() { NewClient() })
}

func TestReleaseDiscardsInBackground(t *testing.T) {
	discarded := make(chan *api.TxnContext, 1)
	stub := &stubAPI{
		queryFn: ctxResponse(&api.TxnContext{StartTs: 7}),
		commitFn: func(in *api.TxnContext) (*api.TxnContext, error) {
			discarded <- in
			return in, nil
		},
	}
	txn := NewClient(stub).NewTxn()
	_, err := txn.Mutate(context.Background(), &api.Mutation{SetJson: []byte("{}")})
	require.NoError(t, err)

	txn.Release()
	select {
	case in := <-discarded:
		require.True(t, in.Aborted)
		require.Equal(t, uint64(7), in.StartTs)
	case <-time.After(5 * time.Second):
		t.Fatal("background discard never reached the server")
	}
}

func TestReleaseAfterCommitDoesNothing(t *testing.T) {
	stub := &stubAPI{}
	txn := NewClient(stub).NewTxn()
	require.NoError(t, txn.Commit(context.Background()))

	txn.Release()
	require.Equal(t, StateCommitted, txn.State())
}

func TestLoginAttachesAccessToken(t *testing.T) {
	stub := &stubAPI{}
	c := NewClient(stub)
	require.NoError(t, c.Login(context.Background(), "alice", "secret"))

	_, err := c.NewTxn().Query(context.Background(), "{ q }")
	require.NoError(t, err)

	md, ok := metadata.FromOutgoingContext(stub.lastQueryCtx)
	require.True(t, ok)
	require.Equal(t, []string{"token"}, md.Get("accessJwt"))
}
