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

	"github.com/meridiandb/client-go/proto/pkg/api"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// stubAPI is an in-memory api.MeridianClient. Calls are recorded; behavior is
// overridden per test through the *Fn hooks.
type stubAPI struct {
	queryFn  func(*api.Request) (*api.Response, error)
	commitFn func(*api.TxnContext) (*api.TxnContext, error)

	queries      []*api.Request
	commits      []*api.TxnContext
	lastQueryCtx context.Context
}

func (s *stubAPI) Query(ctx context.Context, in *api.Request, opts ...grpc.CallOption) (*api.Response, error) {
	s.queries = append(s.queries, in)
	s.lastQueryCtx = ctx
	if s.queryFn == nil {
		return &api.Response{}, nil
	}
	return s.queryFn(in)
}

func (s *stubAPI) CommitOrAbort(ctx context.Context, in *api.TxnContext, opts ...grpc.CallOption) (*api.TxnContext, error) {
	s.commits = append(s.commits, in)
	if s.commitFn == nil {
		return in, nil
	}
	return s.commitFn(in)
}

func (s *stubAPI) Alter(ctx context.Context, in *api.Operation, opts ...grpc.CallOption) (*api.Payload, error) {
	return &api.Payload{}, nil
}

func (s *stubAPI) CheckVersion(ctx context.Context, in *api.Check, opts ...grpc.CallOption) (*api.Version, error) {
	return &api.Version{Tag: "dev"}, nil
}

func (s *stubAPI) Login(ctx context.Context, in *api.LoginRequest, opts ...grpc.CallOption) (*api.Jwt, error) {
	return &api.Jwt{AccessJwt: "token"}, nil
}

func newTestClient(s *stubAPI) *Client {
	return NewClient(s)
}

func ctxResponse(ctx *api.TxnContext) func(*api.Request) (*api.Response, error) {
	return func(*api.Request) (*api.Response, error) {
		return &api.Response{Txn: ctx}, nil
	}
}

func TestMergeContextFirstAssignment(t *testing.T) {
	txn := newTestClient(&stubAPI{}).NewTxn()
	err := txn.mergeContext(&api.TxnContext{StartTs: 7, Hash: "h1"})
	require.NoError(t, err)
	require.Equal(t, uint64(7), txn.context.StartTs)
	require.Equal(t, "h1", txn.context.Hash)
}

func TestMergeContextMismatch(t *testing.T) {
	txn := newTestClient(&stubAPI{}).NewTxn()
	require.NoError(t, txn.mergeContext(&api.TxnContext{StartTs: 7}))

	err := txn.mergeContext(&api.TxnContext{StartTs: 9})
	mismatch, ok := err.(*StartTsMismatchError)
	require.True(t, ok, "expected StartTsMismatchError, got %v", err)
	require.Equal(t, uint64(7), mismatch.ClientTs)
	require.Equal(t, uint64(9), mismatch.ServerTs)
	// The local timestamp must be untouched.
	require.Equal(t, uint64(7), txn.context.StartTs)
}

func TestMergeContextAccumulatesFootprint(t *testing.T) {
	txn := newTestClient(&stubAPI{}).NewTxn()
	require.NoError(t, txn.mergeContext(&api.TxnContext{
		StartTs: 7, Hash: "h1", Keys: []string{"a"}, Preds: []string{"p"},
	}))
	require.NoError(t, txn.mergeContext(&api.TxnContext{
		StartTs: 7, Hash: "h2", Keys: []string{"b"}, Preds: []string{"q"},
	}))

	// Keys and preds accumulate, the hash is latest-wins.
	require.Equal(t, []string{"a", "b"}, txn.context.Keys)
	require.Equal(t, []string{"p", "q"}, txn.context.Preds)
	require.Equal(t, "h2", txn.context.Hash)
}

func TestMergeContextNil(t *testing.T) {
	txn := newTestClient(&stubAPI{}).NewTxn()
	require.NoError(t, txn.mergeContext(&api.TxnContext{StartTs: 7}))
	require.NoError(t, txn.mergeContext(nil))
	require.Equal(t, uint64(7), txn.context.StartTs)
}

func TestStateGating(t *testing.T) {
	stub := &stubAPI{}
	txn := newTestClient(stub).NewTxn()
	require.NoError(t, txn.Commit(context.Background()))

	_, err := txn.Query(context.Background(), "{ q }")
	stateErr, ok := err.(*TxnStateError)
	require.True(t, ok, "expected StateError, got %v", err)
	require.Equal(t, StateCommitted, stateErr.State)

	_, err = txn.Mutate(context.Background(), &api.Mutation{SetJson: []byte("{}")})
	require.IsType(t, &TxnStateError{}, err)

	err = txn.Commit(context.Background())
	require.IsType(t, &TxnStateError{}, err)

	// None of the rejected calls may have reached the wire.
	require.Empty(t, stub.queries)
	require.Empty(t, stub.commits)
}

func TestQueryTransportFailureKeepsTxnUsable(t *testing.T) {
	stub := &stubAPI{
		queryFn: func(*api.Request) (*api.Response, error) {
			return nil, errors.New("connection refused")
		},
	}
	txn := newTestClient(stub).NewTxn()

	_, err := txn.Query(context.Background(), "{ q }")
	require.IsType(t, &TransportError{}, err)
	require.Equal(t, StateOK, txn.State())

	stub.queryFn = ctxResponse(&api.TxnContext{StartTs: 7})
	_, err = txn.Query(context.Background(), "{ q }")
	require.NoError(t, err)
	require.Equal(t, uint64(7), txn.context.StartTs)
}

func TestQueryMergeFailureDropsPayload(t *testing.T) {
	stub := &stubAPI{queryFn: ctxResponse(&api.TxnContext{StartTs: 7})}
	txn := newTestClient(stub).NewTxn()
	_, err := txn.Query(context.Background(), "{ q }")
	require.NoError(t, err)

	stub.queryFn = func(*api.Request) (*api.Response, error) {
		return &api.Response{Json: []byte(`{"n":1}`), Txn: &api.TxnContext{StartTs: 9}}, nil
	}
	resp, err := txn.Query(context.Background(), "{ q }")
	require.IsType(t, &StartTsMismatchError{}, err)
	require.Nil(t, resp)
}

func TestQueryCarriesSnapshot(t *testing.T) {
	stub := &stubAPI{queryFn: ctxResponse(&api.TxnContext{StartTs: 7, Hash: "h1"})}
	txn := newTestClient(stub).NewTxn()

	_, err := txn.Query(context.Background(), "{ a }")
	require.NoError(t, err)
	_, err = txn.QueryWithVars(context.Background(), "{ b }", map[string]string{"$x": "1"})
	require.NoError(t, err)

	require.Len(t, stub.queries, 2)
	require.Equal(t, uint64(0), stub.queries[0].StartTs)
	require.Equal(t, uint64(7), stub.queries[1].StartTs)
	require.Equal(t, "h1", stub.queries[1].Hash)
	require.Equal(t, map[string]string{"$x": "1"}, stub.queries[1].Vars)
}

func TestMutateEmptyIsFree(t *testing.T) {
	stub := &stubAPI{}
	txn := newTestClient(stub).NewTxn()

	resp, err := txn.Mutate(context.Background(), &api.Mutation{})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.Empty(t, stub.queries)

	// Nothing was ever mutated, so commit and discard stay local too.
	require.NoError(t, txn.Commit(context.Background()))
	require.Empty(t, stub.commits)
}

func TestCommitWithoutMutationSkipsRPC(t *testing.T) {
	stub := &stubAPI{queryFn: ctxResponse(&api.TxnContext{StartTs: 7})}
	txn := newTestClient(stub).NewTxn()
	_, err := txn.Query(context.Background(), "{ q }")
	require.NoError(t, err)

	require.NoError(t, txn.Commit(context.Background()))
	require.Equal(t, StateCommitted, txn.State())
	require.Empty(t, stub.commits)
}

func TestDiscardIdempotent(t *testing.T) {
	stub := &stubAPI{queryFn: ctxResponse(&api.TxnContext{StartTs: 7})}
	txn := newTestClient(stub).NewTxn()
	_, err := txn.Mutate(context.Background(), &api.Mutation{SetJson: []byte("{}")})
	require.NoError(t, err)

	require.NoError(t, txn.Discard(context.Background()))
	require.Equal(t, StateAborted, txn.State())
	require.Len(t, stub.commits, 1)
	require.True(t, stub.commits[0].Aborted)

	// Repeated discards are no-ops, state and wire traffic included.
	require.NoError(t, txn.Discard(context.Background()))
	require.Equal(t, StateAborted, txn.State())
	require.Len(t, stub.commits, 1)
}

func TestDiscardAfterCommitIsNoOp(t *testing.T) {
	stub := &stubAPI{}
	txn := newTestClient(stub).NewTxn()
	require.NoError(t, txn.Commit(context.Background()))

	require.NoError(t, txn.Discard(context.Background()))
	require.Equal(t, StateCommitted, txn.State())
}

func TestDiscardWithoutMutationSkipsRPC(t *testing.T) {
	stub := &stubAPI{queryFn: ctxResponse(&api.TxnContext{StartTs: 7})}
	txn := newTestClient(stub).NewTxn()
	_, err := txn.Query(context.Background(), "{ q }")
	require.NoError(t, err)

	require.NoError(t, txn.Discard(context.Background()))
	require.Equal(t, StateAborted, txn.State())
	require.Empty(t, stub.commits)
}

func TestMutateTransportFailure(t *testing.T) {
	stub := &stubAPI{
		queryFn: func(*api.Request) (*api.Response, error) {
			return nil, errors.New("connection reset")
		},
	}
	txn := newTestClient(stub).NewTxn()

	_, err := txn.Mutate(context.Background(), &api.Mutation{SetJson: []byte("{}")})
	require.IsType(t, &TransportError{}, err)

	// The internal discard ran best-effort, but the final state is StateError,
	// not StateAborted.
	require.Equal(t, StateError, txn.State())
	require.Len(t, stub.commits, 1)
	require.True(t, stub.commits[0].Aborted)

	// And the transaction is gone for good.
	_, err = txn.Query(context.Background(), "{ q }")
	stateErr, ok := err.(*TxnStateError)
	require.True(t, ok)
	require.Equal(t, StateError, stateErr.State)
}

func TestMutateCommitNow(t *testing.T) {
	stub := &stubAPI{queryFn: ctxResponse(&api.TxnContext{StartTs: 7})}
	txn := newTestClient(stub).NewTxn()

	_, err := txn.Mutate(context.Background(), &api.Mutation{
		SetJson:   []byte("{}"),
		CommitNow: true,
	})
	require.NoError(t, err)
	require.Equal(t, StateCommitted, txn.State())
	require.True(t, stub.queries[0].CommitNow)

	// No separate commit is needed, or possible.
	err = txn.Commit(context.Background())
	require.IsType(t, &TxnStateError{}, err)
}

func TestMutateMergeFailureKeepsPayload(t *testing.T) {
	stub := &stubAPI{queryFn: ctxResponse(&api.TxnContext{StartTs: 7})}
	txn := newTestClient(stub).NewTxn()
	_, err := txn.Query(context.Background(), "{ q }")
	require.NoError(t, err)

	stub.queryFn = func(*api.Request) (*api.Response, error) {
		return &api.Response{Json: []byte(`{"ok":true}`), Txn: &api.TxnContext{StartTs: 9}}, nil
	}
	resp, err := txn.Mutate(context.Background(), &api.Mutation{SetJson: []byte("{}")})
	require.IsType(t, &StartTsMismatchError{}, err)
	// The successful payload stays available for inspection.
	require.NotNil(t, resp)
	require.Equal(t, []byte(`{"ok":true}`), resp.Json)
}

func TestCommitRejectedByServer(t *testing.T) {
	stub := &stubAPI{
		queryFn: ctxResponse(&api.TxnContext{StartTs: 7}),
		commitFn: func(in *api.TxnContext) (*api.TxnContext, error) {
			return &api.TxnContext{StartTs: in.StartTs, Aborted: true}, nil
		},
	}
	txn := newTestClient(stub).NewTxn()
	_, err := txn.Mutate(context.Background(), &api.Mutation{SetJson: []byte("{}")})
	require.NoError(t, err)

	err = txn.Commit(context.Background())
	require.Equal(t, ErrAborted, errors.Cause(err))
	require.True(t, txn.context.Aborted)
}

func TestCommitSendsAccumulatedFootprint(t *testing.T) {
	calls := 0
	stub := &stubAPI{}
	stub.queryFn = func(*api.Request) (*api.Response, error) {
		calls++
		key := []string{"a", "b"}[calls-1]
		return &api.Response{Txn: &api.TxnContext{StartTs: 7, Hash: "h", Keys: []string{key}}}, nil
	}
	txn := newTestClient(stub).NewTxn()
	_, err := txn.Mutate(context.Background(), &api.Mutation{SetJson: []byte("{}")})
	require.NoError(t, err)
	_, err = txn.Mutate(context.Background(), &api.Mutation{SetJson: []byte("{}")})
	require.NoError(t, err)

	require.NoError(t, txn.Commit(context.Background()))
	require.Len(t, stub.commits, 1)
	require.Equal(t, []string{"a", "b"}, stub.commits[0].Keys)
	require.Equal(t, uint64(7), stub.commits[0].StartTs)
}

func TestReadOnlyTxn(t *testing.T) {
	stub := &stubAPI{queryFn: ctxResponse(&api.TxnContext{StartTs: 7})}
	txn := newTestClient(stub).NewReadOnlyTxn()

	_, err := txn.Query(context.Background(), "{ q }")
	require.NoError(t, err)
	require.True(t, stub.queries[0].ReadOnly)
	require.False(t, stub.queries[0].BestEffort)

	_, err = txn.Mutate(context.Background(), &api.Mutation{SetJson: []byte("{}")})
	require.Equal(t, ErrReadOnlyTxn, err)
	require.Equal(t, ErrReadOnlyTxn, txn.Commit(context.Background()))

	require.NoError(t, txn.Discard(context.Background()))
	require.Empty(t, stub.commits)
}

func TestBestEffortTxn(t *testing.T) {
	stub := &stubAPI{queryFn: ctxResponse(&api.TxnContext{StartTs: 7})}
	txn := newTestClient(stub).NewReadOnlyTxn(WithBestEffort())

	_, err := txn.Query(context.Background(), "{ q }")
	require.NoError(t, err)
	require.True(t, stub.queries[0].ReadOnly)
	require.True(t, stub.queries[0].BestEffort)
}
