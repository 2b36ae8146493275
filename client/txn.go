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
	"time"

	"github.com/meridiandb/client-go/proto/pkg/api"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// TxnState tracks where a transaction is in its lifecycle. StateOK is the only
// state that admits further operations; the other three are terminal.
type TxnState int32

const (
	// StateOK means the transaction is live and accepts queries and mutations.
	StateOK TxnState = iota
	// StateCommitted means Commit was issued (or a mutation ran with
	// CommitNow).
	StateCommitted
	// StateAborted means the transaction was discarded deliberately.
	StateAborted
	// StateError means a mutation's remote call failed and the transaction was
	// torn down. Distinct from StateAborted, which is a clean rollback.
	StateError
)

func (s TxnState) String() string {
	switch s {
	case StateOK:
		return "ok"
	case StateCommitted:
		return "committed"
	case StateAborted:
		return "aborted"
	case StateError:
		return "error"
	}
	return "unknown"
}

// releaseTimeout bounds the background discard scheduled by Release.
const releaseTimeout = 5 * time.Second

// Txn is a single optimistic transaction. The server assigns it a start
// timestamp on its first request; every later request is pinned to that
// snapshot, and the conflict footprint the server reports back is accumulated
// here until commit or discard.
//
// A Txn must be used by one goroutine at a time. Different transactions of the
// same Client are independent and may run concurrently.
type Txn struct {
	client     *Client
	context    *api.TxnContext
	state      TxnState
	readOnly   bool
	bestEffort bool
	mutated    bool
}

// State reports the transaction's current lifecycle state.
func (txn *Txn) State() TxnState { return txn.state }

// Query runs a read against the transaction's snapshot.
func (txn *Txn) Query(ctx context.Context, q string) (*api.Response, error) {
	return txn.QueryWithVars(ctx, q, nil)
}

// QueryWithVars runs a read with variable bindings.
func (txn *Txn) QueryWithVars(ctx context.Context, q string, vars map[string]string) (*api.Response, error) {
	return txn.Do(ctx, &api.Request{
		Query: q,
		Vars:  vars,
	})
}

// Do executes a caller-assembled request. A request carrying mutations follows
// the mutation path, including its stricter failure handling; a pure query
// leaves the transaction usable even when the call itself fails.
func (txn *Txn) Do(ctx context.Context, req *api.Request) (*api.Response, error) {
	if len(req.GetMutations()) > 0 {
		return txn.mutate(ctx, req)
	}
	if txn.state != StateOK {
		return nil, &TxnStateError{State: txn.state}
	}
	if span := opentracing.SpanFromContext(ctx); span != nil {
		span = opentracing.StartSpan("meridian.txn.Query", opentracing.ChildOf(span.Context()))
		defer span.Finish()
	}

	txn.stamp(req)
	var resp *api.Response
	err := txn.client.do(ctx, "Query", cmdDurationQuery, cmdFailedDurationQuery,
		func(ctx context.Context, mc api.MeridianClient) error {
			r, err := mc.Query(ctx, req)
			if err != nil {
				return err
			}
			resp = r
			return nil
		})
	if err != nil {
		// A failed read is not fatal to the transaction.
		return nil, err
	}
	if merr := txn.mergeContext(resp.GetTxn()); merr != nil {
		// The payload belongs to a response we cannot reconcile; drop it.
		return nil, merr
	}
	return resp, nil
}

// Mutate applies a single mutation. Setting mu.CommitNow commits the
// transaction in the same round trip, making a separate Commit unnecessary.
func (txn *Txn) Mutate(ctx context.Context, mu *api.Mutation) (*api.Response, error) {
	return txn.mutate(ctx, &api.Request{
		Mutations: []*api.Mutation{mu},
		CommitNow: mu.GetCommitNow(),
	})
}

func (txn *Txn) mutate(ctx context.Context, req *api.Request) (*api.Response, error) {
	switch {
	case txn.readOnly:
		return nil, ErrReadOnlyTxn
	case txn.state != StateOK:
		return nil, &TxnStateError{State: txn.state}
	}
	if !hasMutations(req) {
		// Mutating nothing is legal and free.
		return &api.Response{}, nil
	}
	if span := opentracing.SpanFromContext(ctx); span != nil {
		span = opentracing.StartSpan("meridian.txn.Mutate", opentracing.ChildOf(span.Context()))
		defer span.Finish()
	}

	txn.mutated = true
	txn.stamp(req)
	var resp *api.Response
	err := txn.client.do(ctx, "Mutate", cmdDurationMutate, cmdFailedDurationMutate,
		func(ctx context.Context, mc api.MeridianClient) error {
			r, err := mc.Query(ctx, req)
			if err != nil {
				return err
			}
			resp = r
			return nil
		})
	if err != nil {
		// Roll back what the server may have staged. The discard is best
		// effort and its outcome is deliberately ignored: the caller must see
		// the original failure, and the final state is StateError even though
		// Discard marks the transaction aborted first.
		if derr := txn.Discard(ctx); derr != nil {
			log.Warn("[meridian] discard after failed mutation", zap.Error(derr))
		}
		txn.state = StateError
		return nil, err
	}
	if req.GetCommitNow() {
		txn.state = StateCommitted
	}
	if merr := txn.mergeContext(resp.GetTxn()); merr != nil {
		// Keep the payload for inspection, but the transaction's bookkeeping
		// is broken and the caller has to know.
		return resp, merr
	}
	return resp, nil
}

// Commit finalizes the transaction. When nothing was mutated there is nothing
// for the server to resolve and no round trip is made.
func (txn *Txn) Commit(ctx context.Context) error {
	switch {
	case txn.readOnly:
		return ErrReadOnlyTxn
	case txn.state != StateOK:
		return &TxnStateError{State: txn.state}
	}
	txn.state = StateCommitted
	if !txn.mutated {
		return nil
	}
	if span := opentracing.SpanFromContext(ctx); span != nil {
		span = opentracing.StartSpan("meridian.txn.Commit", opentracing.ChildOf(span.Context()))
		defer span.Finish()
	}

	var back *api.TxnContext
	err := txn.client.do(ctx, "CommitOrAbort", cmdDurationCommit, cmdFailedDurationCommit,
		func(ctx context.Context, mc api.MeridianClient) error {
			r, err := mc.CommitOrAbort(ctx, txn.context)
			if err != nil {
				return err
			}
			back = r
			return nil
		})
	if err != nil {
		return err
	}
	if back.GetAborted() {
		// The server resolved the conflict check against us. The call itself
		// succeeded, so this surfaces as a logical rejection, not a transport
		// failure.
		txn.context.Aborted = true
		return ErrAborted
	}
	txn.context.CommitTs = back.GetCommitTs()
	return nil
}

// Discard aborts the transaction. It is safe to call any number of times and
// in any state, which makes it the universal cleanup path: once the
// transaction is resolved it returns nil without touching anything.
func (txn *Txn) Discard(ctx context.Context) error {
	if txn.state != StateOK {
		return nil
	}
	txn.state = StateAborted
	txn.context.Aborted = true
	if !txn.mutated {
		return nil
	}
	if span := opentracing.SpanFromContext(ctx); span != nil {
		span = opentracing.StartSpan("meridian.txn.Discard", opentracing.ChildOf(span.Context()))
		defer span.Finish()
	}

	return txn.client.do(ctx, "CommitOrAbort", cmdDurationDiscard, cmdFailedDurationDiscard,
		func(ctx context.Context, mc api.MeridianClient) error {
			_, err := mc.CommitOrAbort(ctx, txn.context)
			return err
		})
}

// Release schedules a best-effort discard without waiting for it, for
// teardown paths that cannot block. Callers that need the discard to have
// completed should call Discard directly instead.
func (txn *Txn) Release() {
	if txn.state != StateOK {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := txn.Discard(ctx); err != nil {
			log.Warn("[meridian] background discard failed", zap.Error(err))
		}
	}()
}

// stamp pins a request to the transaction's snapshot and capability flags.
func (txn *Txn) stamp(req *api.Request) {
	req.StartTs = txn.context.StartTs
	req.Hash = txn.context.Hash
	req.ReadOnly = txn.readOnly
	req.BestEffort = txn.bestEffort
}

// mergeContext folds a server-returned transaction context into the
// transaction's own. The hash is a freshness token and the latest response is
// authoritative for it; keys and preds are the conflict footprint of the whole
// transaction and grow monotonically. The server deduplicates, so repeated
// entries are fine.
func (txn *Txn) mergeContext(src *api.TxnContext) error {
	if src == nil {
		return nil
	}
	if txn.context.StartTs == 0 {
		txn.context.StartTs = src.StartTs
	}
	if txn.context.StartTs != src.StartTs {
		return &StartTsMismatchError{ClientTs: txn.context.StartTs, ServerTs: src.StartTs}
	}
	txn.context.Hash = src.Hash
	txn.context.Keys = append(txn.context.Keys, src.Keys...)
	txn.context.Preds = append(txn.context.Preds, src.Preds...)
	return nil
}

// hasMutations reports whether the request actually carries any mutation
// payload. Empty mutation messages do not count.
func hasMutations(req *api.Request) bool {
	for _, mu := range req.GetMutations() {
		if len(mu.GetSetJson()) > 0 || len(mu.GetDeleteJson()) > 0 {
			return true
		}
	}
	return false
}
