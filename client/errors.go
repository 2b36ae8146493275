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
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrClientClosed is returned when an operation is attempted after the
	// owning Client has been closed.
	ErrClientClosed = errors.New("[meridian] client is closed")
	// ErrReadOnlyTxn is returned when a mutation or commit is attempted on a
	// read-only transaction.
	ErrReadOnlyTxn = errors.New("[meridian] transaction is read-only")
	// ErrAborted is returned by Commit when the server rejects the commit and
	// aborts the transaction instead. The caller may retry with a new
	// transaction.
	ErrAborted = errors.New("[meridian] transaction was aborted by the server")
)

// TxnStateError reports an operation attempted on a transaction that has
// already reached a terminal state. The offending state is carried for
// diagnostics.
type TxnStateError struct {
	State TxnState
}

func (e *TxnStateError) Error() string {
	return fmt.Sprintf("[meridian] transaction is no longer usable, state is %s", e.State)
}

// StartTsMismatchError reports a server response whose transaction context
// belongs to a different logical transaction than the one in progress. The
// transaction must be treated as unusable after seeing it.
type StartTsMismatchError struct {
	ClientTs uint64
	ServerTs uint64
}

func (e *StartTsMismatchError) Error() string {
	return fmt.Sprintf("[meridian] start timestamp mismatch, transaction holds %d but response carries %d",
		e.ClientTs, e.ServerTs)
}

// TransportError wraps a failed remote call. It is the only form in which RPC
// failures cross the client API boundary; logical rejections arrive in the
// successful response payload instead.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("[meridian] %s call failed: %v", e.Op, e.Err)
}

// Cause returns the underlying RPC error, so errors.Cause sees through the
// wrapper.
func (e *TransportError) Cause() error { return e.Err }
