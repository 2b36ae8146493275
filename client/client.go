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
	"sync"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/meridiandb/client-go/config"
	"github.com/meridiandb/client-go/proto/pkg/api"
	"github.com/meridiandb/client-go/util/grpcutil"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/pingcap/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const defaultOpTimeout = 30 * time.Second

// Client is a Meridian database client. It fans calls out over a fixed set of
// backend connections and is the factory for transactions. A single Client is
// safe for concurrent use by many goroutines; each transaction it creates is
// not.
//
// It should not be used after calling Close().
type Client struct {
	clients   []api.MeridianClient
	conns     []*grpc.ClientConn // connections dialed by Open, closed by Close
	next      atomic.Uint32
	closed    atomic.Bool
	opTimeout time.Duration

	jwtMu sync.RWMutex
	jwt   *api.Jwt
}

// NewClient creates a client over already-constructed API stubs. The caller
// keeps ownership of the underlying connections; Close only marks the client
// unusable. At least one stub is required.
func NewClient(clients ...api.MeridianClient) *Client {
	if len(clients) == 0 {
		panic("meridian: NewClient requires at least one backend")
	}
	return &Client{
		clients:   clients,
		opTimeout: defaultOpTimeout,
	}
}

// Open dials every endpoint in the configuration and returns a client that
// owns the resulting connections. Dialing is non-blocking; a node that is down
// surfaces as a transport failure on the first call routed to it.
func Open(cfg config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	conns := make([]*grpc.ClientConn, 0, len(cfg.Endpoints))
	clients := make([]api.MeridianClient, 0, len(cfg.Endpoints))
	for _, ep := range cfg.Endpoints {
		cc, err := grpcutil.GetClientConn(ep, cfg.Security,
			grpc.WithUnaryInterceptor(grpc_prometheus.UnaryClientInterceptor))
		if err != nil {
			for _, opened := range conns {
				if cerr := opened.Close(); cerr != nil {
					log.Error("[meridian] failed to close connection", zap.Error(cerr))
				}
			}
			return nil, err
		}
		conns = append(conns, cc)
		clients = append(clients, api.NewMeridianClient(cc))
	}
	log.Info("[meridian] client opened", zap.Strings("endpoints", cfg.Endpoints))

	return &Client{
		clients:   clients,
		conns:     conns,
		opTimeout: cfg.OpTimeout.Duration,
	}, nil
}

// Close marks the client closed and releases the connections it owns. Calling
// it more than once is a no-op. In-flight calls race with the close and may
// still complete.
func (c *Client) Close() {
	if !c.closed.CAS(false, true) {
		return
	}
	for _, cc := range c.conns {
		if err := cc.Close(); err != nil {
			log.Error("[meridian] failed to close connection", zap.Error(err))
		}
	}
	log.Info("[meridian] client closed")
}

// anyClient returns the next backend in round-robin order. The cursor is a
// plain shared counter; under heavy races an index may repeat, which is
// harmless, but the result is always in range.
func (c *Client) anyClient() api.MeridianClient {
	i := c.next.Inc() - 1
	return c.clients[int(i%uint32(len(c.clients)))]
}

// do runs one remote call against the next backend. It is the single seam
// where RPC failures become TransportError values; nothing outside it may let
// an RPC error cross the public API.
func (c *Client) do(ctx context.Context, op string, ok, failed prometheus.Observer,
	f func(ctx context.Context, mc api.MeridianClient) error) error {
	if c.closed.Load() {
		return ErrClientClosed
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	start := time.Now()
	if err := f(c.withAuth(ctx), c.anyClient()); err != nil {
		failed.Observe(time.Since(start).Seconds())
		return &TransportError{Op: op, Err: errors.WithStack(err)}
	}
	ok.Observe(time.Since(start).Seconds())
	return nil
}

// opContext applies the client-level timeout when the caller did not set a
// deadline of their own.
func (c *Client) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.opTimeout)
}

// withAuth attaches the access token obtained by Login, if any.
func (c *Client) withAuth(ctx context.Context) context.Context {
	c.jwtMu.RLock()
	defer c.jwtMu.RUnlock()
	if c.jwt.GetAccessJwt() == "" {
		return ctx
	}
	md, ok := metadata.FromOutgoingContext(ctx)
	if !ok {
		md = metadata.New(nil)
	} else {
		md = md.Copy()
	}
	md.Set("accessJwt", c.jwt.GetAccessJwt())
	return metadata.NewOutgoingContext(ctx, md)
}

// NewTxn creates a read-write transaction.
func (c *Client) NewTxn() *Txn {
	return &Txn{
		client:  c,
		context: &api.TxnContext{},
	}
}

// NewReadOnlyTxn creates a read-only transaction. Read-only transactions are
// cheaper to run: they never hold locks and their Discard needs no round trip.
func (c *Client) NewReadOnlyTxn(opts ...TxnOption) *Txn {
	txn := c.NewTxn()
	txn.readOnly = true
	for _, opt := range opts {
		opt(txn)
	}
	return txn
}

// TxnOption configures a transaction at creation time.
type TxnOption func(*Txn)

// WithBestEffort lets the server answer read-only queries from its current
// state without waiting for a consensus read, trading strict freshness for
// latency.
func WithBestEffort() TxnOption {
	return func(txn *Txn) { txn.bestEffort = true }
}

// Alter applies a schema operation. It does not participate in any
// transaction.
func (c *Client) Alter(ctx context.Context, op *api.Operation) error {
	if span := opentracing.SpanFromContext(ctx); span != nil {
		span = opentracing.StartSpan("meridian.Alter", opentracing.ChildOf(span.Context()))
		defer span.Finish()
	}
	return c.do(ctx, "Alter", cmdDurationAlter, cmdFailedDurationAlter,
		func(ctx context.Context, mc api.MeridianClient) error {
			_, err := mc.Alter(ctx, op)
			return err
		})
}

// CheckVersion returns the version tag of the node that answers.
func (c *Client) CheckVersion(ctx context.Context) (string, error) {
	if span := opentracing.SpanFromContext(ctx); span != nil {
		span = opentracing.StartSpan("meridian.CheckVersion", opentracing.ChildOf(span.Context()))
		defer span.Finish()
	}
	var tag string
	err := c.do(ctx, "CheckVersion", cmdDurationCheckVersion, cmdFailedDurationCheckVersion,
		func(ctx context.Context, mc api.MeridianClient) error {
			v, err := mc.CheckVersion(ctx, &api.Check{})
			if err != nil {
				return err
			}
			tag = v.GetTag()
			return nil
		})
	return tag, err
}

// Login authenticates against the cluster and stores the returned token.
// Subsequent calls from this client carry it as gRPC metadata.
func (c *Client) Login(ctx context.Context, userid, password string) error {
	if span := opentracing.SpanFromContext(ctx); span != nil {
		span = opentracing.StartSpan("meridian.Login", opentracing.ChildOf(span.Context()))
		defer span.Finish()
	}
	return c.do(ctx, "Login", cmdDurationLogin, cmdFailedDurationLogin,
		func(ctx context.Context, mc api.MeridianClient) error {
			jwt, err := mc.Login(ctx, &api.LoginRequest{Userid: userid, Password: password})
			if err != nil {
				return err
			}
			c.jwtMu.Lock()
			c.jwt = jwt
			c.jwtMu.Unlock()
			return nil
		})
}
