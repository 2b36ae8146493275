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

package grpcutil

import (
	"crypto/tls"
	"crypto/x509"
	"io/ioutil"

	"github.com/meridiandb/client-go/config"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

// GetClientConn returns a gRPC client connection to addr. TLS is used when the
// security options name a CA certificate, plaintext otherwise.
func GetClientConn(addr string, security config.Security, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	cred := grpc.WithInsecure()
	if len(security.CAPath) != 0 {
		var certificates []tls.Certificate
		if len(security.CertPath) != 0 && len(security.KeyPath) != 0 {
			// Load the client certificates from disk
			certificate, err := tls.LoadX509KeyPair(security.CertPath, security.KeyPath)
			if err != nil {
				return nil, errors.Errorf("could not load client key pair: %s", err)
			}
			certificates = append(certificates, certificate)
		}

		// Create a certificate pool from the certificate authority
		certPool := x509.NewCertPool()
		ca, err := ioutil.ReadFile(security.CAPath)
		if err != nil {
			return nil, errors.Errorf("could not read ca certificate: %s", err)
		}

		// Append the certificates from the CA
		if !certPool.AppendCertsFromPEM(ca) {
			return nil, errors.New("failed to append ca certs")
		}

		creds := credentials.NewTLS(&tls.Config{
			Certificates: certificates,
			RootCAs:      certPool,
		})

		cred = grpc.WithTransportCredentials(creds)
	}
	cc, err := grpc.Dial(addr, append(opts, cred)...)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return cc, nil
}
