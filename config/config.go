package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config carries everything needed to open a client against a Meridian
// cluster. It can be filled in by hand or loaded from a TOML file.
type Config struct {
	// Endpoints lists the gRPC addresses of the cluster nodes. The client
	// spreads calls over all of them; at least one is required.
	Endpoints []string `toml:"endpoints"`
	// OpTimeout is the deadline applied to a remote call when the caller's
	// context does not carry one of its own.
	OpTimeout Duration `toml:"op-timeout"`
	Security  Security `toml:"security"` // TLS options, empty means plaintext.
}

// Security holds the TLS material used when dialing cluster nodes.
type Security struct {
	CAPath   string `toml:"ca-path"`
	CertPath string `toml:"cert-path"`
	KeyPath  string `toml:"key-path"`
}

var DefaultConf = Config{
	Endpoints: []string{"127.0.0.1:9080"},
	OpTimeout: Duration{30 * time.Second},
}

// Load reads a TOML file over the receiver. Fields absent from the file keep
// their current values.
func (c *Config) Load(path string) error {
	_, err := toml.DecodeFile(path, c)
	return errors.WithStack(err)
}

func (c *Config) Validate() error {
	if len(c.Endpoints) == 0 {
		return errors.New("no endpoints configured")
	}
	if c.OpTimeout.Duration <= 0 {
		return errors.New("op-timeout must be positive")
	}
	if (c.Security.CertPath == "") != (c.Security.KeyPath == "") {
		return errors.New("cert-path and key-path must be set together")
	}
	return nil
}

// Duration is a time.Duration that can be decoded from a TOML string such as
// "3s" or "500ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return errors.WithStack(err)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
