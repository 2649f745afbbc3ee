package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
)

const (
	DEFAULT_NETWORK          string = "homestead"
	DEFAULT_PROFILE_SERVICE  string = "https://api.lens.dev/"
	DEFAULT_REGISTRY_ADDRESS string = "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"
)

var ErrMissingRPCURL = errors.New("rpc url is required")

// Options is what a caller hands to the resolver. Every field is optional
// except RPCURL, empty fields fall back to the defaults above.
type Options struct {
	Network           string `mapstructure:"network"`
	ProfileServiceURL string `mapstructure:"profile_url"`
	RegistryAddress   string `mapstructure:"registry"`
	RPCURL            string `mapstructure:"rpc"`
}

// Config is the resolved, immutable configuration of a resolver.
type Config struct {
	network           string
	profileServiceURL string
	registryAddress   common.Address
	rpcURL            string
}

func New(opts Options) (Config, error) {
	rpcURL := strings.TrimSpace(opts.RPCURL)
	if rpcURL == "" {
		return Config{}, ErrMissingRPCURL
	}
	return Config{
		network:           orDefault(opts.Network, DEFAULT_NETWORK),
		profileServiceURL: orDefault(opts.ProfileServiceURL, DEFAULT_PROFILE_SERVICE),
		registryAddress:   common.HexToAddress(orDefault(opts.RegistryAddress, DEFAULT_REGISTRY_ADDRESS)),
		rpcURL:            rpcURL,
	}, nil
}

func orDefault(value, def string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return def
}

func (c Config) Network() string                 { return c.network }
func (c Config) ProfileServiceURL() string       { return c.profileServiceURL }
func (c Config) RegistryAddress() common.Address { return c.registryAddress }
func (c Config) RPCURL() string                  { return c.rpcURL }
