package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/tranvictor/lensens/config"
	"github.com/tranvictor/lensens/networks"
	"github.com/tranvictor/lensens/resolver"
	"github.com/tranvictor/lensens/ui"
)

// overridden in tests
var (
	newUI = func() ui.UI {
		return ui.NewTerminalUI()
	}
	newResolver = func(opts config.Options) (*resolver.Resolver, error) {
		return resolver.NewFromOptions(opts, resolver.WithLogger(logger))
	}
)

// loadOptions reads the options from flags, env and config file, falling back
// to the network's node env var for the rpc url.
func loadOptions() (config.Options, error) {
	opts, err := config.Load(settings)
	if err != nil {
		return config.Options{}, err
	}
	if strings.TrimSpace(opts.RPCURL) == "" {
		network := opts.Network
		if network == "" {
			network = config.DEFAULT_NETWORK
		}
		if n, err := networks.GetNetwork(network); err == nil {
			opts.RPCURL = os.Getenv(n.GetNodeVariableName())
		}
	}
	return opts, nil
}

func getResolver() (*resolver.Resolver, error) {
	opts, err := loadOptions()
	if err != nil {
		return nil, err
	}
	r, err := newResolver(opts)
	if errors.Is(err, config.ErrMissingRPCURL) {
		return nil, errors.WithHint(err, "pass --rpc, set LENSENS_RPC or the node env var of the network")
	}
	return r, err
}

// nodeFromArg accepts a 0x prefixed namehash or an ENS name.
func nodeFromArg(arg string) ([32]byte, error) {
	arg = strings.TrimSpace(arg)
	if strings.HasPrefix(strings.ToLower(arg), "0x") {
		return resolver.ParseNode(arg)
	}
	node, err := goens.NameHash(arg)
	if err != nil {
		return [32]byte{}, errors.Wrapf(err, "couldn't hash name %q", arg)
	}
	return node, nil
}

func lookupContext(parent context.Context) (context.Context, context.CancelFunc) {
	if Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, Timeout)
}
