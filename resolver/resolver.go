// Package resolver answers ENS text and contenthash lookups from the Lens
// profile of the node's owner.
//
// A lookup is two hops: the ENS registry gives the owner of the node, then the
// Lens API gives the attributes of the first profile owned by that address.
// Nothing is cached, every call hits both services.
package resolver

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/tranvictor/lensens/config"
	"github.com/tranvictor/lensens/lens"
	"github.com/tranvictor/lensens/networks"
	"github.com/tranvictor/lensens/registry"
	"github.com/tranvictor/lensens/util/reader"
)

type OwnerLookup interface {
	Owner(ctx context.Context, node [32]byte) (common.Address, error)
}

type AttributeSource interface {
	Attributes(ctx context.Context, owner common.Address) ([]lens.Attribute, error)
}

type Resolver struct {
	config     config.Config
	owners     OwnerLookup
	attributes AttributeSource
	node       *reader.OneNodeReader
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

type Option func(*Resolver)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithHTTPClient sets the client used for the profile service. Its timeout
// applies to every profile query.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Resolver) {
		r.httpClient = c
	}
}

func WithOwnerLookup(o OwnerLookup) Option {
	return func(r *Resolver) {
		r.owners = o
	}
}

func WithAttributeSource(a AttributeSource) Option {
	return func(r *Resolver) {
		r.attributes = a
	}
}

// New builds a resolver from cfg. No connection is made until the first
// lookup. cfg must come from config.New, a zero Config has no rpc url and is
// rejected with config.ErrMissingRPCURL.
func New(cfg config.Config, opts ...Option) (*Resolver, error) {
	if cfg.RPCURL() == "" {
		return nil, config.ErrMissingRPCURL
	}
	r := &Resolver{
		config: cfg,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.owners == nil {
		var chainID uint64
		if n, err := networks.GetNetwork(cfg.Network()); err == nil {
			chainID = n.GetChainID()
		}
		node := reader.NewOneNodeReader(cfg.Network(), cfg.RPCURL(), chainID)
		reg, err := registry.New(node, cfg.RegistryAddress())
		if err != nil {
			return nil, err
		}
		r.node = node
		r.owners = reg
	}
	if r.attributes == nil {
		r.attributes = lens.New(cfg.ProfileServiceURL(), r.httpClient)
	}
	return r, nil
}

// NewFromOptions is config.New followed by New.
func NewFromOptions(opts config.Options, ropts ...Option) (*Resolver, error) {
	cfg, err := config.New(opts)
	if err != nil {
		return nil, err
	}
	return New(cfg, ropts...)
}

func (r *Resolver) Config() config.Config {
	return r.config
}

// Close releases the RPC connection, if one was made. The resolver reconnects
// on the next lookup.
func (r *Resolver) Close() {
	if r.node != nil {
		r.node.Close()
	}
}

// Resolve is the selector based entry point, e.g.
//
//	Resolve(ctx, "text(bytes32,string)", node, "twitter")
//	Resolve(ctx, "contenthash(bytes32)", node)
//
// found is false when the owner has no profile or no such attribute.
func (r *Resolver) Resolve(ctx context.Context, selector string, args ...interface{}) (value string, found bool, err error) {
	node, record, err := ParseCall(selector, args...)
	if err != nil {
		return "", false, err
	}
	return r.Lookup(ctx, node, record)
}

func (r *Resolver) Lookup(ctx context.Context, node [32]byte, record Record) (string, bool, error) {
	attrs, err := r.Attributes(ctx, node)
	if err != nil {
		return "", false, err
	}
	value, found := SelectValue(attrs, record.Key())
	r.logger.Debugw("record lookup", "node", hexutil.Encode(node[:]), "record", record.String(), "found", found)
	return value, found, nil
}

func (r *Resolver) Text(ctx context.Context, node [32]byte, key string) (string, bool, error) {
	return r.Lookup(ctx, node, TextRecord(key))
}

func (r *Resolver) ContentHash(ctx context.Context, node [32]byte) (string, bool, error) {
	return r.Lookup(ctx, node, ContentHash())
}

func (r *Resolver) Owner(ctx context.Context, node [32]byte) (common.Address, error) {
	owner, err := r.owners.Owner(ctx, node)
	if err != nil {
		return common.Address{}, err
	}
	r.logger.Debugw("resolved owner", "node", hexutil.Encode(node[:]), "owner", owner.Hex())
	return owner, nil
}

// Attributes returns the attributes of the first profile owned by the owner
// of node, empty when there is no such profile.
func (r *Resolver) Attributes(ctx context.Context, node [32]byte) ([]lens.Attribute, error) {
	owner, err := r.Owner(ctx, node)
	if err != nil {
		return nil, err
	}
	attrs, err := r.attributes.Attributes(ctx, owner)
	if err != nil {
		return nil, err
	}
	r.logger.Debugw("fetched profile attributes", "owner", owner.Hex(), "count", len(attrs))
	return attrs, nil
}
