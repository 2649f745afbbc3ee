package networks

type Network interface {
	GetName() string
	GetChainID() uint64
	GetAlternativeNames() []string

	// GetNodeVariableName is the env var holding an RPC url for this network,
	// used when no rpc url is given explicitly.
	GetNodeVariableName() string
}
