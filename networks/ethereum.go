package networks

var EthereumMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:             "mainnet",
	AlternativeNames: []string{"homestead", "ethereum"},
	ChainID:          1,
	NodeVariableName: "ETHEREUM_MAINNET_NODE",
})

var Sepolia Network = NewGenericNetwork(GenericNetworkConfig{
	Name:             "sepolia",
	AlternativeNames: []string{},
	ChainID:          11155111,
	NodeVariableName: "ETHEREUM_SEPOLIA_NODE",
})

var Goerli Network = NewGenericNetwork(GenericNetworkConfig{
	Name:             "goerli",
	AlternativeNames: []string{},
	ChainID:          5,
	NodeVariableName: "ETHEREUM_GOERLI_NODE",
})

var Holesky Network = NewGenericNetwork(GenericNetworkConfig{
	Name:             "holesky",
	AlternativeNames: []string{},
	ChainID:          17000,
	NodeVariableName: "ETHEREUM_HOLESKY_NODE",
})
