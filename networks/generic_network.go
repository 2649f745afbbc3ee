package networks

type GenericNetworkConfig struct {
	Name             string   `json:"name"`
	AlternativeNames []string `json:"alternative_names"`
	ChainID          uint64   `json:"chain_id"`
	NodeVariableName string   `json:"node_variable_name"`
}

// GenericNetwork is a network fully described by its config, every built-in
// network is one of these.
type GenericNetwork struct {
	config GenericNetworkConfig
}

func NewGenericNetwork(config GenericNetworkConfig) *GenericNetwork {
	return &GenericNetwork{config: config}
}

func (gn *GenericNetwork) GetName() string {
	return gn.config.Name
}

func (gn *GenericNetwork) GetChainID() uint64 {
	return gn.config.ChainID
}

func (gn *GenericNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericNetwork) GetNodeVariableName() string {
	return gn.config.NodeVariableName
}
