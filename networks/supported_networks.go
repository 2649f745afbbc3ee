package networks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Insert more Network implementation here to support
// more chains. The ENS registry lives at the same address on all of them.
var supportedNetworks = []Network{
	EthereumMainnet,
	Sepolia,
	Goerli,
	Holesky,
}

var globalSupportedNetworks = newSupportedNetworks()
var ErrNetworkNotFound = fmt.Errorf("network not found")

type networks struct {
	mu       sync.RWMutex
	networks map[string]Network
}

func (n *networks) getSupportedNetworkNames() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	res := []string{}
	for name := range n.networks {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

func (n *networks) getNetwork(name string) (Network, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	res, found := n.networks[strings.ToLower(name)]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) add(network Network) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, an := range network.GetAlternativeNames() {
		if existing, found := n.networks[strings.ToLower(an)]; found && existing.GetName() != network.GetName() {
			return fmt.Errorf("network with name or alternative name of '%s' already exists", an)
		}
	}
	n.networks[strings.ToLower(network.GetName())] = network
	for _, an := range network.GetAlternativeNames() {
		n.networks[strings.ToLower(an)] = network
	}
	return nil
}

func newSupportedNetworks() *networks {
	result := networks{
		networks: map[string]Network{},
	}
	for _, n := range supportedNetworks {
		if _, found := result.networks[n.GetName()]; found {
			panic(
				fmt.Errorf(
					"network with name or alternative name of '%s' already exists",
					n.GetName(),
				),
			)
		}
		if err := result.add(n); err != nil {
			panic(err)
		}
	}
	return &result
}

func NewNetworkFromJSON(content []byte) (Network, error) {
	networkConfig := GenericNetworkConfig{}
	err := json.Unmarshal(content, &networkConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal network config: %w", err)
	}
	if networkConfig.Name == "" {
		return nil, fmt.Errorf("network config has no name")
	}
	return NewGenericNetwork(networkConfig), nil
}

// LoadCustomNetworks registers every *.json network config found in dir.
// Custom networks override built-in ones with the same name.
// A missing dir is not an error.
func LoadCustomNetworks(dir string) ([]Network, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob json files in %s: %w", dir, err)
	}

	loaded := []Network{}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return loaded, fmt.Errorf("failed to read file %s: %w", file, err)
		}
		network, err := NewNetworkFromJSON(content)
		if err != nil {
			return loaded, fmt.Errorf("failed to parse network from file %s: %w", file, err)
		}
		if err := globalSupportedNetworks.add(network); err != nil {
			return loaded, err
		}
		loaded = append(loaded, network)
	}
	return loaded, nil
}

func GetNetwork(name string) (Network, error) {
	return globalSupportedNetworks.getNetwork(name)
}

func GetSupportedNetworkNames() []string {
	return globalSupportedNetworks.getSupportedNetworkNames()
}
