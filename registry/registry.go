// Package registry reads node ownership from the ENS registry contract.
package registry

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/lensens/util/reader"
)

const registryABI = `[{
	"type": "function",
	"name": "owner",
	"stateMutability": "view",
	"inputs": [{"name": "node", "type": "bytes32"}],
	"outputs": [{"name": "", "type": "address"}]
}]`

var parsedABI = mustParseABI(registryABI)

func mustParseABI(s string) *abi.ABI {
	result, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(errors.Wrap(err, "invalid registry ABI"))
	}
	return &result
}

// ABI returns the parsed registry ABI, only owner(bytes32) is declared.
func ABI() *abi.ABI {
	return parsedABI
}

type Registry struct {
	reader  reader.ContractReader
	address common.Address
	abi     *abi.ABI
}

func New(r reader.ContractReader, address common.Address) (*Registry, error) {
	if r == nil {
		return nil, errors.New("registry needs a contract reader")
	}
	return &Registry{
		reader:  r,
		address: address,
		abi:     parsedABI,
	}, nil
}

// Owner returns the account owning node at the latest block. Errors from the
// node are returned as they are.
func (r *Registry) Owner(ctx context.Context, node [32]byte) (common.Address, error) {
	data, err := r.reader.ReadContractToBytes(ctx, 0, common.Address{}, r.address, r.abi, "owner", node)
	if err != nil {
		return common.Address{}, err
	}
	var owner common.Address
	if err := r.abi.UnpackIntoInterface(&owner, "owner", data); err != nil {
		return common.Address{}, err
	}
	return owner, nil
}
