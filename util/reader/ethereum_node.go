package reader

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ContractReader is the read-only slice of a node that contract bindings need.
type ContractReader interface {
	NodeName() string
	ReadContractToBytes(
		ctx context.Context,
		atBlock int64,
		from common.Address,
		caddr common.Address,
		abi *abi.ABI,
		method string,
		args ...interface{},
	) ([]byte, error)
}
