package reader

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

var ErrChainIDMismatch = errors.New("node is on a different chain")

// OneNodeReader talks to a single RPC node. The connection is established on
// first use. When expectedChainID is non zero, the node's eth_chainId is
// checked once right after dialing.
type OneNodeReader struct {
	nodeName        string
	nodeURL         string
	expectedChainID uint64
	client          *rpc.Client
	ethClient       *ethclient.Client
	mu              sync.Mutex
}

func NewOneNodeReader(name, url string, expectedChainID uint64) *OneNodeReader {
	return &OneNodeReader{
		nodeName:        name,
		nodeURL:         url,
		expectedChainID: expectedChainID,
		client:          nil,
		ethClient:       nil,
		mu:              sync.Mutex{},
	}
}

func (onr *OneNodeReader) NodeName() string {
	return onr.nodeName
}

func (onr *OneNodeReader) NodeURL() string {
	return onr.nodeURL
}

func (onr *OneNodeReader) initConnection(ctx context.Context) error {
	client, err := rpc.DialContext(ctx, onr.NodeURL())
	if err != nil {
		return fmt.Errorf("couldn't connect to %s: %w", onr.nodeName, err)
	}
	ethClient := ethclient.NewClient(client)

	if onr.expectedChainID != 0 {
		chainID, err := ethClient.ChainID(ctx)
		if err != nil {
			client.Close()
			return err
		}
		if chainID.Uint64() != onr.expectedChainID {
			client.Close()
			return fmt.Errorf(
				"%w: %s serves chain %d, expected %d",
				ErrChainIDMismatch, onr.nodeName, chainID.Uint64(), onr.expectedChainID,
			)
		}
	}

	onr.client = client
	onr.ethClient = ethClient
	return nil
}

func (onr *OneNodeReader) EthClient(ctx context.Context) (*ethclient.Client, error) {
	onr.mu.Lock()
	defer onr.mu.Unlock()
	if onr.ethClient != nil {
		return onr.ethClient, nil
	}
	if err := onr.initConnection(ctx); err != nil {
		return nil, err
	}
	return onr.ethClient, nil
}

func (onr *OneNodeReader) ReadContractToBytes(
	ctx context.Context,
	atBlock int64,
	from common.Address,
	caddr common.Address,
	abi *abi.ABI,
	method string,
	args ...interface{},
) ([]byte, error) {
	ethcli, err := onr.EthClient(ctx)
	if err != nil {
		return nil, err
	}

	data, err := abi.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	var blockBig *big.Int
	if atBlock > 0 {
		blockBig = big.NewInt(atBlock)
	}

	return ethcli.CallContract(ctx, ethereum.CallMsg{
		From:     from,
		To:       &caddr,
		Gas:      0,
		GasPrice: nil,
		Value:    nil,
		Data:     data,
	}, blockBig)
}

func (onr *OneNodeReader) Close() {
	onr.mu.Lock()
	defer onr.mu.Unlock()
	if onr.client != nil {
		onr.client.Close()
		onr.client = nil
		onr.ethClient = nil
	}
}
