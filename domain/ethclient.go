package domain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
)

// EthClientRepo is the subset of go-ethereum/ethclient used for read-only calls
type EthClientRepo interface {
	ChainID(context.Context) (*big.Int, error)
	CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error)
}
