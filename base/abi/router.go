package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// UniswapV2RouterABI covers the quote method shared by uniswap v2 style routers
var UniswapV2RouterABI abi.ABI

func init() {
	_abi, err := abi.JSON(strings.NewReader(uniswapV2RouterABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	UniswapV2RouterABI = _abi
}

var uniswapV2RouterABIJson = `
[
  {
    "inputs": [
      {
        "internalType": "uint256",
        "name": "amountIn",
        "type": "uint256"
      },
      {
        "internalType": "address[]",
        "name": "path",
        "type": "address[]"
      }
    ],
    "name": "getAmountsOut",
    "outputs": [
      {
        "internalType": "uint256[]",
        "name": "amounts",
        "type": "uint256[]"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  }
]
`
