package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	Big1  = big.NewInt(1)
	Big10 = big.NewInt(10)
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

func ToCommonAddresses(addrs []Address) []common.Address {
	res := make([]common.Address, len(addrs))
	for i, a := range addrs {
		res[i] = a.ToCommon()
	}
	return res
}

// Pow10 returns 10^n, the raw amount of one whole token with n decimals
func Pow10(n int32) *big.Int {
	return new(big.Int).Exp(Big10, big.NewInt(int64(n)), nil)
}
