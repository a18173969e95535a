package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	baseabi "github.com/x-xyz/pricebot/base/abi"
	"github.com/x-xyz/pricebot/base/ctx"
	"github.com/x-xyz/pricebot/domain"
)

var (
	mockCTX = ctx.Background()
	token   = common.HexToAddress("0xB770074eA2A8325440798fDF1c29B235b31922Ae")
)

type fakeEth struct {
	chainId *big.Int
	res     []byte
	err     error
	msgs    []ethereum.CallMsg
}

func (f *fakeEth) ChainID(context.Context) (*big.Int, error) {
	return f.chainId, f.err
}

func (f *fakeEth) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.msgs = append(f.msgs, msg)
	return f.res, f.err
}

type testsuite struct {
	suite.Suite
	eth    *fakeEth
	client Client
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.eth = &fakeEth{chainId: big.NewInt(25)}
	t.client = NewClientWithEth(domain.ChainId(25), t.eth)
}

func (t *testsuite) TestCall() {
	out, err := baseabi.ERC20ABI.Methods["decimals"].Outputs.Pack(uint8(18))
	t.Require().NoError(err)
	t.eth.res = out

	res, err := t.client.Call(mockCTX, token, nil, baseabi.ERC20ABI, "decimals")
	t.NoError(err)
	t.Equal([]interface{}{uint8(18)}, res)

	t.Require().Len(t.eth.msgs, 1)
	t.Equal(token, *t.eth.msgs[0].To)
	t.Equal(baseabi.ERC20ABI.Methods["decimals"].ID, t.eth.msgs[0].Data[:4])
}

func (t *testsuite) TestCallPackFailed() {
	_, err := t.client.Call(mockCTX, token, nil, baseabi.ERC20ABI, "transfer")
	t.Error(err)
	t.Empty(t.eth.msgs)
}

func (t *testsuite) TestCallRpcFailed() {
	t.eth.err = errors.New("connection refused")

	_, err := t.client.Call(mockCTX, token, nil, baseabi.ERC20ABI, "symbol")
	t.ErrorIs(err, domain.ErrUpstreamQuery)
	t.Contains(err.Error(), "connection refused")
}

func (t *testsuite) TestCallMalformedResult() {
	t.eth.res = []byte{0x01, 0x02}

	_, err := t.client.Call(mockCTX, token, nil, baseabi.ERC20ABI, "symbol")
	t.ErrorIs(err, domain.ErrUpstreamQuery)
}

func (t *testsuite) TestChainID() {
	id, err := t.client.ChainID(mockCTX)
	t.NoError(err)
	t.Equal(int64(25), id.Int64())

	t.eth.chainId = big.NewInt(1)
	_, err = t.client.ChainID(mockCTX)
	t.ErrorIs(err, domain.ErrUnsupportedChain)

	t.eth.err = errors.New("timeout")
	_, err = t.client.ChainID(mockCTX)
	t.ErrorIs(err, domain.ErrUpstreamQuery)
}
