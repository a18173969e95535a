package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/pricebot/base/ctx"
	"github.com/x-xyz/pricebot/domain/keys"
	"github.com/x-xyz/pricebot/service/cache/provider"
	"github.com/x-xyz/pricebot/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, keys.CacheKey(ts.im.pfx, k), sv, time.Second))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestSet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	sv, _, err := ts.cache.Get(mockCtx, keys.CacheKey(ts.im.pfx, k))
	ts.NoError(err)

	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	time.Sleep(2 * time.Second)

	_, _, err = ts.cache.Get(mockCtx, keys.CacheKey(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k     = "key"
		v     = value{"value"}
		c     = &value{}
		calls = 0
	)

	getter := func() (interface{}, error) {
		calls++
		return &v, nil
	}

	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)

	c = &value{}
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFuncGetterFailed() {
	want := errors.New("rpc down")
	c := &value{}

	err := ts.im.GetByFunc(mockCtx, "key", c, func() (interface{}, error) {
		return nil, want
	})
	ts.Equal(want, err)

	_, _, err = ts.cache.Get(mockCtx, keys.CacheKey(ts.im.pfx, "key"))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetByFuncBrokenEntry() {
	v := value{"fresh"}
	ts.NoError(ts.cache.Set(mockCtx, keys.CacheKey(ts.im.pfx, "key"), []byte("{not json"), time.Minute))

	c := &value{}
	ts.NoError(ts.im.GetByFunc(mockCtx, "key", c, func() (interface{}, error) {
		return &v, nil
	}))
	ts.Equal(v, *c)
}
