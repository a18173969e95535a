package metrics

import (
	"fmt"
	"sync"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/pricebot/base/log"
)

const (
	// DdPort is the default dogstatsd port
	DdPort = 8125
	// buffer 10 metrics before sending to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}
	client   statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// defaultClient talks to the datadog agent at datadog_host, serverless
// deployments usually have none and fall back to the log client
func defaultClient() statsCli {
	initOnce.Do(func() {
		host := viper.GetString("datadog_host")
		if len(host) == 0 {
			client = &LogClient{}
			return
		}

		addr := fmt.Sprintf("%s:%d", host, DdPort)
		log.Log().WithField("addr", addr).Info("connecting to datadog agent")
		c, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn("can't talk to datadog agent, metrics go to log")
			client = &LogClient{}
			return
		}
		client = c
	})
	return client
}
