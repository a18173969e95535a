/*Package metrics wraps datadog-go to record timings and counters.
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"strings"
	"time"

	"github.com/x-xyz/pricebot/base/env"
	"github.com/x-xyz/pricebot/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		tags: []string{
			"instance:" + env.InstanceName(),
			"env:" + env.EnvName(),
			"app:" + env.AppName(),
		},
		client: defaultClient,
	}
}

// Metrics prefixes every key with the package name and adds deployment tags
type Metrics struct {
	pkgName string
	tags    []string
	client  func() statsCli
}

const sampleRate = 1.0

func (mt *Metrics) bump(typ, key string, tags []string, send func(statsCli, string, []string) error) {
	defer func() {
		if p := recover(); p != nil {
			log.Log().WithFields(log.Fields{"panic": p, "key": key, "tags": strings.Join(tags, "#")}).Error(typ + " panic")
		}
	}()

	name := mt.pkgName + "." + key
	all := make([]string, 0, len(mt.tags)+len(tags)/2)
	all = append(all, mt.tags...)
	all = append(all, parseTag(tags)...)
	if err := send(mt.client(), name, all); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": name, "func": typ}).Error("Bump fail")
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	mt.bump("BumpAvg", key, tags, func(c statsCli, name string, t []string) error {
		return c.Gauge(name, val, t, sampleRate)
	})
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	mt.bump("BumpSum", key, tags, func(c statsCli, name string, t []string) error {
		return c.Count(name, int64(val), t, sampleRate)
	})
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	mt.bump("BumpHistogram", key, tags, func(c statsCli, name string, t []string) error {
		return c.Histogram(name, val, t, sampleRate)
	})
}

// BumpTime starts a timer, call End on the result to record it:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		end: func(d time.Duration) {
			ms := float64(d) / float64(time.Millisecond)
			mt.bump("BumpTime", key, tags, func(c statsCli, name string, t []string) error {
				return c.TimeInMilliseconds(name, ms, t, sampleRate)
			})
		},
	}
}

type timeTracker struct {
	start time.Time
	end   func(time.Duration)
}

func (t *timeTracker) End() {
	t.end(time.Since(t.start))
}

// parseTag turns key/value pairs into datadog "key:value" tags
func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}
