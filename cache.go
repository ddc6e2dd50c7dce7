package minpairs

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// queryKey digests everything a result depends on. Allowed sets are
// order-insensitive; a nil set and an empty set hash differently because
// they filter differently.
func queryKey(spec PairSpec, cfg FilterConfig, policy CollisionPolicy) uint64 {
	d := xxhash.New()
	field := func(s string) {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}

	field(spec.First)
	field(spec.Second)
	field(strconv.FormatFloat(cfg.MinFrequency, 'g', -1, 64))
	field(policy.String())

	if cfg.PartsOfSpeech == nil {
		field("pos:*")
	} else {
		tags := make([]string, len(cfg.PartsOfSpeech))
		for i, t := range cfg.PartsOfSpeech {
			tags[i] = strings.ToUpper(t)
		}
		sort.Strings(tags)
		field("pos:" + strconv.Itoa(len(tags)))
		for _, t := range tags {
			field(t)
		}
	}

	if cfg.Etymologies == nil {
		field("ety:*")
	} else {
		etys := make([]string, len(cfg.Etymologies))
		for i, e := range cfg.Etymologies {
			etys[i] = string(e)
		}
		sort.Strings(etys)
		field("ety:" + strconv.Itoa(len(etys)))
		for _, e := range etys {
			field(e)
		}
	}
	return d.Sum64()
}
