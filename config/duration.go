package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tinylib/msgp/msgp"
	"gopkg.in/yaml.v3"
)

// Extra durations beyond the stdlib's largest unit (h), needed for
// long-running batch-farm retry/backoff settings in ServerOptions.
const (
	Day  time.Duration = 24 * time.Hour
	Week               = 7 * Day
)

var extraUnits = map[string]time.Duration{
	"d": Day,
	"w": Week,
}

// ParseDuration extends time.ParseDuration with "d" and "w" units so YAML
// config files can say "timeout: 2d" for a farm job queue.
func ParseDuration(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	for suffix, unit := range extraUnits {
		if strings.HasSuffix(s, suffix) {
			n, err := strconv.ParseFloat(strings.TrimSuffix(s, suffix), 64)
			if err != nil {
				return 0, fmt.Errorf("invalid duration %q: %w", s, err)
			}
			return time.Duration(n * float64(unit)), nil
		}
	}
	return 0, fmt.Errorf("invalid duration %q", s)
}

// Duration wraps time.Duration with YAML, JSON and msgp codecs so it can
// appear directly in SessionOptions/ServerOptions/CookOptions documents.
type Duration time.Duration

// D returns the underlying time.Duration.
func (d Duration) D() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("unable to unmarshal duration from %s node", value.Tag)
	}
	dur, err := ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalJSON(bs []byte) error {
	if len(bs) <= 2 {
		return nil
	}
	dur, err := ParseDuration(string(bs[1 : len(bs)-1]))
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Duration(d).String())), nil
}

func (d Duration) MarshalMsg(b []byte) ([]byte, error) {
	return msgp.AppendInt64(b, int64(d)), nil
}

func (d *Duration) UnmarshalMsg(b []byte) ([]byte, error) {
	i, rem, err := msgp.ReadInt64Bytes(b)
	*d = Duration(i)
	return rem, err
}

func (d Duration) Msgsize() int { return msgp.Int64Size }
