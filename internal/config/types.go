package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration is written as a Go duration string ("15s", "2m") in config
// files, LOTINSIGHT_* variables and JSON output.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	switch {
	case err != nil:
		return err
	case v < 0:
		return fmt.Errorf("negative duration %q", text)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d Duration) String() string { return time.Duration(d).String() }

func (d Duration) Duration() time.Duration { return time.Duration(d) }
