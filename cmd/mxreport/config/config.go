package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	CTSystem ClientType = "system"
	CTDirect ClientType = "direct"

	LFJSON LogFormat = "json"
	LFText LogFormat = "text"
)

const (
	DefaultFileName = "mxreport.toml"
)

// Default holds the file names and behaviour of a run without any configuration
func Default() Config {
	c := Config{}

	c.Files.Input = "emails.txt"
	c.Files.Valid = "output.txt"
	c.Files.Invalid = "invalid-domains.txt"
	c.Resolver.Client = CTSystem
	c.Resolver.Workers = 1
	c.Log.Level = "warn"
	c.Log.Format = LFText

	return c
}

// NewConfig reads fileName on top of Default()
func NewConfig(fileName string) (Config, error) {
	c := Default()

	b, err := os.ReadFile(fileName)
	if err != nil {
		return c, fmt.Errorf("unable to open %q, reason: %w", fileName, err)
	}

	_, err = toml.Decode(string(b), &c)
	if err != nil {
		return c, fmt.Errorf("unable to unmarshal %q, reason: %w", fileName, err)
	}

	return c, nil
}

// Load is NewConfig, except that a missing file results in Default() when it's not required
func Load(fileName string, required bool) (Config, error) {
	c, err := NewConfig(fileName)
	if err != nil && !required && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return c, err
}

// Config holds central config parameters
type Config struct {
	Files struct {
		Input   string `toml:"input" usage:"File with one e-mail address per line"`
		Valid   string `toml:"valid" usage:"Report of resolved domains"`
		Invalid string `toml:"invalid" usage:"Report of addresses with an invalid domain"`
	} `toml:"files"`
	Resolver struct {
		Client  ClientType `toml:"client" usage:"\"system\" or \"direct\""`
		Address string     `toml:"address" usage:"The DNS server to use, in the form ip or ip:port"`
		Timeout Duration   `toml:"timeout" usage:"Per lookup timeout, 0 leaves it to the resolver"`
		Workers int        `toml:"workers" usage:"Number of concurrent lookups"`
	} `toml:"resolver"`
	Log struct {
		Level  string    `toml:"level"`
		Format LogFormat `toml:"format" usage:"The log output format \"json\" or \"text\""`
	} `toml:"log"`
}

// Validate reports the first setting that can't be used
func (c Config) Validate() error {
	if c.Files.Input == "" || c.Files.Valid == "" || c.Files.Invalid == "" {
		return errors.New("file names can't be empty")
	}

	if c.Resolver.Workers < 1 {
		return fmt.Errorf("at least one worker is required, %d configured", c.Resolver.Workers)
	}

	if c.Resolver.Timeout.AsDuration() < 0 {
		return fmt.Errorf("negative timeout %s", c.Resolver.Timeout)
	}

	return nil
}

type ClientType string

func (ct ClientType) String() string {
	return string(ct)
}

func (ct *ClientType) Set(v string) error {
	return ct.UnmarshalText([]byte(v))
}

func (ct ClientType) Type() string {
	return "client"
}

func (ct *ClientType) UnmarshalText(value []byte) error {
	return unmarshalOneOf(value, "resolver client", []string{string(CTSystem), string(CTDirect)}, func(v string) {
		*ct = ClientType(v)
	})
}

type Duration struct {
	duration time.Duration
}

func NewDuration(d time.Duration) Duration {
	return Duration{duration: d}
}

func (d Duration) String() string {
	return d.duration.String()
}

func (d *Duration) Set(v string) error {
	var err error
	d.duration, err = time.ParseDuration(v)
	return err
}

func (d Duration) Type() string {
	return "duration"
}

func (d Duration) AsDuration() time.Duration {
	return d.duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	return d.Set(string(text))
}

type LogFormat string

func (lf LogFormat) String() string {
	return string(lf)
}

func (lf *LogFormat) Set(v string) error {
	return lf.UnmarshalText([]byte(v))
}

func (lf LogFormat) Type() string {
	return "format"
}

func (lf *LogFormat) UnmarshalText(value []byte) error {
	return unmarshalOneOf(value, "log format", []string{string(LFJSON), string(LFText)}, func(v string) {
		*lf = LogFormat(v)
	})
}

func unmarshalOneOf(value []byte, name string, valid []string, set func(v string)) error {
	v := string(value)
	for _, t := range valid {
		if t == v {
			set(v)
			return nil
		}
	}

	expected := strings.Join(valid, ", ")
	return fmt.Errorf("unsupported value %q for %s. Expected one of: %q", value, name, expected)
}
