package logcat

import (
	"io"
	"strings"

	"github.com/deixis/spine/config"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// ConfigKey is the config tree section holding the logcat configuration
const ConfigKey = "logcat"

// Config defines the logcat configuration
//
// e.g.
// [logcat]
// disabled = false
// disable_policy = "below_error"
// min_priority = "debug"
// color = "auto"
// locale = "en-GB"
type Config struct {
	Disabled      bool   `toml:"disabled"`
	DisablePolicy string `toml:"disable_policy"`
	MinPriority   string `toml:"min_priority"`
	Color         string `toml:"color"`
	Locale        string `toml:"locale"`
}

// LoadConfig reads the logcat section of the TOML document r.
// Values starting with `$` are replaced with the matching environment
// variable.
func LoadConfig(r io.Reader) (*Config, error) {
	tree, err := config.LoadTree(r)
	if err != nil {
		return nil, err
	}
	return ConfigFromTree(tree)
}

// ConfigFromTree extracts the logcat section of an already loaded tree
func ConfigFromTree(tree config.Tree) (*Config, error) {
	c := &Config{}
	if err := tree.Get(ConfigKey).Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "cannot load logcat config")
	}
	return c, nil
}

// ParseDisablePolicy parses a string representation of a disable policy
func ParseDisablePolicy(s string) (DisablePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "below_error":
		return SuppressBelowError, nil
	case "all":
		return SuppressAll, nil
	}
	return SuppressBelowError, errors.Errorf("unknown disable policy <%s>", s)
}

// Options converts c to Core options
func (c *Config) Options() ([]Option, error) {
	policy, err := ParseDisablePolicy(c.DisablePolicy)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithPolicy(policy)}
	if c.Disabled {
		opts = append(opts, Disabled())
	}
	if c.Locale != "" {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid locale <%s>", c.Locale)
		}
		opts = append(opts, WithLocale(tag))
	}
	return opts, nil
}

// ConsoleOptions converts c to options of the console platform
func (c *Config) ConsoleOptions() (ConsoleOptions, error) {
	opts := ConsoleOptions{MinPriority: Verbose}
	if c.MinPriority != "" {
		p, err := ParsePriority(c.MinPriority)
		if err != nil {
			return opts, errors.Wrap(err, "invalid min_priority")
		}
		opts.MinPriority = p
	}
	mode, err := ParseColorMode(c.Color)
	if err != nil {
		return opts, err
	}
	opts.Color = mode
	return opts, nil
}

// NewCore builds a Core writing to a console platform on w
func (c *Config) NewCore(w io.Writer) (*Core, error) {
	copts, err := c.ConsoleOptions()
	if err != nil {
		return nil, err
	}
	return c.NewCoreWith(NewConsole(w, copts))
}

// NewCoreWith builds a Core writing to p
func (c *Config) NewCoreWith(p Platform) (*Core, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return NewCore(p, opts...), nil
}
