package pkgconfig

import (
	"fmt"
	"io"
	"slices"

	"github.com/signadot/serde/serde"
)

// PackageConfigsType describes a list of package configs, the input of
// GenerateOmahaClientConfig.
var PackageConfigsType = serde.List[PackageConfig](PackageConfigType)

// LoadPackageConfigs reads a list of package configs from r.
func LoadPackageConfigs(r io.Reader, opts ...serde.DecodeOption) ([]PackageConfig, error) {
	configs, err := serde.Read(r, PackageConfigsType, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load package configs: %w", err)
	}
	return configs, nil
}

// Channels returns the channels of all realms of c, in realm order.
func (c *PackageConfig) Channels() []Channel {
	var res []Channel
	for _, realm := range c.Realms {
		for _, name := range realm.Channels {
			res = append(res, Channel{Name: name, Repo: name, AppID: realm.AppID})
		}
	}
	return res
}

// Validate checks that the default channel of c, if any, is one of its
// channels. GenerateOmahaClientConfig panics on configs which do not
// validate.
func (c *PackageConfig) Validate() error {
	if c.DefaultChannel == nil {
		return nil
	}
	names := []string{}
	for _, realm := range c.Realms {
		names = append(names, realm.Channels...)
	}
	if !slices.Contains(names, *c.DefaultChannel) {
		return fmt.Errorf("%w: %q is not one of the channels %q of %s",
			ErrDefaultChannel, *c.DefaultChannel, names, c.URL)
	}
	return nil
}

// GenerateOmahaClientConfig groups the channels of all realms of each
// package under a single channel config.
//
// It panics if a package declares a default channel which is not among
// its channels; use Validate to check configs beforehand.
func GenerateOmahaClientConfig(configs []PackageConfig) *OmahaClientConfig {
	res := &OmahaClientConfig{Packages: make([]Package, 0, len(configs))}
	for i := range configs {
		config := &configs[i]
		if err := config.Validate(); err != nil {
			panic(err)
		}
		channels := config.Channels()
		if channels == nil {
			channels = []Channel{}
		}
		res.Packages = append(res.Packages, Package{
			URL:    config.URL,
			Flavor: config.Flavor,
			ChannelConfig: ChannelConfig{
				Channels:       channels,
				DefaultChannel: config.DefaultChannel,
			},
		})
	}
	return res
}

// Write writes c to w.
func (c *OmahaClientConfig) Write(w io.Writer, opts ...serde.EncodeOption) error {
	return serde.Write(w, OmahaClientConfigType, *c, opts...)
}
