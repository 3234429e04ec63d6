package pkgconfig

//go:generate go run github.com/signadot/serde/cmd/serde-gen

// PackageConfig describes a package updated eagerly by the Omaha client.
type PackageConfig struct {
	URL            string  `serde:"url"`
	DefaultChannel *string `serde:"default_channel"`
	Flavor         *string `serde:"flavor"`
	Realms         []Realm `serde:"realms"`
}

// Realm is an Omaha application id and the channels published under it.
type Realm struct {
	AppID    string   `serde:"app_id"`
	Channels []string `serde:"channels"`
}

// OmahaClientConfig is the package list read by the Omaha client.
type OmahaClientConfig struct {
	Packages []Package `serde:"packages"`
}

type Package struct {
	URL           string        `serde:"url"`
	Flavor        *string       `serde:"flavor"`
	ChannelConfig ChannelConfig `serde:"channel_config"`
}

type ChannelConfig struct {
	Channels       []Channel `serde:"channels"`
	DefaultChannel *string   `serde:"default_channel"`
}

type Channel struct {
	Name  string `serde:"name"`
	Repo  string `serde:"repo"`
	AppID string `serde:"appid"`
}
