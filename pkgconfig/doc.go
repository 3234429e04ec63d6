// Package pkgconfig generates the Omaha client package list from eager
// package configs.
//
// Each package config names a package URL and the realms it is published
// in. The generated package list has one entry per package with the
// channels of all its realms, each channel carrying the app id of its
// realm:
//
//	configs, err := pkgconfig.LoadPackageConfigs(r)
//	for i := range configs {
//	    if err := configs[i].Validate(); err != nil { ... }
//	}
//	err = pkgconfig.GenerateOmahaClientConfig(configs).Write(w)
//
// The descriptors in pkgconfig_serde.go are generated by serde-gen from
// the serde tags of the types.
package pkgconfig
