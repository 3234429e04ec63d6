// Package gen generates serde descriptors for Go structs.
//
// Every struct type with at least one field tagged `serde:"name"` gets a
// package level descriptor variable named after the type with a Type
// suffix:
//
//	type Realm struct {
//	    AppID    string   `serde:"app_id"`
//	    Channels []string `serde:"channels"`
//	}
//
// generates
//
//	var RealmType = serde.NewRecord[Realm]("Realm",
//	    serde.Field("app_id", serde.String(), func(v *Realm) *string { return &v.AppID }),
//	    serde.Field("channels", serde.List[string](serde.String()), func(v *Realm) *[]string { return &v.Channels }),
//	)
//
// Pointer fields are optional. Untagged fields and fields tagged
// `serde:"-"` are not part of the record.
//
// # Related Packages
//
//   - github.com/signadot/serde/serde - descriptors and the codec
//   - github.com/signadot/serde/cmd/serde-gen - command line driver
package gen
