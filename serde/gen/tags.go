package gen

import (
	"reflect"
	"strings"
)

// ParseTag returns the key of a field in the mapping representation from
// its struct tag. ok is false for fields which are not part of the
// record.
func ParseTag(tag string) (key string, ok bool) {
	v, ok := reflect.StructTag(tag).Lookup("serde")
	if !ok {
		return "", false
	}
	key, _, _ = strings.Cut(v, ",")
	key = strings.TrimSpace(key)
	if key == "" || key == "-" {
		return "", false
	}
	return key, true
}
