package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Encode bool
	Union  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("SERDE_DEBUG_DECODE")
	d.Encode = boolEnv("SERDE_DEBUG_ENCODE")
	d.Union = boolEnv("SERDE_DEBUG_UNION")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Union() bool {
	return d.Union
}
