package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Wire      bool
	Parse     bool
	Transcode bool
	Alloc     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Wire = boolEnv("PSON_DEBUG_WIRE")
	d.Parse = boolEnv("PSON_DEBUG_PARSE")
	d.Transcode = boolEnv("PSON_DEBUG_TRANSCODE")
	d.Alloc = boolEnv("PSON_DEBUG_ALLOC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Wire() bool {
	return d.Wire
}
func Parse() bool {
	return d.Parse
}
func Transcode() bool {
	return d.Transcode
}
func Alloc() bool {
	return d.Alloc
}
