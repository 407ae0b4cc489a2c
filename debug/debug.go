package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Normalize bool
	Union     bool
	Filter    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Normalize = boolEnv("NOTATION_DEBUG_NORMALIZE")
	d.Union = boolEnv("NOTATION_DEBUG_UNION")
	d.Filter = boolEnv("NOTATION_DEBUG_FILTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Normalize() bool {
	return d.Normalize
}
func Union() bool {
	return d.Union
}
func Filter() bool {
	return d.Filter
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
