package main

import (
	"math"
	"strings"
)

// constants are the named values an identifier may resolve to. The table is
// never written after initialization.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
	"c":  299792458,   // speed of light, m/s
	"g":  9.80665,     // standard gravity, m/s²
	"G":  6.67430e-11, // gravitational constant, m³/(kg·s²)
}

// lookupConstant resolves name against the constant table, trying the exact
// spelling before its lowercase form; so G and g name different constants,
// while PI still finds pi.
func lookupConstant(name string) (float64, bool) {
	if val, ok := constants[name]; ok {
		return val, true
	}
	val, ok := constants[strings.ToLower(name)]
	return val, ok
}
