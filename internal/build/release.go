//go:build release

package build

const Debug = false
