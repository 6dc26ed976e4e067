// Package build reports how the binary was built.
//
// Builds are debug builds unless compiled with the "release" tag.
package build

// Mode returns "debug" or "release".
func Mode() string {
	if Debug {
		return "debug"
	}
	return "release"
}
