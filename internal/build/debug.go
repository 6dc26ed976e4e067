//go:build !release

package build

// Debug is true unless the binary was built with the release tag.
const Debug = true
