//go:build !amd64 && !arm64

package simd

func init() {
	// No feature flags to probe; detection defaults to scalar only.
	initCapabilities()
}
