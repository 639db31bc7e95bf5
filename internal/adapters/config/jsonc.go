package config

import "github.com/tailscale/hujson"

// standardizeJSONC turns tsconfig's JSON dialect, with comments and trailing
// commas, into plain JSON. Byte offsets are preserved.
func standardizeJSONC(src []byte) ([]byte, error) {
	return hujson.Standardize(src)
}
