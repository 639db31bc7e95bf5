package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// InstanceKey identifies one compilation instance.
// Query is the canonical serialization of the loader settings that affect compilation.
type InstanceKey struct {
	Context   string
	SourceMap bool
	Query     string
}

// ID returns a short stable digest of the key.
func (k InstanceKey) ID() string {
	d := xxhash.New()
	_, _ = d.WriteString(k.Context)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(strconv.FormatBool(k.SourceMap))
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(k.Query)
	return strconv.FormatUint(d.Sum64(), 16)
}
