package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
)

// sourceName returns a lower-cased source name for metrics and logs, preferring the configured name,
// then the source's own Name, then its type.
func sourceName(raw string, source providers.DataSource) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if named, ok := source.(interface{ Name() string }); ok {
		return strings.ToLower(named.Name())
	}
	if source != nil {
		return strings.ToLower(fmt.Sprintf("%T", source))
	}
	return "source"
}
