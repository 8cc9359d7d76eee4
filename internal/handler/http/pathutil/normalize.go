// Package pathutil maps request paths onto the fixed set of routes the
// service serves, for use as metric labels and span names.
package pathutil

import "strings"

// Unmatched is the label used for every path the service does not route.
const Unmatched = "/unmatched"

// knownRoutes lists every path served by the API.
var knownRoutes = map[string]struct{}{
	"/analyze": {},
	"/health":  {},
	"/live":    {},
	"/ready":   {},
	"/metrics": {},
	"/":        {},
}

// prefixRoutes are subtree routes collapsed to their prefix.
var prefixRoutes = []string{
	"/swagger/",
}

// NormalizePath returns a bounded-cardinality label for path.
// Known routes pass through, subtree routes collapse to their prefix, and
// anything else becomes Unmatched so that scanners probing random URLs
// cannot grow the label set.
//
// Examples:
//
//	NormalizePath("/analyze")               // "/analyze"
//	NormalizePath("/analyze/")              // "/analyze"
//	NormalizePath("/analyze?x=1")           // "/analyze"
//	NormalizePath("/swagger/index.html")    // "/swagger/"
//	NormalizePath("/wp-admin/setup.php")    // "/unmatched"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	for _, prefix := range prefixRoutes {
		if strings.HasPrefix(path, prefix) {
			return prefix
		}
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := knownRoutes[path]; ok {
		return path
	}
	return Unmatched
}
