package csp

import (
	"net/http"
	"sort"
	"strings"
)

// Route binds a policy to every path under Prefix.
type Route struct {
	Prefix string
	Policy *Builder
}

// Middleware sets a CSP header chosen by the longest matching route prefix,
// falling back to def, plus X-Content-Type-Options: nosniff on every response.
// Policies are serialised once, when the middleware is built.
func Middleware(def *Builder, routes ...Route) func(http.Handler) http.Handler {
	type compiled struct {
		prefix, header, value string
	}

	table := make([]compiled, 0, len(routes))
	for _, r := range routes {
		table = append(table, compiled{prefix: r.Prefix, header: r.Policy.HeaderName(), value: r.Policy.Build()})
	}
	sort.Slice(table, func(i, j int) bool { return len(table[i].prefix) > len(table[j].prefix) })

	defHeader, defValue := def.HeaderName(), def.Build()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header, value := defHeader, defValue
			for _, c := range table {
				if strings.HasPrefix(r.URL.Path, c.prefix) {
					header, value = c.header, c.value
					break
				}
			}
			if value != "" {
				w.Header().Set(header, value)
			}
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	}
}
