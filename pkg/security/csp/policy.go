// Package csp builds Content-Security-Policy headers and applies them per route.
package csp

import "strings"

// directiveOrder fixes the serialisation order so headers are stable.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"font-src",
	"connect-src",
	"frame-ancestors",
	"form-action",
	"base-uri",
	"object-src",
}

// Builder provides a fluent interface for constructing Content-Security-Policy headers.
//
//	policy := NewBuilder().
//	    DefaultSrc("'self'").
//	    ScriptSrc("'self'", "https://cdn.example.com").
//	    Build()
//	// "default-src 'self'; script-src 'self' https://cdn.example.com"
//
// A Builder is not safe for concurrent mutation; build once and share the string.
type Builder struct {
	directives map[string][]string
	reportOnly bool
}

// NewBuilder returns an empty policy.
func NewBuilder() *Builder {
	return &Builder{directives: make(map[string][]string)}
}

func (b *Builder) set(name string, sources []string) *Builder {
	b.directives[name] = sources
	return b
}

// DefaultSrc sets the fallback for every fetch directive.
func (b *Builder) DefaultSrc(sources ...string) *Builder { return b.set("default-src", sources) }

// ScriptSrc sets the allowed script sources.
func (b *Builder) ScriptSrc(sources ...string) *Builder { return b.set("script-src", sources) }

// StyleSrc sets the allowed stylesheet sources.
func (b *Builder) StyleSrc(sources ...string) *Builder { return b.set("style-src", sources) }

// ImgSrc sets the allowed image sources.
func (b *Builder) ImgSrc(sources ...string) *Builder { return b.set("img-src", sources) }

// FontSrc sets the allowed font sources.
func (b *Builder) FontSrc(sources ...string) *Builder { return b.set("font-src", sources) }

// ConnectSrc sets the URLs reachable from fetch/XHR.
func (b *Builder) ConnectSrc(sources ...string) *Builder { return b.set("connect-src", sources) }

// FrameAncestors sets who may embed the page.
func (b *Builder) FrameAncestors(sources ...string) *Builder {
	return b.set("frame-ancestors", sources)
}

// FormAction sets the allowed form targets.
func (b *Builder) FormAction(sources ...string) *Builder { return b.set("form-action", sources) }

// BaseURI restricts the document base URL.
func (b *Builder) BaseURI(sources ...string) *Builder { return b.set("base-uri", sources) }

// ObjectSrc sets the allowed plugin sources.
func (b *Builder) ObjectSrc(sources ...string) *Builder { return b.set("object-src", sources) }

// ReportOnly switches the header to Content-Security-Policy-Report-Only.
func (b *Builder) ReportOnly(enabled bool) *Builder {
	b.reportOnly = enabled
	return b
}

// Build serialises the policy. An empty policy yields "".
func (b *Builder) Build() string {
	parts := make([]string, 0, len(b.directives))
	for _, name := range directiveOrder {
		if sources := b.directives[name]; len(sources) > 0 {
			parts = append(parts, name+" "+strings.Join(sources, " "))
		}
	}
	return strings.Join(parts, "; ")
}

// HeaderName returns the header the policy is sent under.
func (b *Builder) HeaderName() string {
	if b.reportOnly {
		return "Content-Security-Policy-Report-Only"
	}
	return "Content-Security-Policy"
}

// APIPolicy is for JSON and plain-text responses: nothing may load or embed them.
func APIPolicy() *Builder {
	return NewBuilder().
		DefaultSrc("'none'").
		FrameAncestors("'none'")
}

// SwaggerUIPolicy allows what the bundled Swagger UI page needs.
func SwaggerUIPolicy() *Builder {
	return NewBuilder().
		DefaultSrc("'self'").
		ScriptSrc("'self'", "'unsafe-inline'").
		StyleSrc("'self'", "'unsafe-inline'").
		ImgSrc("'self'", "data:").
		FontSrc("'self'", "data:").
		ConnectSrc("'self'").
		FrameAncestors("'none'").
		BaseURI("'self'").
		FormAction("'self'").
		ObjectSrc("'none'")
}
