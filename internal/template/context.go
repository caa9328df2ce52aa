package template

import (
	"github.com/libforge/phpgen/internal/core/naming"
)

// TemplateContext provides data for template rendering.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	VendorNamespace  string // e.g. "Acme"
	ProjectNamespace string // e.g. `My\Project`
	Namespace        string // PSR-4 prefix with trailing separator, e.g. `Acme\My\Project\`
	PackageName      string // e.g. "acme/my-project"
	Version          string // phpgen version that generated the project
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext applies opts and derives Namespace from the vendor and
// project namespaces when it was not set explicitly.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{}
	for _, opt := range opts {
		opt(ctx)
	}

	if ctx.Namespace == "" && ctx.VendorNamespace != "" && ctx.ProjectNamespace != "" {
		ctx.Namespace = naming.ComposeNamespace([]string{ctx.VendorNamespace, ctx.ProjectNamespace}, true)
	}
	return ctx
}

// WithNamespaces sets the vendor and project namespaces.
func WithNamespaces(vendor, project string) ContextOption {
	return func(c *TemplateContext) {
		c.VendorNamespace = vendor
		c.ProjectNamespace = project
	}
}

// WithNamespace overrides the composed namespace.
func WithNamespace(namespace string) ContextOption {
	return func(c *TemplateContext) {
		c.Namespace = namespace
	}
}

// WithPackageName sets the Composer package name.
func WithPackageName(name string) ContextOption {
	return func(c *TemplateContext) {
		c.PackageName = name
	}
}

// WithVersion sets the generator version.
func WithVersion(v string) ContextOption {
	return func(c *TemplateContext) {
		c.Version = v
	}
}
