package httpx

import (
	"net/http"
)

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	CurrentPage string
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
}

// NewTemplateData creates a builder initialised with the shared layout data.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{data: basePageData(r, meta)}
}

// WithFlashes adds pending notifications.
func (b *TemplateDataBuilder) WithFlashes(flashes []Flash) *TemplateDataBuilder {
	if len(flashes) > 0 {
		b.data["Flashes"] = flashes
	}
	return b
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}

// basePageData constructs the layout fields every page needs. Guarded pages
// see the resolved principal; public pages may see the stored snapshot, which
// only drives navigation hints.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	data := map[string]any{
		"Title":           meta.Title,
		"CurrentPage":     meta.CurrentPage,
		"CurrentPath":     r.URL.Path,
		"IsAuthenticated": false,
	}
	if token := GetCSRFToken(r); token != "" {
		data["CSRFToken"] = token
	}

	if id, ok := viewerFromContext(r.Context()); ok {
		data["IsAuthenticated"] = true
		data["User"] = id
		data["RoleLabel"] = id.Role.Label()
		data["DashboardPath"] = id.Role.LandingPath()
	}
	if p, ok := PrincipalFromContext(r.Context()); ok {
		data["Nav"] = p.Identity.Role.Navigation()
	}
	return data
}
