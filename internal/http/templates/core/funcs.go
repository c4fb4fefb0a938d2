// Package core provides the template helpers shared by every page.
package core

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"slices"
	"strings"
	"time"

	"github.com/jobconnect/jobconnect-web/internal/http/uiutil"
)

// Deps holds dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
}

// Funcs returns the template.FuncMap used by the layout and pages.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"sectionTmpl":  deps.ContentTemplateFor,
		"friendlyDate": timeFunc(uiutil.FormatFriendlyDate),
		"relativeTime": timeFunc(uiutil.FriendlyRelativeTime),
		"salary":       uiutil.FormatSalary,
		"formatNumber": uiutil.FormatNumber,
		"add":          func(a, b int) int { return a + b },
		"contains":     strings.Contains,
		"has":          slices.Contains[[]string],
		"fieldError":   FieldError,
		"dict":         Dict,
		"join":         strings.Join,
		"truncateText": TruncateText,
		"statusClass":  StatusClass,
		"initial":      Initial,
	}

	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - output of our own html/template set; values are already escaped.
		return template.HTML(buf.String()), nil
	}
	return funcs
}

func timeFunc(format func(time.Time) string) func(any) string {
	return func(ts any) string {
		switch v := ts.(type) {
		case time.Time:
			if v.IsZero() {
				return ""
			}
			return format(v)
		case *time.Time:
			if v == nil || v.IsZero() {
				return ""
			}
			return format(*v)
		}
		return ""
	}
}

// StatusClass maps job and application statuses to badge classes. It
// accepts string-kinded named types such as marketplace.JobStatus.
func StatusClass(status any) string {
	switch strings.ToLower(fmt.Sprint(status)) {
	case "approved", "accepted", "shortlisted", "active":
		return "badge-success"
	case "pending":
		return "badge-warning"
	case "rejected", "closed":
		return "badge-danger"
	default:
		return "badge-light"
	}
}

// TruncateText truncates s to at most maxLen runes, ending in an ellipsis.
func TruncateText(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:maxLen-1])) + "…"
}

// Initial returns the upper-cased first letter of s for avatar placeholders.
func Initial(s string) string {
	for _, r := range strings.TrimSpace(s) {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// FieldError returns the message for field from a map of validation errors.
// A missing map yields "".
func FieldError(errs any, field string) string {
	if m, ok := errs.(map[string]string); ok {
		return m[field]
	}
	return ""
}

// Dict builds a map from alternating keys and values so partials can take
// more than one argument.
func Dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict requires key/value pairs")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
