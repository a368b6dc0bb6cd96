package resolver

import (
	"strings"

	"github.com/loomlang/loom/lsl/diagnostics"
)

// validateRoutes checks route paths, the components routes point at, and
// component file paths.
func validateRoutes(ctx *context) {
	for _, route := range ctx.schema.Routes() {
		path := route.GetPath()
		if !routePathValid(path) {
			ctx.pushError(diagnostics.NewInvalidPathError(path, route.Path.Span()))
		}

		root := route.Root()
		if root == nil {
			ctx.pushError(diagnostics.NewRouteWithoutComponentError(path, route.Span()))
			continue
		}
		if _, ok := ctx.names.components[root.Name]; !ok {
			ctx.pushError(diagnostics.NewRouteComponentMissingError(path, root.Name, root.Span()))
		}
	}

	for _, component := range ctx.schema.Components() {
		path := component.GetPath()
		if !componentPathValid(path) {
			ctx.pushError(diagnostics.NewInvalidPathError(path, component.Path.Span()))
		}
	}
}

// routePathValid accepts the root path "/" and otherwise a leading slash
// followed by non-empty segments, with no trailing slash.
func routePathValid(path string) bool {
	if path == "/" {
		return true
	}
	if !strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		return false
	}
	return segmentsValid(path[1:])
}

// componentPathValid accepts non-empty segments with an optional leading
// slash and no trailing slash.
func componentPathValid(path string) bool {
	path = strings.TrimPrefix(path, "/")
	if path == "" || strings.HasSuffix(path, "/") {
		return false
	}
	return segmentsValid(path)
}

func segmentsValid(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			return false
		}
		for _, r := range segment {
			if !segmentRune(r) {
				return false
			}
		}
	}
	return true
}

func segmentRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-':
		return true
	}
	return false
}
