package resolver

import (
	"testing"

	"github.com/loomlang/loom/lsl/diagnostics"
)

func TestRouteResolution(t *testing.T) {
	input := `
route / {
  root: Home
  title: Home
}

route /images/recent {
  root: RecentImages
  title: Recent
}

component Home {
  path: Home
}

component RecentImages {
  path: images/RecentImages
}
`
	schema := resolveValid(t, input)

	if len(schema.Routes) != 2 {
		t.Fatalf("Expected 2 routes, got %d", len(schema.Routes))
	}
	recent := schema.Routes["/images/recent"]
	if recent == nil {
		t.Fatal("Expected route /images/recent in the IR")
	}
	if recent.Root != "RecentImages" {
		t.Errorf("Expected root RecentImages, got %q", recent.Root)
	}
}

func TestRouteComponentMissing(t *testing.T) {
	expectSingleError(t, `
route / {
  root: Home
  title: Home
}
`, diagnostics.ErrRouteComponentMissing)
}

func TestRouteWithoutRootEntry(t *testing.T) {
	expectSingleError(t, `
route / {
  title: Home
}

component Home {
  path: Home
}
`, diagnostics.ErrRouteComponentMissing)
}

func TestInvalidRoutePath(t *testing.T) {
	expectSingleError(t, `
route /images/ {
  root: Home
  title: Images
}

component Home {
  path: Home
}
`, diagnostics.ErrInvalidPath)
}

func TestInvalidRoutePathEmptySegment(t *testing.T) {
	expectSingleError(t, `
route /images//recent {
  root: Home
  title: Images
}

component Home {
  path: Home
}
`, diagnostics.ErrInvalidPath)
}

func TestInvalidComponentPath(t *testing.T) {
	expectSingleError(t, `
component Home {
  path: pages//Home
}
`, diagnostics.ErrInvalidPath)
}

func TestComponentPathShapes(t *testing.T) {
	input := `
component Home {
  path: Home
}

component UserList {
  path: /UserList
}

component Foo {
  path: foo/bar/Foo
}
`
	schema := resolveValid(t, input)

	expected := map[string]string{
		"Home":     "Home",
		"UserList": "/UserList",
		"Foo":      "foo/bar/Foo",
	}
	for name, path := range expected {
		component := schema.Components[name]
		if component == nil {
			t.Fatalf("Expected component %q in the IR", name)
		}
		if component.Path != path {
			t.Errorf("Expected path %q, got %q", path, component.Path)
		}
	}
}

func TestRootRoutePath(t *testing.T) {
	input := `
route / {
  root: Home
  title: Home
}

component Home {
  path: Home
}
`
	schema := resolveValid(t, input)
	if schema.Routes["/"] == nil {
		t.Error("Expected the root path to be valid")
	}
}
