package ir

// Route is a resolved route. Root names a declared component.
type Route struct {
	Path  string
	Title string
	Root  string
}

// Component is a resolved component declaration.
type Component struct {
	Name string
	Path string
}
