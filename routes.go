package celest

// Destination is one entry of the navigation table.
type Destination struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// DefaultRoutes returns the three landing destinations, in planet order.
func DefaultRoutes() []Destination {
	return []Destination{
		{Name: "Work", Path: "/work.html"},
		{Name: "Projects", Path: "/project.html"},
		{Name: "Contact", Path: "/contact.html"},
	}
}

// Navigator performs the route change after a planet selection. A successful
// Navigate replaces the running context; an error is treated as a cancelled
// navigation.
type Navigator interface {
	Navigate(dest Destination) error
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(dest Destination) error

// Navigate calls f(dest).
func (f NavigatorFunc) Navigate(dest Destination) error {
	return f(dest)
}
