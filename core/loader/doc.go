// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface and is registered with a
// Manager, which loads the enabled ones onto the Fiber app at startup.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The lookup and integrity features are registered this way so they can be
// developed and tested in isolation.
package loader
