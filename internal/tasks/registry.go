// Package tasks holds the transform-task registry. Tasks are registered
// under a dotted identifier at startup and resolved once, when the pipeline
// is built, not per row.
package tasks

import (
	"fmt"
	"sort"

	"github.com/pwysocki/pipevine/internal/etl"
)

var registry = make(map[string]etl.TaskFunc)

// Register adds a task under its dotted identifier. Meant to be called from
// init functions; duplicate registration is a programming error.
func Register(name string, fn etl.TaskFunc) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("tasks: duplicate registration of %q", name))
	}
	registry[name] = fn
}

// Resolve looks up a task by identifier.
func Resolve(name string) (etl.TaskFunc, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", etl.ErrTaskResolution, name)
	}
	return fn, nil
}

// Names lists the registered task identifiers in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
