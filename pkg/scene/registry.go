package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when no built-in scene has the requested name
var ErrUnknownScene = errors.New("scene: unknown scene")

// Builder creates a scene from options
type Builder func(opts Options) (*Scene, error)

// Info describes a built-in scene
type Info struct {
	Name        string // Identifier used on the command line
	DisplayName string
	Description string
}

type entry struct {
	description string
	build       Builder
}

// infallible adapts a builder that cannot fail
func infallible(build func(opts Options) *Scene) Builder {
	return func(opts Options) (*Scene, error) {
		return build(opts), nil
	}
}

var registry = map[string]entry{
	"default":       {"Three spheres, a glass bubble and a moving sphere under a sky gradient", infallible(NewDefaultScene)},
	"random":        {"Field of small random spheres around three large ones, with defocus blur", infallible(NewRandomScene)},
	"cornell":       {"Cornell box with two rotated boxes", infallible(NewCornellScene)},
	"cornell-smoke": {"Cornell box with blocks of dark and light smoke", infallible(NewCornellSmokeScene)},
	"perlin":        {"Marble spheres from Perlin turbulence lit by area lights", infallible(NewPerlinScene)},
	"final":         {"Every primitive and material in one scene", NewFinalScene},
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List describes every built-in scene, sorted by name
func List() []Info {
	names := Names()
	infos := make([]Info, 0, len(names))
	for _, name := range names {
		infos = append(infos, Info{
			Name:        name,
			DisplayName: titleCase(name),
			Description: registry[name].description,
		})
	}
	return infos
}

// New builds the named scene
func New(name string, opts Options) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return e.build(opts)
}

// titleCase converts a scene name to title case
// e.g., "cornell-smoke" -> "Cornell Smoke"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
