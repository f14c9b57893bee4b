package naming

import "strconv"

// Registry hands out node names that are unique within one export pass.
// Names are reserved in call order, so identical call sequences always
// produce identical names.
type Registry struct {
	used  map[string]struct{}
	count map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		used:  make(map[string]struct{}),
		count: make(map[string]int),
	}
}

// Reserve claims name as-is and reports whether it was free.
func (r *Registry) Reserve(name string) bool {
	if _, ok := r.used[name]; ok {
		return false
	}
	r.used[name] = struct{}{}
	return true
}

// Unique returns base if free, otherwise base followed by the lowest
// counter that makes it free ("blendShape", "blendShape1", ...).
func (r *Registry) Unique(base string) string {
	base = Sanitize(base)
	if base == "" {
		base = "node"
	}
	if r.Reserve(base) {
		return base
	}
	for {
		r.count[base]++
		name := base + strconv.Itoa(r.count[base])
		if r.Reserve(name) {
			return name
		}
	}
}

// Numbered always appends a counter, starting at 1 ("groupId1").
func (r *Registry) Numbered(base string) string {
	base = Sanitize(base)
	if base == "" {
		base = "node"
	}
	for {
		r.count[base]++
		name := base + strconv.Itoa(r.count[base])
		if r.Reserve(name) {
			return name
		}
	}
}
