package profile

// ZoneID is a stable handle for a zone name, assigned on first
// registration, monotonically increasing and never reused within a
// session. IDs start at 1.
type ZoneID int

// Registry keeps the bijective name<->id mapping. Insertion only.
type Registry struct {
	ids   map[string]ZoneID
	names []string
}

func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]ZoneID)}
}

// RegisterOrGet returns the id already assigned to name, or assigns
// the next one.
func (r *Registry) RegisterOrGet(name string) ZoneID {
	if id, ok := r.ids[name]; ok {
		return id
	}
	r.names = append(r.names, name)
	id := ZoneID(len(r.names))
	r.ids[name] = id

	return id
}

// Lookup returns the id registered for name, if any.
func (r *Registry) Lookup(name string) (ZoneID, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// NameOf is total over ids returned by RegisterOrGet.
func (r *Registry) NameOf(id ZoneID) string {
	return r.names[id-1]
}

// Len returns the number of registered zones.
func (r *Registry) Len() int {
	return len(r.names)
}
