package endpoints

import (
	"errors"
	"fmt"
	"strings"
)

// IDPlaceholder marks the identifier position in catalog templates.
const IDPlaceholder = "{id}"

var (
	ErrUnknownEndpoint = errors.New("unknown endpoint")
	ErrMissingID       = errors.New("endpoint requires an id")
	ErrUnexpectedID    = errors.New("endpoint takes no id")
)

type Entry struct {
	Group         string `json:"group"`
	Name          string `json:"name"`
	Template      string `json:"template"`
	Parameterized bool   `json:"parameterized"`

	build func(id string) string
}

// URL returns the entry's URL. id is ignored for fixed entries.
func (e Entry) URL(id string) string {
	if e.build == nil {
		return e.Template
	}
	return e.build(id)
}

func fixed(group, name, url string) Entry {
	return Entry{Group: group, Name: name, Template: url}
}

func param(group, name string, build func(string) string) Entry {
	return Entry{
		Group:         group,
		Name:          name,
		Template:      build(IDPlaceholder),
		Parameterized: true,
		build:         build,
	}
}

// Catalog lists every endpoint in table order.
func (r *Registry) Catalog() []Entry {
	d := r.Documents

	return []Entry{
		fixed("auth", "login", r.Auth.Login),
		fixed("auth", "register", r.Auth.Register),
		fixed("auth", "me", r.Auth.Me),
		fixed("auth", "logout", r.Auth.Logout),

		fixed("documents", "upload", d.Upload),
		fixed("documents", "list", d.List),
		fixed("documents", "search", d.Search),
		param("documents", "detail", d.Detail),
		param("documents", "full-detail", d.FullDetail),
		param("documents", "download", d.Download),
		param("documents", "delete", d.Delete),
		param("documents", "chunks", d.Chunks),
		param("documents", "chunk", d.Chunk),
		param("documents", "embed", d.Embed),

		fixed("classifications", "options", r.Classifications.Options),
		fixed("classifications", "dev-types", r.Classifications.DevTypes),
		fixed("classifications", "teams", r.Classifications.Teams),

		fixed("stats", "dashboard", r.Stats.Dashboard),
		fixed("stats", "documents", r.Stats.Documents),
		fixed("stats", "entities", r.Stats.Entities),
		fixed("stats", "chunks", r.Stats.Chunks),
		fixed("stats", "users", r.Stats.Users),

		fixed("search", "semantic", r.Search.Semantic),
		fixed("search", "hybrid", r.Search.Hybrid),

		fixed("graph", "stats", r.Graph.Stats),
		fixed("graph", "nodes", r.Graph.Nodes),
		fixed("graph", "relationships", r.Graph.Relationships),

		fixed("entities", "extract", r.Entities.Extract),
	}
}

// Lookup finds an entry by group and name. Matching ignores case, '-' and
// '_', so "full-detail", "FULL_DETAIL" and "FullDetail" are the same name.
func (r *Registry) Lookup(group, name string) (Entry, error) {
	g, n := normalize(group), normalize(name)
	for _, e := range r.Catalog() {
		if normalize(e.Group) == g && normalize(e.Name) == n {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s.%s", ErrUnknownEndpoint, group, name)
}

// Resolve returns the URL of group.name. Parameterized entries need exactly
// one id, fixed entries none. An empty id is a valid id.
func (r *Registry) Resolve(group, name string, ids ...string) (string, error) {
	e, err := r.Lookup(group, name)
	if err != nil {
		return "", err
	}

	switch {
	case e.Parameterized && len(ids) == 0:
		return "", fmt.Errorf("%w: %s.%s", ErrMissingID, e.Group, e.Name)
	case !e.Parameterized && len(ids) > 0:
		return "", fmt.Errorf("%w: %s.%s", ErrUnexpectedID, e.Group, e.Name)
	case len(ids) > 1:
		return "", fmt.Errorf("%s.%s: got %d ids, want 1", e.Group, e.Name, len(ids))
	case e.Parameterized:
		return e.URL(ids[0]), nil
	default:
		return e.URL(""), nil
	}
}

func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("-", "", "_", "").Replace(s)
}
