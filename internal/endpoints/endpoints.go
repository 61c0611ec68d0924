// Package endpoints is the registry of backend REST URLs used by the web
// client. Every URL is the configured base URL, the version prefix and a
// fixed path suffix. Parameterized entries take the identifier verbatim:
// nothing is escaped or checked.
package endpoints

import (
	"time"

	"github.com/aicontext/webclient-go/internal/config"
)

const (
	DefaultBaseURL = config.DefaultAPIBaseURL
	V1Prefix       = "/api/v1"
	TimeoutMillis  = config.APITimeoutMillis
	Timeout        = TimeoutMillis * time.Millisecond
)

// Resolved once from API_URL at package initialisation and never mutated.
var (
	BaseURL   = config.BaseURLFromEnv()
	V1Base    = BaseURL + V1Prefix
	Endpoints = New(BaseURL)
)

type Registry struct {
	base string

	Auth            Auth
	Documents       Documents
	Classifications Classifications
	Stats           Stats
	Search          Search
	Graph           Graph
	Entities        Entities
}

type Auth struct {
	Login    string
	Register string
	Me       string
	Logout   string
}

// Documents holds the fixed document URLs. The per-document URLs are
// methods taking the document ID.
type Documents struct {
	Upload string
	List   string
	Search string

	root string
}

type Classifications struct {
	Options  string
	DevTypes string
	Teams    string
}

type Stats struct {
	Dashboard string
	Documents string
	Entities  string
	Chunks    string
	Users     string
}

type Search struct {
	Semantic string
	Hybrid   string
}

type Graph struct {
	Stats         string
	Nodes         string
	Relationships string
}

type Entities struct {
	Extract string
}

// New builds the registry for baseURL. The base is used as given, so a
// trailing slash ends up doubled in front of the version prefix.
func New(baseURL string) *Registry {
	v1 := baseURL + V1Prefix

	return &Registry{
		base: v1,
		Auth: Auth{
			Login:    v1 + "/auth/login",
			Register: v1 + "/auth/register",
			Me:       v1 + "/auth/me",
			Logout:   v1 + "/auth/logout",
		},
		Documents: Documents{
			Upload: v1 + "/documents/upload",
			List:   v1 + "/documents/list",
			Search: v1 + "/documents/search",
			root:   v1 + "/documents",
		},
		Classifications: Classifications{
			Options:  v1 + "/classifications/options",
			DevTypes: v1 + "/classifications/dev-types",
			Teams:    v1 + "/classifications/teams",
		},
		Stats: Stats{
			Dashboard: v1 + "/stats/dashboard",
			Documents: v1 + "/stats/documents",
			Entities:  v1 + "/stats/entities",
			Chunks:    v1 + "/stats/chunks",
			Users:     v1 + "/stats/users",
		},
		Search: Search{
			Semantic: v1 + "/search/semantic",
			Hybrid:   v1 + "/search/hybrid",
		},
		Graph: Graph{
			Stats:         v1 + "/graph/stats",
			Nodes:         v1 + "/graph/nodes",
			Relationships: v1 + "/graph/relationships",
		},
		Entities: Entities{
			Extract: v1 + "/entities/extract",
		},
	}
}

// Base returns the base URL joined with the version prefix.
func (r *Registry) Base() string {
	return r.base
}

func (d Documents) Detail(id string) string {
	return d.root + "/" + id
}

func (d Documents) FullDetail(id string) string {
	return d.root + "/" + id + "/detail"
}

func (d Documents) Download(id string) string {
	return d.root + "/" + id + "/download"
}

// Delete shares its URL with Detail; the HTTP method tells them apart.
func (d Documents) Delete(id string) string {
	return d.root + "/" + id
}

func (d Documents) Chunks(id string) string {
	return d.root + "/" + id + "/chunks"
}

func (d Documents) Chunk(id string) string {
	return d.root + "/" + id + "/chunk"
}

func (d Documents) Embed(id string) string {
	return d.root + "/" + id + "/embed"
}
