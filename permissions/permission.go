package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var policyData []byte

// Endpoint maps a route to the roles allowed to call it.
// Skip marks endpoints that bypass authentication entirely, such as login.
type Endpoint struct {
	Roles  []string `json:"roles"`
	Path   string   `json:"path"`
	Method string   `json:"method"`
	Skip   bool     `json:"skip"`
}

type Policy struct {
	Endpoints []Endpoint `json:"endpoints"`
	Skip      bool       `json:"skip"`
}

func (p *Policy) FindEndpoint(path, method string) Endpoint {
	idx := slices.IndexFunc(p.Endpoints, func(e Endpoint) bool {
		return e.Path == path && e.Method == method
	})

	if idx == -1 {
		return Endpoint{}
	}

	return p.Endpoints[idx]
}

func Get() *Policy {
	var policy Policy

	err := json.Unmarshal(policyData, &policy)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded access policy")

		return nil
	}

	log.Info().Int("endpoints", len(policy.Endpoints)).Msg("Successfully loaded embedded access policy")

	return &policy
}
