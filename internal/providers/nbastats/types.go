package nbastats

import (
	"encoding/json"
	"strings"

	"github.com/preston-bernstein/nba-roster-service/internal/providers"
)

type statsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// ValidResponse reports whether v is a decoded stats payload with a non-empty
// resultSets list whose first entry carries a rowSet. Rows are not inspected.
func ValidResponse(v any) bool {
	payload, ok := v.(map[string]any)
	if !ok {
		return false
	}
	sets, ok := payload["resultSets"].([]any)
	if !ok || len(sets) == 0 {
		return false
	}
	first, ok := sets[0].(map[string]any)
	if !ok {
		return false
	}
	_, ok = first["rowSet"]
	return ok
}

func decodeResponse(endpoint string, body []byte) (statsResponse, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return statsResponse{}, &providers.SchemaError{Endpoint: endpoint, Reason: "invalid json", Err: err}
	}
	if !ValidResponse(raw) {
		return statsResponse{}, &providers.SchemaError{Endpoint: endpoint, Reason: "missing resultSets or rowSet"}
	}

	var payload statsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return statsResponse{}, &providers.SchemaError{Endpoint: endpoint, Reason: "unexpected resultSets shape", Err: err}
	}
	return payload, nil
}

// resultSetByName finds a set by name, falling back to position when the
// upstream did not name its sets.
func (r statsResponse) resultSetByName(name string, fallback int) (resultSet, bool) {
	named := false
	for _, set := range r.ResultSets {
		if set.Name == "" {
			continue
		}
		named = true
		if strings.EqualFold(set.Name, name) {
			return set, true
		}
	}
	if named || fallback < 0 || fallback >= len(r.ResultSets) {
		return resultSet{}, false
	}
	return r.ResultSets[fallback], true
}
