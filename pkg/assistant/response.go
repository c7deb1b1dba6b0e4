package assistant

import "github.com/b1query/b1query-engine/pkg/datastore"

// QueryResponse is the stable payload returned to callers. SQLQuery,
// VisualizationType, and Summary are always populated. Results and Error
// are both null unless execution was attempted, and never both set for
// the same attempt; rows serialize with keys in the query's declared
// column order.
type QueryResponse struct {
	SQLQuery          string            `json:"sqlQuery"`
	VisualizationType VisualizationType `json:"visualizationType"`
	Summary           string            `json:"summary"`
	Results           []datastore.Row   `json:"results"`
	Error             *string           `json:"error"`
}

// setError records an execution-stage failure on the response.
func (r *QueryResponse) setError(msg string) {
	r.Error = &msg
}
