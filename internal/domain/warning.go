package domain

// Warning codes.
const (
	// WarningGraphSyncFailed means the document write succeeded but the graph write did not.
	WarningGraphSyncFailed = "graph_sync_failed"
)

// Warning is a recoverable problem reported next to an otherwise successful result.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Warnings is an ordered list of recoverable problems.
type Warnings []Warning

// Add appends a warning.
func (w *Warnings) Add(code, message string) {
	*w = append(*w, Warning{Code: code, Message: message})
}
