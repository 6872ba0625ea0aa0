package dto

// ConditionRequest creates or updates one filter row. Include defaults to
// true and Fuzzy to false when omitted, matching a freshly added row.
type ConditionRequest struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Include *bool  `json:"include"`
	Fuzzy   bool   `json:"fuzzy"`
}

// IncludeOrDefault resolves the omitted include flag.
func (r ConditionRequest) IncludeOrDefault() bool {
	if r.Include == nil {
		return true
	}
	return *r.Include
}

type SortRequest struct {
	Order string `json:"order" binding:"required"`
}

// TimeFilterRequest sets the time bound. Times are RFC3339 or epoch
// milliseconds; which ones are required depends on the mode.
type TimeFilterRequest struct {
	Mode   string `json:"mode" binding:"required"`
	Before string `json:"before"`
	After  string `json:"after"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type ExportRequest struct {
	Filename string `json:"filename" binding:"required"`
}

// ExportResponse reports where the spreadsheet was written.
type ExportResponse struct {
	Path     string `json:"path"`
	RowCount int    `json:"rowCount"`
}
