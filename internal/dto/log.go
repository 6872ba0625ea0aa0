package dto

// FetchResponse reports the outcome of a one-shot log pull.
type FetchResponse struct {
	LogName     string `json:"logName"`
	Environment string `json:"environment"`
	RecordCount int    `json:"recordCount"`
}

// FieldView is one post-params entry as displayed, with the highlight info
// computed against the active filter set.
type FieldView struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Matched     bool   `json:"matched"`
	Fuzzy       bool   `json:"fuzzy,omitempty"`
	Include     bool   `json:"include,omitempty"`
	ConditionID *int   `json:"conditionId,omitempty"`
}

// RecordView is one record of the current page.
type RecordView struct {
	Timestamp string      `json:"timestamp"`
	Fields    []FieldView `json:"fields"`
	UserAgent string      `json:"userAgent"`
	IPAddress string      `json:"ipAddress"`
}

// LogPageResponse is the rendered view of the current page.
type LogPageResponse struct {
	Records    []RecordView `json:"records"`
	TotalCount int          `json:"totalCount"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
	PageSize   int          `json:"pageSize"`
	SortOrder  string       `json:"sortOrder"`
}
