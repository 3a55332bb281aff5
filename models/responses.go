package models

// StatusSuccess is the envelope status code of a successful operation.
const StatusSuccess = "0"

// Response is the uniform envelope every business endpoint answers with.
// StatusCode "0" denotes success; other values identify the error kind.
// At most one of Data, Token and URL is set.
type Response struct {
	StatusCode    string `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Data          any    `json:"data,omitempty"`
	Token         string `json:"token,omitempty"`
	URL           string `json:"url,omitempty"`
}

// ValidationIssue points at one malformed request field.
type ValidationIssue struct {
	// Loc is the path to the offending value, e.g. ["body", "login"].
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

// ValidationErrorResponse is written with HTTP 422 when a request does not
// have the expected shape.
type ValidationErrorResponse struct {
	Detail []ValidationIssue `json:"detail"`
}
