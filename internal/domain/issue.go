package domain

// ValidationIssue is a normal, expected output of rule evaluation, never an
// error. Issues accumulate; one response can carry several.
type ValidationIssue struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Blocking bool   `json:"blocking"`
}

// NewIssue builds a blocking issue. Every current rule blocks; the flag exists
// so advisory rules can be added without changing the result shape.
func NewIssue(code, message string) ValidationIssue {
	return ValidationIssue{Code: code, Message: message, Blocking: true}
}
