package dto

import "encoding/json"

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorBody is the error payload shape the backend emits on non-2xx
// responses: either a single detail/error string or a per-field error map
// from serializer validation.
type ErrorBody struct {
	Detail string
	Fields map[string][]string
}

// UnmarshalJSON accepts both error shapes.
func (e *ErrorBody) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, key := range []string{"detail", "error", "message"} {
		if msg, ok := raw[key]; ok {
			var s string
			if json.Unmarshal(msg, &s) == nil && s != "" {
				e.Detail = s
				delete(raw, key)
				break
			}
		}
	}

	for field, val := range raw {
		var msgs []string
		if json.Unmarshal(val, &msgs) == nil && len(msgs) > 0 {
			if e.Fields == nil {
				e.Fields = make(map[string][]string)
			}
			e.Fields[field] = msgs
			continue
		}
		var s string
		if json.Unmarshal(val, &s) == nil && s != "" {
			if e.Fields == nil {
				e.Fields = make(map[string][]string)
			}
			e.Fields[field] = []string{s}
		}
	}
	return nil
}

// Message returns the most specific message available.
func (e ErrorBody) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	for field, msgs := range e.Fields {
		if len(msgs) > 0 {
			return field + ": " + msgs[0]
		}
	}
	return ""
}
