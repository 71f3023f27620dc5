package api

import (
	"bytes"
	"encoding/json"
)

// unwrap normalizes the backend's inconsistent response envelopes. An object holding
// "data" (or one of keys) yields that member, and a member that is present but null
// yields null so empty collections decode as empty. Anything else is returned unchanged.
func unwrap(raw []byte, keys ...string) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return trimmed
	}
	var sawNull bool
	for _, k := range append([]string{"data"}, keys...) {
		v, ok := obj[k]
		if !ok {
			continue
		}
		if !isNull(v) {
			return v
		}
		sawNull = true
	}
	if sawNull {
		return []byte("null")
	}
	return trimmed
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// pageMeta carries the pagination fields that may sit beside the items.
type pageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
