package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// IDList accepts the id-list shapes legacy clients send: a JSON array of
// numbers, a JSON array of numeric strings, or one comma-separated string.
type IDList []int64

// UnmarshalJSON normalises any supported input shape into a flat id slice.
func (l *IDList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*l = nil
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		ids, err := parseCommaSeparated(raw)
		if err != nil {
			return err
		}
		*l = ids
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("ids must be an array or a comma-separated string")
	}

	ids := make([]int64, 0, len(elems))
	for _, elem := range elems {
		id, err := parseIDElement(elem)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	*l = ids
	return nil
}

// ParseIDs normalises a comma-separated id string into an IDList. It backs
// the form-encoded input path, which bypasses UnmarshalJSON.
func ParseIDs(raw string) (IDList, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("ids are required")
	}
	ids, err := parseCommaSeparated(raw)
	if err != nil {
		return nil, err
	}
	return IDList(ids), nil
}

func parseIDElement(elem json.RawMessage) (int64, error) {
	var s string
	if err := json.Unmarshal(elem, &s); err == nil {
		return parseID(s)
	}
	var n int64
	if err := json.Unmarshal(elem, &n); err != nil {
		return 0, fmt.Errorf("invalid id %s", string(elem))
	}
	return n, nil
}

func parseCommaSeparated(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := parseID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
