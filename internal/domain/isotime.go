package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ISOTime serializes as an ISO-8601 (RFC 3339) string and parses from
// either a full timestamp or a date-only literal.
type ISOTime struct {
	time.Time
}

func NewISOTime(t time.Time) ISOTime {
	return ISOTime{Time: t.UTC()}
}

func ParseISOTime(s string) (ISOTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ISOTime{}, fmt.Errorf("empty timestamp")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewISOTime(t), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return NewISOTime(t), nil
	}
	return ISOTime{}, fmt.Errorf("unparsable timestamp %q", s)
}

func (t ISOTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

func (t *ISOTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseISOTime(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
