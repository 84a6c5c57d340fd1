package scale

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
)

type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindQualitative Kind = "qualitative"
)

// Value is the persisted shape of one scale level. Older documents store a
// plain label array, newer ones store {value, order} pairs; both unmarshal
// into this type and normalize through Levels.
type Value struct {
	Label string
	Order *int
}

type valueObject struct {
	Value string `json:"value"`
	Order *int   `json:"order,omitempty"`
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v.Label = s
		v.Order = nil
		return nil
	}

	var obj valueObject
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	v.Label = obj.Value
	v.Order = obj.Order
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.Order == nil {
		return json.Marshal(v.Label)
	}
	return json.Marshal(valueObject{Value: v.Label, Order: v.Order})
}

type Scale struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	Values    []Value   `json:"values"`
	CreatedAt time.Time `json:"created_at"`
}

// Levels returns the canonical ordered label list, lowest proficiency first.
// Values carrying an explicit order are sorted by it (stable, so equal orders
// keep insertion order); values without one trust array order. Malformed or
// empty inputs yield an empty list, which callers must treat as "no ordering
// available" rather than an error.
func (s Scale) Levels() []string {
	out := make([]string, 0, len(s.Values))

	hasOrder := false
	for _, v := range s.Values {
		if v.Order != nil {
			hasOrder = true
			break
		}
	}

	vals := make([]Value, len(s.Values))
	copy(vals, s.Values)
	if hasOrder {
		sort.SliceStable(vals, func(i, j int) bool {
			oi, oj := 0, 0
			if vals[i].Order != nil {
				oi = *vals[i].Order
			}
			if vals[j].Order != nil {
				oj = *vals[j].Order
			}
			return oi < oj
		})
	}

	for _, v := range vals {
		label := strings.TrimSpace(v.Label)
		if label == "" {
			continue
		}
		out = append(out, label)
	}
	return out
}

// Position reports the zero-based rank of level on the scale.
func (s Scale) Position(level string) (int, bool) {
	for i, l := range s.Levels() {
		if l == level {
			return i, true
		}
	}
	return 0, false
}

// Score maps a level to [0,100]. Qualitative scales score by rank:
// ((position+1)/count)*100. Numeric scales score by value against the highest
// numeric level. Levels that do not resolve score 0.
func (s Scale) Score(level string) float64 {
	levels := s.Levels()
	if len(levels) == 0 {
		return 0
	}

	if s.Kind == KindNumeric {
		return numericScore(levels, level)
	}

	pos, ok := s.Position(level)
	if !ok {
		return 0
	}
	return float64(pos+1) / float64(len(levels)) * 100
}

func numericScore(levels []string, level string) float64 {
	val, err := strconv.ParseFloat(strings.TrimSpace(level), 64)
	if err != nil {
		return 0
	}

	max := 0.0
	for _, l := range levels {
		if n, err := strconv.ParseFloat(strings.TrimSpace(l), 64); err == nil && n > max {
			max = n
		}
	}
	if max <= 0 {
		return 0
	}
	if val < 0 {
		return 0
	}
	if val > max {
		val = max
	}
	return val / max * 100
}
