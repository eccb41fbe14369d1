// File: serialize.go
// Role: JSON-style tagged records with stable "type" discriminators (spec
// §6). Each set type marshals to {"type":"...","data":{...}}; unknown
// "type" values fail with ErrInvalidSerializedType on decode.

package literal

import (
	"encoding/json"

	"github.com/atopile/atopile-sub011/units"
)

type taggedRecord struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type intervalJSON struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type unitJSON struct {
	Basis units.Basis `json:"basis"`
	Scale float64     `json:"scale"`
}

func marshalUnit(u *units.Unit) *unitJSON {
	if u == nil {
		return nil
	}

	return &unitJSON{Basis: u.Basis, Scale: u.Scale}
}

func unmarshalUnit(j *unitJSON) *units.Unit {
	if j == nil {
		return nil
	}

	return &units.Unit{Basis: j.Basis, Scale: j.Scale}
}

// MarshalJSON implements {"type":"StringSet","data":{"values":[...]}}.
func (s Strings) MarshalJSON() ([]byte, error) {
	return marshalTagged("StringSet", struct {
		Values []string `json:"values"`
	}{Values: s.values})
}

// UnmarshalJSON decodes a StringSet record.
func (s *Strings) UnmarshalJSON(b []byte) error {
	var data struct {
		Values []string `json:"values"`
	}
	if err := unmarshalTagged(b, "StringSet", &data); err != nil {
		return err
	}
	*s = NewStrings(data.Values)

	return nil
}

// MarshalJSON implements {"type":"CountSet","data":{"values":[...]}}.
func (c Counts) MarshalJSON() ([]byte, error) {
	return marshalTagged("CountSet", struct {
		Values []int64 `json:"values"`
	}{Values: c.values})
}

// UnmarshalJSON decodes a CountSet record.
func (c *Counts) UnmarshalJSON(b []byte) error {
	var data struct {
		Values []int64 `json:"values"`
	}
	if err := unmarshalTagged(b, "CountSet", &data); err != nil {
		return err
	}
	*c = NewCounts(data.Values)

	return nil
}

// MarshalJSON implements {"type":"BooleanSet","data":{"values":[...]}}.
func (b Booleans) MarshalJSON() ([]byte, error) {
	return marshalTagged("BooleanSet", struct {
		Values []bool `json:"values"`
	}{Values: b.Values()})
}

// UnmarshalJSON decodes a BooleanSet record.
func (b *Booleans) UnmarshalJSON(raw []byte) error {
	var data struct {
		Values []bool `json:"values"`
	}
	if err := unmarshalTagged(raw, "BooleanSet", &data); err != nil {
		return err
	}
	*b = NewBooleans(data.Values)

	return nil
}

// MarshalJSON implements {"type":"EnumSet","data":{"values":[...]}}.
func (e AbstractEnums) MarshalJSON() ([]byte, error) {
	return marshalTagged("EnumSet", struct {
		Values []string `json:"values"`
	}{Values: e.values})
}

// UnmarshalJSON decodes an EnumSet record.
func (e *AbstractEnums) UnmarshalJSON(b []byte) error {
	var data struct {
		Values []string `json:"values"`
	}
	if err := unmarshalTagged(b, "EnumSet", &data); err != nil {
		return err
	}
	*e = NewAbstractEnums(data.Values)

	return nil
}

// MarshalJSON implements
// {"type":"Numeric_Interval_Disjoint","data":{"intervals":[...]}}.
func (s NumericSet) MarshalJSON() ([]byte, error) {
	return marshalTagged("Numeric_Interval_Disjoint", struct {
		Intervals []intervalJSON `json:"intervals"`
	}{Intervals: toIntervalJSON(s.intervals)})
}

// UnmarshalJSON decodes a Numeric_Interval_Disjoint record.
func (s *NumericSet) UnmarshalJSON(b []byte) error {
	var data struct {
		Intervals []intervalJSON `json:"intervals"`
	}
	if err := unmarshalTagged(b, "Numeric_Interval_Disjoint", &data); err != nil {
		return err
	}
	*s = SetupFromValues(fromIntervalJSON(data.Intervals))

	return nil
}

// MarshalJSON picks between the "Quantity_Interval_Disjoint" and
// "Quantity_Set_Discrete" record shapes (spec §6) depending on whether
// every interval is a singleton.
func (n Numbers) MarshalJSON() ([]byte, error) {
	allSingleton := true
	for _, iv := range n.Set.intervals {
		if !iv.isSingleton() {
			allSingleton = false
			break
		}
	}

	tag := "Quantity_Interval_Disjoint"
	if allSingleton && len(n.Set.intervals) > 0 {
		tag = "Quantity_Set_Discrete"
	}

	return marshalTagged(tag, struct {
		Intervals []intervalJSON `json:"intervals"`
		Unit      *unitJSON      `json:"unit"`
	}{Intervals: toIntervalJSON(n.Set.intervals), Unit: marshalUnit(n.Unit)})
}

// UnmarshalJSON decodes either Numbers record shape.
func (n *Numbers) UnmarshalJSON(b []byte) error {
	var rec taggedRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	if rec.Type != "Quantity_Interval_Disjoint" && rec.Type != "Quantity_Set_Discrete" {
		return ErrInvalidSerializedType
	}

	var data struct {
		Intervals []intervalJSON `json:"intervals"`
		Unit      *unitJSON      `json:"unit"`
	}
	if err := json.Unmarshal(rec.Data, &data); err != nil {
		return err
	}

	n.Set = SetupFromValues(fromIntervalJSON(data.Intervals))
	n.Unit = unmarshalUnit(data.Unit)

	return nil
}

func toIntervalJSON(ivs []Interval) []intervalJSON {
	out := make([]intervalJSON, len(ivs))
	for i, iv := range ivs {
		out[i] = intervalJSON{Min: iv.Min, Max: iv.Max}
	}

	return out
}

func fromIntervalJSON(ivs []intervalJSON) []Interval {
	out := make([]Interval, len(ivs))
	for i, iv := range ivs {
		out[i] = Interval{Min: iv.Min, Max: iv.Max}
	}

	return out
}

func marshalTagged(tag string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return json.Marshal(taggedRecord{Type: tag, Data: raw})
}

func unmarshalTagged(b []byte, wantTag string, data any) error {
	var rec taggedRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	if rec.Type != wantTag {
		return ErrInvalidSerializedType
	}

	return json.Unmarshal(rec.Data, data)
}
