package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidRoadmapFormat means a roadmap payload had no usable topics.
var ErrInvalidRoadmapFormat = errors.New("invalid roadmap format")

// RoadmapTopic is one learning topic and the ordered items under it.
type RoadmapTopic struct {
	Name  string
	Items []string
}

// Roadmap maps topic names to ordered item lists, remembering the order in
// which topics were first set. The zero value is an empty roadmap.
type Roadmap struct {
	topics []RoadmapTopic
	index  map[string]int
}

// DroppedTopic records a key the normalizer discarded and why.
type DroppedTopic struct {
	Name   string
	Reason string
}

// Set stores items under name. An existing topic keeps its position.
func (r *Roadmap) Set(name string, items []string) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	copied := append([]string{}, items...)
	if i, ok := r.index[name]; ok {
		r.topics[i].Items = copied
		return
	}
	r.index[name] = len(r.topics)
	r.topics = append(r.topics, RoadmapTopic{Name: name, Items: copied})
}

// Get returns the items stored under name.
func (r Roadmap) Get(name string) ([]string, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return append([]string{}, r.topics[i].Items...), true
}

func (r Roadmap) Len() int {
	return len(r.topics)
}

// Topics returns a copy of the topics in insertion order.
func (r Roadmap) Topics() []RoadmapTopic {
	out := make([]RoadmapTopic, len(r.topics))
	for i, t := range r.topics {
		out[i] = RoadmapTopic{Name: t.Name, Items: append([]string{}, t.Items...)}
	}
	return out
}

// ToMap flattens the roadmap into a plain map, losing topic order.
func (r Roadmap) ToMap() map[string][]string {
	out := make(map[string][]string, len(r.topics))
	for _, t := range r.topics {
		out[t.Name] = append([]string{}, t.Items...)
	}
	return out
}

// MarshalJSON writes the roadmap as a JSON object in topic order.
func (r Roadmap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range r.topics {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(t.Name)
		if err != nil {
			return nil, err
		}
		items := t.Items
		if items == nil {
			items = []string{}
		}
		val, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of string arrays, keeping key order. Unlike
// NormalizeRoadmap it rejects any other shape.
func (r *Roadmap) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = Roadmap{}
		return nil
	}
	entries, err := decodeOrderedObject(data)
	if err != nil {
		return err
	}
	var out Roadmap
	for _, e := range entries {
		var items []string
		if err := json.Unmarshal(e.value, &items); err != nil {
			return fmt.Errorf("roadmap topic %q: %w", e.key, err)
		}
		out.Set(e.key, items)
	}
	*r = out
	return nil
}

// NormalizeRoadmap turns an untrusted JSON object into a Roadmap. Keys whose
// value is not an array are dropped and reported; non-string array elements
// are dropped silently. It fails when raw is not an
// object or nothing usable remains.
func NormalizeRoadmap(raw json.RawMessage) (Roadmap, []DroppedTopic, error) {
	entries, err := decodeOrderedObject(raw)
	if err != nil {
		return Roadmap{}, nil, fmt.Errorf("%w: %v", ErrInvalidRoadmapFormat, err)
	}

	var (
		roadmap Roadmap
		dropped []DroppedTopic
	)
	for _, e := range entries {
		if jsonKind(e.value) != "array" {
			dropped = append(dropped, DroppedTopic{
				Name:   e.key,
				Reason: fmt.Sprintf("expected an array, got %s", jsonKind(e.value)),
			})
			continue
		}
		var elems []json.RawMessage
		if err := json.Unmarshal(e.value, &elems); err != nil {
			return Roadmap{}, nil, fmt.Errorf("%w: topic %q: %v", ErrInvalidRoadmapFormat, e.key, err)
		}
		items := make([]string, 0, len(elems))
		for _, el := range elems {
			if jsonKind(el) != "string" {
				continue
			}
			var s string
			if err := json.Unmarshal(el, &s); err != nil {
				return Roadmap{}, nil, fmt.Errorf("%w: topic %q: %v", ErrInvalidRoadmapFormat, e.key, err)
			}
			items = append(items, s)
		}
		roadmap.Set(e.key, items)
	}

	if roadmap.Len() == 0 {
		return Roadmap{}, dropped, fmt.Errorf("%w: no usable topics", ErrInvalidRoadmapFormat)
	}
	return roadmap, dropped, nil
}

// ParseRoadmapResponse extracts and normalizes the "roadmap" member of a
// gateway reply.
func ParseRoadmapResponse(body []byte) (Roadmap, []DroppedTopic, error) {
	if jsonKind(body) != "object" {
		return Roadmap{}, nil, fmt.Errorf("%w: response is not an object", ErrInvalidRoadmapFormat)
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Roadmap{}, nil, fmt.Errorf("%w: %v", ErrInvalidRoadmapFormat, err)
	}
	raw, ok := envelope["roadmap"]
	if !ok || jsonKind(raw) == "null" {
		return Roadmap{}, nil, fmt.Errorf("%w: roadmap missing", ErrInvalidRoadmapFormat)
	}
	return NormalizeRoadmap(raw)
}

type objectEntry struct {
	key   string
	value json.RawMessage
}

func decodeOrderedObject(data []byte) ([]objectEntry, error) {
	if jsonKind(data) != "object" {
		return nil, fmt.Errorf("expected an object, got %s", jsonKind(data))
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	var entries []objectEntry
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("value for %q: %w", key, err)
		}
		// A repeated key keeps its first position and takes its last value.
		if i, dup := seen[key]; dup {
			entries[i].value = value
			continue
		}
		seen[key] = len(entries)
		entries = append(entries, objectEntry{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

func jsonKind(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "nothing"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
