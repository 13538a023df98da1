package engines

//go:generate asjson -type Event display debug -pretty parse

type Event struct {
	ID      int64              `json:"id"`
	Kind    string             `json:"kind"`
	Tags    []string           `json:"tags,omitempty"`
	Weights map[string]float64 `json:"weights"`
	Parent  *Event             `json:"parent,omitempty"`
}

//go:generate asjson -type IteratorEvent -engine jsoniter display debug -pretty parse

type IteratorEvent Event

//go:generate asjson -type SonicEvent -engine sonic display debug -pretty parse

type SonicEvent Event

//go:generate asjson -type GoccyEvent -engine goccy display debug -pretty parse

type GoccyEvent Event
