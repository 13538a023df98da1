package generic

//go:generate asjson -type Box derive

type Box[T any] struct {
	Value T `json:"value"`
}

type Number interface {
	~int | ~int64 | ~float64
}

//go:generate asjson -type Pair -engine jsoniter display parse -name PairOf

type Pair[K comparable, V Number] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}
