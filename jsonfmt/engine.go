package jsonfmt

import (
	"encoding/json"
	"sort"

	"github.com/bytedance/sonic"
	gojson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
)

// Engine names accepted by Lookup and by the asjson -engine flag.
const (
	StdName      = "std"
	IteratorName = "jsoniter"
	SonicName    = "sonic"
	GoccyName    = "goccy"
)

// Engine is a JSON encoder/decoder pair used by generated methods.
type Engine interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Valid(data []byte) bool
}

var (
	// Std delegates to encoding/json.
	Std Engine = stdEngine{}
	// Iterator delegates to json-iterator configured to be compatible with encoding/json.
	Iterator Engine = apiEngine{name: IteratorName, api: jsoniter.ConfigCompatibleWithStandardLibrary}
	// Sonic delegates to bytedance/sonic configured to be compatible with encoding/json.
	Sonic Engine = apiEngine{name: SonicName, api: sonic.ConfigStd}
	// Goccy delegates to goccy/go-json.
	Goccy Engine = goccyEngine{}
)

var engines = map[string]Engine{
	StdName:      Std,
	IteratorName: Iterator,
	SonicName:    Sonic,
	GoccyName:    Goccy,
}

// Lookup returns the engine registered under the name.
func Lookup(name string) (Engine, bool) {
	e, ok := engines[name]
	return e, ok
}

// Names returns the registered engine names in lexical order.
func Names() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type stdEngine struct{}

func (stdEngine) Name() string                       { return StdName }
func (stdEngine) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (stdEngine) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (stdEngine) Valid(data []byte) bool             { return json.Valid(data) }

// codecAPI is the method subset shared by jsoniter.API and sonic.API.
type codecAPI interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
	Valid(data []byte) bool
}

type apiEngine struct {
	name string
	api  codecAPI
}

func (e apiEngine) Name() string                       { return e.name }
func (e apiEngine) Marshal(v any) ([]byte, error)      { return e.api.Marshal(v) }
func (e apiEngine) Unmarshal(data []byte, v any) error { return e.api.Unmarshal(data, v) }
func (e apiEngine) Valid(data []byte) bool             { return e.api.Valid(data) }

type goccyEngine struct{}

func (goccyEngine) Name() string                       { return GoccyName }
func (goccyEngine) Marshal(v any) ([]byte, error)      { return gojson.Marshal(v) }
func (goccyEngine) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }
func (goccyEngine) Valid(data []byte) bool             { return gojson.Valid(data) }
