package jsontype

import (
	"fmt"
	"go/types"
	"reflect"
)

// Capability is the JSON side a generated method relies on.
type Capability int

const (
	// Encode is required by the String and GoString methods.
	Encode Capability = iota
	// Decode is required by the parse function.
	Decode
)

func (c Capability) String() string {
	if c == Decode {
		return "deserializable"
	}
	return "serializable"
}

func (c Capability) overrides() []string {
	if c == Decode {
		return []string{"UnmarshalJSON", "UnmarshalText"}
	}
	return []string{"MarshalJSON", "MarshalText"}
}

// UnsupportedError reports the part of a type JSON cannot handle.
type UnsupportedError struct {
	Capability Capability
	Path       string
	Type       types.Type
}

func (e *UnsupportedError) Error() string {
	where := ""
	if len(e.Path) > 0 {
		where = " at " + e.Path
	}
	return fmt.Sprintf("type %s%s is not JSON %s", e.Type, where, e.Capability)
}

// Check reports whether values of the type can be passed through JSON in the direction of the capability.
// Type parameters and interfaces are resolved at runtime and pass.
func (m *Model) Check(capability Capability) error {
	return (&checker{capability: capability, pkg: m.Package(), visited: map[types.Type]bool{}}).check(m.Typ, "")
}

type checker struct {
	capability Capability
	pkg        *types.Package
	visited    map[types.Type]bool
}

func (c *checker) check(typ types.Type, path string) error {
	if c.overridden(typ) {
		return nil
	}
	switch t := typ.(type) {
	case *types.Named, *types.Alias:
		if c.visited[typ] {
			return nil
		}
		c.visited[typ] = true
		return c.check(t.Underlying(), path)
	case *types.TypeParam, *types.Interface:
		return nil
	case *types.Basic:
		switch t.Kind() {
		case types.Complex64, types.Complex128, types.UnsafePointer, types.UntypedNil, types.Invalid:
			return c.unsupported(typ, path)
		}
		return nil
	case *types.Pointer:
		return c.check(t.Elem(), path)
	case *types.Slice:
		return c.check(t.Elem(), path+"[]")
	case *types.Array:
		return c.check(t.Elem(), path+"[]")
	case *types.Map:
		if !c.validKey(t.Key()) {
			return c.unsupported(t.Key(), path+"[key]")
		}
		return c.check(t.Elem(), path+"[value]")
	case *types.Struct:
		for i := 0; i < t.NumFields(); i++ {
			field := t.Field(i)
			if !field.Exported() && !field.Embedded() {
				continue
			}
			if reflect.StructTag(t.Tag(i)).Get("json") == "-" {
				continue
			}
			if err := c.check(field.Type(), joinPath(path, field.Name())); err != nil {
				return err
			}
		}
		return nil
	default:
		// channels, functions, tuples
		return c.unsupported(typ, path)
	}
}

func (c *checker) overridden(typ types.Type) bool {
	if _, ok := typ.(*types.Pointer); !ok {
		typ = types.NewPointer(typ)
	}
	for _, name := range c.capability.overrides() {
		if obj, _, _ := types.LookupFieldOrMethod(typ, true, c.pkg, name); obj != nil {
			if _, isFunc := obj.(*types.Func); isFunc {
				return true
			}
		}
	}
	return false
}

func (c *checker) validKey(key types.Type) bool {
	if basic, ok := key.Underlying().(*types.Basic); ok {
		info := basic.Info()
		if info&types.IsString != 0 || info&types.IsInteger != 0 {
			return true
		}
	}
	method := "MarshalText"
	if c.capability == Decode {
		method = "UnmarshalText"
	}
	if _, isParam := key.(*types.TypeParam); isParam {
		return true
	}
	obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(key), true, c.pkg, method)
	_, isFunc := obj.(*types.Func)
	return isFunc
}

func (c *checker) unsupported(typ types.Type, path string) error {
	return &UnsupportedError{Capability: c.capability, Path: path, Type: typ}
}

func joinPath(path, name string) string {
	if len(path) == 0 {
		return name
	}
	return path + "." + name
}
