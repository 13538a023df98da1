package params

import (
	"flag"
	"strings"

	"github.com/m4gshm/gollections/collection/mutable"
	"github.com/pkg/errors"
)

// multiflag collects repeated flag values, -buildTag a -buildTag b.
type multiflag struct {
	name   string
	values []string
	uniq   *mutable.Set[string]
}

var _ flag.Getter = (*multiflag)(nil)

func (f *multiflag) String() string {
	if f == nil {
		return ""
	}
	return strings.Join(f.values, ",")
}

func (f *multiflag) Set(s string) error {
	if !f.uniq.AddNew(s) {
		return errors.Errorf("duplicated value %v of parameter %v", s, f.name)
	}
	f.values = append(f.values, s)
	return nil
}

func (f *multiflag) Get() interface{} { return f.values }

func multiVal(flagSet *flag.FlagSet, name string, defValues []string, usage string) *[]string {
	values := &multiflag{name: name, uniq: mutable.NewSet[string]()}
	for _, defValue := range defValues {
		if err := values.Set(defValue); err != nil {
			panic(err)
		}
	}
	flagSet.Var(values, name, usage)
	return &values.values
}
