package params

import (
	"flag"
	"strings"

	"github.com/m4gshm/asjson/jsonfmt"
	"github.com/m4gshm/asjson/logger"
)

const (
	Name              = "asjson"
	DefaultFileSuffix = "_" + Name + ".go"
)

func NewConfig(flagSet *flag.FlagSet) *Config {
	return &Config{
		Type:           flagSet.String("type", "", "type name; must be set"),
		BuildTags:      multiVal(flagSet, "buildTag", []string{Name}, "include build tag"),
		Output:         flagSet.String("out", "", "output file name; default srcdir/<type>"+DefaultFileSuffix),
		PackagePattern: flagSet.String("package", ".", "used package"),
		Engine: flagSet.String("engine", jsonfmt.StdName, "json engine of generated code; supported "+
			strings.Join(jsonfmt.Names(), ", ")),
		Debug: flagSet.Bool("debug", false, "verbose logging; also enabled by "+logger.DebugEnv+" env"),
	}
}

type Config struct {
	Type           *string
	BuildTags      *[]string
	Output         *string
	PackagePattern *string
	Engine         *string
	Debug          *bool
}

// OutputFile is the -out value or the default name of the generated file.
func (c *Config) OutputFile() string {
	if out := *c.Output; len(out) > 0 {
		return out
	}
	return strings.ToLower(*c.Type + DefaultFileSuffix)
}

func Export(flagSet *flag.FlagSet, def bool) *bool {
	return flagSet.Bool("export", def, "export generated function")
}

func Nolint(flagSet *flag.FlagSet) *bool {
	return flagSet.Bool("nolint", false, "add //nolint comment")
}
