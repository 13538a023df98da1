package main

import (
	"flag"
	"fmt"
	"go/token"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"

	"github.com/m4gshm/asjson/command"
	"github.com/m4gshm/asjson/generator"
	"github.com/m4gshm/asjson/logger"
	"github.com/m4gshm/asjson/model/util"
	"github.com/m4gshm/asjson/params"
)

func usage() {
	out := flag.CommandLine.Output()
	_, _ = fmt.Fprintf(out, "Usage of "+params.Name+":\n")
	_, _ = fmt.Fprintf(out, "\t"+params.Name+" [flags] -type T command [command flags] [command [command flags]]...\n")
	_, _ = fmt.Fprintf(out, "\tcommands are read from //asjson:<command> comments of the type if omitted\n")
	_, _ = fmt.Fprintf(out, "Flags:\n")
	flag.PrintDefaults()
	command.PrintUsage()
}

func main() {
	log.SetPrefix(params.Name + ": ")
	log.SetFlags(0)

	config := params.NewConfig(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()

	if err := logger.Init(*config.Debug); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	typeName := *config.Type
	if len(typeName) == 0 {
		log.Print("no type arg")
		flag.Usage()
		os.Exit(2)
	}
	if _, err := generator.EngineIdent(*config.Engine); err != nil {
		log.Fatal(err)
	}

	chain, err := command.Chain(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	fileSet := token.NewFileSet()
	buildTags := *config.BuildTags
	pkgs, err := util.ExtractPackages(fileSet, buildTags, "", *config.PackagePattern)
	if err != nil {
		log.Fatal(err)
	}
	typ, typPkg, typFile, err := util.FindTypePackageFile(typeName, fileSet, pkgs)
	if err != nil {
		log.Fatal(err)
	} else if typ == nil {
		log.Fatalf("type not found, %s", typeName)
	}

	outputName, err := filepath.Abs(config.OutputFile())
	if err != nil {
		log.Fatal(err)
	}
	typDir := ""
	if typFile != nil {
		typDir = filepath.Dir(fileSet.Position(typFile.Pos()).Filename)
	}
	outPkg, err := outPackage(filepath.Dir(outputName), typDir, typPkg, buildTags)
	if err != nil {
		log.Fatal(err)
	}
	logger.Debugw("output", "file", outputName, "package", outPkg.PkgPath)

	g := generator.New(params.Name, os.Args[1:], outPkg.Name, outPkg.PkgPath)
	context := &command.Context{
		Config:    config,
		Generator: g,
		FileSet:   fileSet,
		Packages:  pkgs,
		OutFile:   outputName,
	}

	if len(chain) == 0 {
		model, err := context.Model()
		if err != nil {
			log.Fatal(err)
		}
		if chain, err = command.DirectiveChain(model, fileSet); err != nil {
			log.Fatal(err)
		} else if len(chain) == 0 {
			log.Printf("no commands for type %s", typeName)
			flag.Usage()
			os.Exit(2)
		}
	}
	for _, cmd := range chain {
		logger.Debugf("run command %s", cmd.Name())
		if err := cmd.Run(context); err != nil {
			log.Fatal(err)
		}
	}
	if g.IsEmpty() {
		log.Printf("nothing generated for type %s", typeName)
		return
	}

	src, fmtErr := g.FormatSrc()
	const userWriteOtherRead = fs.FileMode(0644)
	if writeErr := os.WriteFile(outputName, src, userWriteOtherRead); writeErr != nil {
		log.Fatalf("writing output: %s", writeErr)
	} else if fmtErr != nil {
		log.Fatalf("go src code formatting error: %s", fmtErr)
	}
}

func outPackage(outDir, typDir string, typPkg *packages.Package, buildTags []string) (*packages.Package, error) {
	if outDir == typDir {
		return typPkg, nil
	}
	pkgs, err := util.ExtractPackages(token.NewFileSet(), buildTags, outDir, ".")
	if err != nil {
		return nil, err
	}
	for _, pkg := range pkgs {
		if len(pkg.Name) > 0 {
			return pkg, nil
		}
	}
	return nil, errors.Errorf("cannot determine output package, path '%v'", outDir)
}
