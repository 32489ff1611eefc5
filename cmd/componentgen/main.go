// Command componentgen writes a RegisterComponents function for every type in
// a package marked with an //ecs:component directive.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

func main() {
	dir := flag.String("dir", ".", "Package directory to scan.")
	out := flag.String("out", "components_gen.go", "Output file, relative to -dir.")
	ecsImport := flag.String("ecs", "github.com/plus3/towerdefense/ecs", "Import path of the ecs package.")
	flag.Parse()

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:  *dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		log.Fatalf("load package: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		os.Exit(1)
	}
	if len(pkgs) != 1 {
		log.Fatalf("expected one package in %s, found %d", *dir, len(pkgs))
	}
	pkg := pkgs[0]

	types := FindComponents(pkg.Syntax)
	if len(types) == 0 {
		log.Fatalf("no %s types in %s", Directive, pkg.PkgPath)
	}

	path := filepath.Join(*dir, *out)
	src, err := Generate(path, pkg.Name, *ecsImport, types)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	fmt.Printf("componentgen: %d components -> %s\n", len(types), path)
}
