package main

import (
	"flag"
	"fmt"
	"os"
	"reflect"
	"sort"

	beartype "github.com/pbourke/beartype"
	"github.com/pbourke/beartype/originyaml"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "origins":
		originsCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "beartype CLI\n\nUsage:\n  beartype origins [-manifest origins.yaml]\n  beartype check -attr Name [-manifest origins.yaml]\n\nNotes:\n  - origins prints the registered shape table, optionally extended from a manifest.\n  - check resolves one shape's origin type and exits non-zero when none resolves.")
}

func originsCmd(args []string) {
	fs := flag.NewFlagSet("origins", flag.ExitOnError)
	var manifest string
	fs.StringVar(&manifest, "manifest", "", "YAML manifest extending the registry")
	_ = fs.Parse(args)

	reg := loadRegistry(manifest)
	type row struct{ attr, origin string }
	rows := []row{}
	reg.Each(func(h beartype.Hint, origin reflect.Type) {
		rows = append(rows, row{attr: h.String(), origin: origin.String()})
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].attr < rows[j].attr })
	for _, r := range rows {
		fmt.Printf("%-16s -> %s\n", r.attr, r.origin)
	}
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var attr string
	var manifest string
	fs.StringVar(&attr, "attr", "", "shape name to resolve")
	fs.StringVar(&manifest, "manifest", "", "YAML manifest extending the registry")
	_ = fs.Parse(args)
	if attr == "" {
		fs.Usage()
		os.Exit(2)
	}

	reg := loadRegistry(manifest)
	origin, err := reg.OriginOf(beartype.Attr(attr))
	if err != nil {
		fatalf("resolve %s: %v", attr, err)
	}
	fmt.Printf("%s -> %s\n", attr, origin.String())
}

// loadRegistry returns DefaultOrigins extended by the manifest when one is
// given. Extension happens on the shared registry: the CLI is a one-shot
// process, matching the populate-at-start contract.
func loadRegistry(manifest string) *beartype.OriginRegistry {
	reg := beartype.DefaultOrigins
	if manifest == "" {
		return reg
	}
	data, err := os.ReadFile(manifest)
	if err != nil {
		fatalf("read manifest: %v", err)
	}
	if err := originyaml.Apply(data, reg, nil); err != nil {
		fatalf("apply manifest: %v", err)
	}
	return reg
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
