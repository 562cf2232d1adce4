//go:build ignore

// Command gen_tables is the offline CLDR data generator: it is an external
// collaborator per spec.md §1 ("Out of scope ... the offline CLDR data
// generator that ingests upstream JSON and emits per-locale code") and is
// not wired into `go build` (the `ignore` build tag keeps it out of the
// module, matching aretext's text/segment/gen_props.go). It is kept here to
// document the wire shape: a real generator reads CLDR JSON (plurals.json,
// main/<locale>/*.json) and emits one locale/table_<code>.go file per
// locale in exactly the shape table_en.go hand-writes, by filling in this
// template.
package main

import (
	"flag"
	"log"
	"os"
	"text/template"
)

var (
	localeCode string
	cldrPath   string
	outputPath string
)

const tableTemplate = `package locale

func init() {
	register(&Data{
		Code: {{printf "%q" .Code}},
		// PluralCategory/OrdinalCategory are compiled separately from
		// CLDR's plurals.xml rule grammar into a Go switch statement;
		// see table_en.go/table_ru.go/table_ar.go for hand-written
		// examples of the three rule shapes CLDR actually uses.
	})
}
`

func main() {
	flag.StringVar(&localeCode, "locale", "", "BCP-47 locale code to generate, e.g. en or de-DE")
	flag.StringVar(&cldrPath, "cldr", "", "path to an extracted CLDR JSON release")
	flag.StringVar(&outputPath, "out", "", "output .go path")
	flag.Parse()

	if localeCode == "" || cldrPath == "" || outputPath == "" {
		log.Fatalf("must specify -locale, -cldr and -out")
	}

	log.Printf("this is a template only: wire a real CLDR JSON reader for %s before running", cldrPath)

	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("create %s: %v", outputPath, err)
	}
	defer f.Close()

	tmpl := template.Must(template.New("table").Parse(tableTemplate))
	if err := tmpl.Execute(f, struct{ Code string }{Code: localeCode}); err != nil {
		log.Fatalf("execute template: %v", err)
	}
}
