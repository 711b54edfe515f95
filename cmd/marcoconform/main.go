// Command marcoconform runs a CommonMark spec.json-shaped fixture suite
// against the engine and reports pass/fail counts per section. The repo
// ships the runner, not the fixture data (§6: "the tests are external
// collaborators that drive the core").
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/jcorbin/marco/markdown"
)

// testCase mirrors one entry of the CommonMark spec.json fixture array.
type testCase struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
	Example  int    `json:"example"`
	Section  string `json:"section"`
}

func main() {
	var (
		path    string
		verbose bool
	)
	flag.StringVar(&path, "fixtures", "spec_tests.json", "path to a spec.json-shaped fixture file")
	flag.BoolVar(&verbose, "v", false, "print every failing case")
	flag.Parse()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	var cases []testCase
	if err := json.Unmarshal(data, &cases); err != nil {
		log.Fatal(err)
	}

	o := markdown.Default()
	bySection := make(map[string][2]int) // [pass, total]
	var failed int

	for _, tc := range cases {
		got, _ := markdown.ParseToHTML(tc.Markdown, o)
		counts := bySection[tc.Section]
		counts[1]++
		if normalizeHTML(got) == normalizeHTML(tc.HTML) {
			counts[0]++
		} else {
			failed++
			if verbose {
				fmt.Printf("FAIL example %d (%s)\ninput: %q\nwant:  %q\ngot:   %q\n\n",
					tc.Example, tc.Section, tc.Markdown, tc.HTML, got)
			}
		}
		bySection[tc.Section] = counts
	}

	for _, section := range sortedKeys(bySection) {
		counts := bySection[section]
		fmt.Printf("%-30s %d/%d\n", section, counts[0], counts[1])
	}
	fmt.Printf("total: %d/%d\n", len(cases)-failed, len(cases))

	if failed > 0 {
		os.Exit(1)
	}
}

// normalizeHTML applies the suite's documented whitespace normalization:
// collapse runs of whitespace between tags, trim leading/trailing space.
var tagWhitespace = regexp.MustCompile(`>\s+<`)

func normalizeHTML(s string) string {
	s = tagWhitespace.ReplaceAllString(s, "><")
	return strings.TrimSpace(s)
}

func sortedKeys(m map[string][2]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
