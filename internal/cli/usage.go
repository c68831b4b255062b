// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"genblast2gff/internal/version"
)

// SetUsage installs the sectioned Usage() handler on fs.
func SetUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – convert genblastA reports to GFF3\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  %s [flags] <report.txt|-> [out.gff]\n", name)

		fmt.Fprintln(out, "\nFilters:")
		fmt.Fprintf(out, "  -I, --min-perc-identity float  Minimum average %% identity to accept [%s]\n", def("min-perc-identity"))
		fmt.Fprintf(out, "  -C, --min-perc-coverage float  Minimum coverage of the query sequence [%s]\n", def("min-perc-coverage"))
		fmt.Fprintf(out, "  -L, --min-match-length int     Shortest match length to accept [%s]\n", def("min-match-length"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string            Output format: gff | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header                Suppress the ##gff-version 3 header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-match-exit-code int   Exit code when no feature passes the filters [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                    Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version                  Print version and exit")
		fmt.Fprintln(out, "  -h, --help                     Show this help and exit")

		fmt.Fprintln(out, "\nEnvironment:")
		fmt.Fprintln(out, "  LOG_CONFIG                     Path of a JSON logging config {level, format, report_timestamp}")
	}
}
