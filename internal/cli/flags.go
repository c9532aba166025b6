package cli

import "flag"

type Flags struct {
	// Inspect prints the CGI environment report instead of answering
	// a request. Meant for a developer shell, not a CGI host.
	Inspect bool
}

func ParseFlags() *Flags {
	var inspect bool

	flag.BoolVar(&inspect, "inspect", false, "Print the CGI variables visible to this process and exit")
	flag.Parse()

	return &Flags{Inspect: inspect}
}
