package main

import (
	"errors"
	"fmt"
	"os"

	"domainenum/internal/args"
	"domainenum/internal/extract"
	"domainenum/internal/logging"
	"domainenum/internal/lookup"
	"domainenum/internal/report"
)

const version = "1.2.0"

func main() {
	cfg, action, err := args.Parse(os.Args[1:])
	if err != nil {
		var perr *args.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintln(os.Stderr, perr.Msg)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		fmt.Fprint(os.Stderr, args.Usage)
		// Historical behavior: input errors exit 0, same as success.
		os.Exit(0)
	}

	switch action {
	case args.ActionHelp:
		fmt.Print(args.Usage)
		return
	case args.ActionVersion:
		fmt.Printf("domainenum %s\n", version)
		return
	}

	collaborators := report.Collaborators{
		Resolver: lookup.NewDNSClient(),
		Whois:    lookup.WhoisQuery,
		HTTPHead: lookup.HTTPHead,
		HTTPBody: lookup.HTTPBody,
		CertText: lookup.FetchCertificateText,
	}

	if err := report.Run(os.Stdout, *cfg, collaborators); err != nil {
		if errors.Is(err, extract.ErrSOAOverflow) {
			logging.Error.Printf("fatal: %v", err)
			os.Exit(1)
		}
		logging.Error.Print(err)
		os.Exit(1)
	}
}
