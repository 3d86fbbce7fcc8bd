// Package args turns the raw command line into an immutable RunConfig.
//
// The grammar is two-phase: the first token is either a global flag
// (help/version) or the target domain, and everything after the domain is a
// restricted flag phase that only accepts the nameserver flag. Parsing is a
// small state machine over the token list; no flag library owns the exit
// behavior here because the historical error codes are part of the contract.
package args

import (
	"fmt"
	"strings"

	"domainenum/internal/validate"
)

// DefaultNameServer is used for address and www lookups when no -n flag is
// given.
const DefaultNameServer = "8.8.8.8"

// RunConfig is the validated result of argument parsing. It is constructed
// once and passed by value; nothing mutates it afterwards.
type RunConfig struct {
	Domain     string
	NameServer string
}

// Action tells main what to do when parsing succeeds without producing a
// RunConfig.
type Action int

const (
	ActionRun Action = iota
	ActionHelp
	ActionVersion
)

// Code classifies user-input errors.
type Code int

const (
	NoDomain Code = iota
	TooManyArgs
	BadDomain
	BadInput
	BadFlagPosition
	UnknownFlag
	NoNameserver
	BadIP
)

// ParseError carries the error category alongside the user-facing message.
type ParseError struct {
	Code Code
	Msg  string
}

func (e *ParseError) Error() string { return e.Msg }

func errf(code Code, format string, a ...any) error {
	return &ParseError{Code: code, Msg: fmt.Sprintf(format, a...)}
}

// Usage is the help text printed on -h and after every input error.
const Usage = `Usage:
  domainenum <domain> [-n|--nameserver <ipv4-or-ipv6>]
  domainenum -h|--help
  domainenum -v|--version

Options:
  -n, --nameserver  resolver address used for address and www lookups
  -h, --help        show this help
  -v, --version     show version
`

type state int

const (
	stateStart state = iota
	stateAfterDomain
	stateExpectNSValue
	stateDone
)

// Parse validates argv (without the program name) and returns either a
// RunConfig, or an Action for help/version, or a ParseError.
func Parse(argv []string) (*RunConfig, Action, error) {
	if len(argv) == 0 {
		return nil, ActionRun, errf(NoDomain, "missing target domain")
	}
	if len(argv) > 3 {
		return nil, ActionRun, errf(TooManyArgs, "too many arguments: %s", strings.Join(argv, " "))
	}

	cfg := &RunConfig{NameServer: DefaultNameServer}
	st := stateStart

	for i := 0; i < len(argv); i++ {
		tok := argv[i]

		switch st {
		case stateStart:
			switch tok {
			case "-h", "--help":
				return nil, ActionHelp, nil
			case "-v", "--version":
				return nil, ActionVersion, nil
			case "-n", "--nameserver":
				// A nameserver before any domain leaves nothing to resolve.
				return nil, ActionRun, errf(NoDomain, "missing target domain")
			}
			if !validate.IsDomain(tok) || validate.IsIP(tok) {
				return nil, ActionRun, errf(BadDomain, "not a valid domain name: %s", tok)
			}
			cfg.Domain = strings.ToLower(tok)
			st = stateAfterDomain

		case stateAfterDomain:
			if !strings.HasPrefix(tok, "-") {
				return nil, ActionRun, errf(BadInput, "unexpected argument after domain: %s", tok)
			}
			switch tok {
			case "-n", "--nameserver":
				st = stateExpectNSValue
			case "-h", "--help", "-v", "--version":
				return nil, ActionRun, errf(BadFlagPosition, "%s must be the first argument", tok)
			default:
				return nil, ActionRun, errf(UnknownFlag, "unknown flag: %s", tok)
			}

		case stateExpectNSValue:
			if !validate.IsIP(tok) {
				return nil, ActionRun, errf(BadIP, "not a valid IPv4/IPv6 address: %s", tok)
			}
			cfg.NameServer = tok
			st = stateDone

		case stateDone:
			return nil, ActionRun, errf(TooManyArgs, "too many arguments: %s", strings.Join(argv, " "))
		}
	}

	if st == stateExpectNSValue {
		return nil, ActionRun, errf(NoNameserver, "missing nameserver value after -n/--nameserver")
	}
	return cfg, ActionRun, nil
}
