// aeronuri - Aeron channel URI inspection tool
//
// Usage:
//
//	aeronuri [flags] uri...
//
// For every URI prints the canonical form, the media and the parameters.
// With -resolve also resolves the endpoint, interface and control addresses of udp channels.
//
// Flags:
//
//	-json          print one JSON object per URI
//	-resolve       resolve address parameters
//	-ns addr       query this DNS server instead of the system resolver
//	-timeout dur   resolution timeout (default 5s)
//	-dev           use the developer log handler
//	-v             enable debug logs
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/netip"
	"os"
	"os/signal"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/aeronuri/channel"
	"github.com/ghettovoice/aeronuri/dns"
	"github.com/ghettovoice/aeronuri/internal/errorutil"
	"github.com/ghettovoice/aeronuri/internal/log"
	"github.com/ghettovoice/aeronuri/uri"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	json    bool
	resolve bool
	ns      string
	timeout time.Duration
	dev     bool
	verbose bool
}

type report struct {
	URI    *uri.URI                    `json:"uri"`
	Media  string                      `json:"media"`
	Params uri.Values                  `json:"params,omitempty"`
	Addrs  map[string][]netip.AddrPort `json:"addrs,omitempty"`
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options

	fs := flag.NewFlagSet("aeronuri", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.json, "json", false, "print one JSON object per URI")
	fs.BoolVar(&opts.resolve, "resolve", false, "resolve address parameters")
	fs.StringVar(&opts.ns, "ns", "", "query this DNS server instead of the system resolver")
	fs.DurationVar(&opts.timeout, "timeout", 5*time.Second, "resolution timeout")
	fs.BoolVar(&opts.dev, "dev", false, "use the developer log handler")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logs")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: aeronuri [flags] uri...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	lvl := slog.LevelInfo
	if opts.verbose {
		lvl = slog.LevelDebug
	}
	logger := log.New(stderr, lvl)
	if opts.dev {
		logger = log.NewDev(stderr, lvl)
	}

	rslvr := &channel.Resolver{
		DNS: &dns.Resolver{NameServer: opts.ns, Timeout: opts.timeout},
		Log: logger,
	}

	code := 0
	enc := json.NewEncoder(stdout)
	for _, arg := range fs.Args() {
		rep, err := inspect(ctx, arg, &opts, rslvr)
		if err != nil {
			msg := "failed to inspect channel URI"
			if errorutil.IsGrammarErr(err) {
				msg = "malformed channel URI"
			}
			logger.LogAttrs(ctx, slog.LevelError, msg,
				slog.String("input", arg),
				slog.Any("error", err),
			)
			code = 1
			continue
		}

		logger.LogAttrs(ctx, slog.LevelDebug, "channel URI parsed",
			slog.Any("uri", rep.URI),
			slog.Any("params", log.FmtValue(rep.Params, false)),
		)

		if opts.json {
			if err := enc.Encode(rep); err != nil {
				logger.LogAttrs(ctx, slog.LevelError, "failed to write report", slog.Any("error", err))
				return 1
			}
			continue
		}
		writeText(stdout, rep)
	}
	return code
}

func inspect(ctx context.Context, input string, opts *options, rslvr *channel.Resolver) (*report, error) {
	u, err := uri.Parse(input)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	rep := &report{URI: u, Media: u.Media(), Params: u.Params()}
	if !opts.resolve {
		return rep, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	addrs, err := rslvr.Resolve(ctx, u)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if len(addrs) > 0 {
		rep.Addrs = addrs
	}
	return rep, nil
}

func writeText(w io.Writer, rep *report) {
	fmt.Fprintln(w, rep.URI.String())
	fmt.Fprintf(w, "  media: %s\n", rep.Media)
	for k, v := range rep.Params.All() {
		fmt.Fprintf(w, "  %s: %s\n", k, v)
	}
	for _, k := range channel.AddrParams {
		for _, ap := range rep.Addrs[k] {
			fmt.Fprintf(w, "  resolved %s: %s\n", k, ap)
		}
	}
}
