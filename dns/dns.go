// Package dns resolves host names of channel addresses.
package dns

//go:generate go tool errtrace -w .

import (
	"context"
	"net"
	"time"

	"braces.dev/errtrace"
	"github.com/miekg/dns"
)

// Resolver wraps net.Resolver with the ability to query a pinned name server.
type Resolver struct {
	net.Resolver

	// NameServer specifies the DNS server address (e.g., "8.8.8.8:53").
	// If set, queries are sent directly to it.
	NameServer string
	// Direct sends queries with the built-in DNS client even when NameServer is empty,
	// the first server from /etc/resolv.conf is used then.
	Direct bool
	// Timeout specifies the timeout for queries sent to NameServer.
	// If zero, defaults to 5 seconds.
	Timeout time.Duration
}

// LookupIP looks up the IP addresses of host.
// The network must be one of "ip", "ip4" or "ip6".
// IPv4 addresses are returned in their 4-byte form.
func (r *Resolver) LookupIP(ctx context.Context, network, host string) ([]net.IP, error) {
	var (
		ips []net.IP
		err error
	)
	if r.NameServer != "" || r.Direct {
		ips, err = r.exchangeIP(ctx, network, host)
	} else {
		ips, err = r.Resolver.LookupIP(ctx, network, host)
	}
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	for i, ip := range ips {
		if ip4 := ip.To4(); ip4 != nil {
			ips[i] = ip4
		}
	}
	return ips, nil
}

func (r *Resolver) exchangeIP(ctx context.Context, network, host string) ([]net.IP, error) {
	var qtypes []uint16
	switch network {
	case "ip":
		qtypes = []uint16{dns.TypeA, dns.TypeAAAA}
	case "ip4":
		qtypes = []uint16{dns.TypeA}
	case "ip6":
		qtypes = []uint16{dns.TypeAAAA}
	default:
		return nil, errtrace.Wrap(net.UnknownNetworkError(network))
	}

	nameserver, err := r.nameserver()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	client := &dns.Client{Timeout: r.timeout()}

	var ips []net.IP
	for _, qt := range qtypes {
		m := new(dns.Msg)
		m.SetQuestion(dns.Fqdn(host), qt)
		m.RecursionDesired = true

		resp, _, err := client.ExchangeContext(ctx, m, nameserver)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}

		if resp.Rcode != dns.RcodeSuccess {
			return nil, errtrace.Wrap(&net.DNSError{
				Err:        dns.RcodeToString[resp.Rcode],
				Name:       host,
				Server:     nameserver,
				IsNotFound: resp.Rcode == dns.RcodeNameError,
			})
		}

		for _, ans := range resp.Answer {
			switch rr := ans.(type) {
			case *dns.A:
				ips = append(ips, rr.A)
			case *dns.AAAA:
				ips = append(ips, rr.AAAA)
			}
		}
	}

	if len(ips) == 0 {
		return nil, errtrace.Wrap(&net.DNSError{
			Err:        "no such host",
			Name:       host,
			Server:     nameserver,
			IsNotFound: true,
		})
	}
	return ips, nil
}

func (r *Resolver) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return 5 * time.Second
}

func (r *Resolver) nameserver() (string, error) {
	if r.NameServer != "" {
		if _, _, err := net.SplitHostPort(r.NameServer); err != nil {
			return net.JoinHostPort(r.NameServer, "53"), nil //nolint:nilerr
		}
		return r.NameServer, nil
	}

	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if len(conf.Servers) == 0 {
		return "", errtrace.Wrap(&net.DNSError{
			Err:  "no DNS servers configured",
			Name: "resolv.conf",
		})
	}

	return net.JoinHostPort(conf.Servers[0], conf.Port), nil
}

var defResolver = &Resolver{}

func DefaultResolver() *Resolver { return defResolver }

func LookupIP(ctx context.Context, host string) ([]net.IP, error) {
	return errtrace.Wrap2(defResolver.LookupIP(ctx, "ip", host))
}
