// Package channel resolves the socket addresses named by Aeron channel URIs.
//
// A "udp" channel carries its addresses in the "endpoint", "interface" and "control"
// parameters as host:port pairs. [Resolver] turns them into [netip.AddrPort] values,
// looking host names up through a [DNSResolver]. An "interface" value may omit the port
// and may carry a "/bits" subnet suffix, which is dropped.
package channel

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=channelmock/dns_resolver.go -package=channelmock . DNSResolver

import (
	"context"
	"log/slog"
	"net"
	"net/netip"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/aeronuri/dns"
	"github.com/ghettovoice/aeronuri/internal/errorutil"
	"github.com/ghettovoice/aeronuri/internal/log"
	"github.com/ghettovoice/aeronuri/uri"
)

// Error represents a channel error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrUnsupportedMedia is returned when the channel media has no socket addresses.
	ErrUnsupportedMedia Error = "unsupported media"
	// ErrNoParam is returned when the requested address parameter is absent.
	ErrNoParam Error = "parameter not found"
	// ErrInvalidAddr is returned when an address parameter can not be split into host and port.
	ErrInvalidAddr Error = "invalid address"
)

// AddrParams lists the parameters holding socket addresses.
var AddrParams = []string{uri.ParamEndpoint, uri.ParamInterface, uri.ParamControl}

// DNSResolver is used to resolve host names of address parameters.
type DNSResolver interface {
	// LookupIP looks up the IP addresses for the given host.
	LookupIP(ctx context.Context, network, host string) ([]net.IP, error)
}

// Addrs maps an address parameter key to its resolved addresses.
type Addrs map[string][]netip.AddrPort

// First returns the first resolved address of the parameter.
func (a Addrs) First(key string) (netip.AddrPort, bool) {
	if aps := a[key]; len(aps) > 0 {
		return aps[0], true
	}
	return netip.AddrPort{}, false
}

// Resolver resolves address parameters of channel URIs.
// The zero value uses [dns.DefaultResolver] and discards logs.
// It is safe for concurrent use.
type Resolver struct {
	DNS DNSResolver
	Log *slog.Logger
}

// Resolve resolves every address parameter present in u.
// An "ipc" channel has no addresses and resolves to empty Addrs.
func (r *Resolver) Resolve(ctx context.Context, u *uri.URI) (Addrs, error) {
	addrs := make(Addrs)
	if u.IsIPC() {
		return addrs, nil
	}
	if !u.IsUDP() {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedMedia, "%q", u.Media()))
	}

	for _, key := range AddrParams {
		if !u.Has(key) {
			continue
		}
		aps, err := r.ResolveParam(ctx, u, key)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		addrs[key] = aps
	}
	return addrs, nil
}

// ResolveParam resolves the address held by the parameter key of a "udp" channel.
// Literal IP addresses are returned as is, host names are looked up.
// Duplicate addresses are dropped, the lookup order is kept.
func (r *Resolver) ResolveParam(ctx context.Context, u *uri.URI, key string) ([]netip.AddrPort, error) {
	if !u.IsUDP() {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedMedia, "%q", u.Media()))
	}
	val, ok := u.Get(key)
	if !ok {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNoParam, "%q", key))
	}

	host, port, err := splitAddr(key, val)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if addr, err := netip.ParseAddr(host); err == nil {
		return []netip.AddrPort{netip.AddrPortFrom(addr.Unmap(), port)}, nil
	}

	ips, err := r.dns().LookupIP(ctx, "ip", host)
	if err != nil {
		r.log().LogAttrs(ctx, slog.LevelWarn, "failed to resolve channel address",
			slog.Any("uri", u),
			slog.String("param", key),
			slog.Bool("timeout", errorutil.IsTimeoutErr(err)),
			slog.Any("error", err),
		)
		return nil, errtrace.Wrap(err)
	}

	aps := make([]netip.AddrPort, 0, len(ips))
	for _, ip := range ips {
		addr, ok := netip.AddrFromSlice(ip)
		if !ok {
			continue
		}
		ap := netip.AddrPortFrom(addr.Unmap(), port)
		if !slices.Contains(aps, ap) {
			aps = append(aps, ap)
		}
	}

	r.log().LogAttrs(ctx, slog.LevelDebug, "channel address resolved",
		slog.Any("uri", u),
		slog.String("param", key),
		slog.Any("ips", ips),
	)
	return aps, nil
}

func (r *Resolver) dns() DNSResolver {
	if r.DNS != nil {
		return r.DNS
	}
	return dns.DefaultResolver()
}

func (r *Resolver) log() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return log.Noop
}

// splitAddr splits an address parameter value into host and port.
// Only "interface" may omit the port and carry a subnet suffix.
func splitAddr(key, val string) (string, uint16, error) {
	isIface := key == uri.ParamInterface
	if isIface {
		if i := strings.LastIndexByte(val, '/'); i >= 0 {
			if bits, err := strconv.Atoi(val[i+1:]); err != nil || bits < 0 || bits > 128 {
				return "", 0, errtrace.Wrap(newInvalidAddrErr(key, val, "bad subnet prefix"))
			}
			val = val[:i]
		}
	}

	host, port, err := net.SplitHostPort(val)
	if err != nil {
		if !isIface {
			return "", 0, errtrace.Wrap(newInvalidAddrErr(key, val, err.Error()))
		}
		host, port = strings.TrimSuffix(strings.TrimPrefix(val, "["), "]"), "0"
	}
	if host == "" {
		return "", 0, errtrace.Wrap(newInvalidAddrErr(key, val, "empty host"))
	}

	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return "", 0, errtrace.Wrap(newInvalidAddrErr(key, val, "bad port"))
	}
	return host, uint16(p), nil
}

func newInvalidAddrErr(key, val, reason string) error {
	return errorutil.NewWrapperError(ErrInvalidAddr, "%s=%q: %s", key, val, reason) //errtrace:skip
}
