package dns_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/miekg/dns"
	"go.uber.org/goleak"

	aerondns "github.com/ghettovoice/aeronuri/dns"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var zone = map[string][]string{
	"media.example.": {
		"media.example. 60 IN A 10.0.0.1",
		"media.example. 60 IN A 10.0.0.2",
		"media.example. 60 IN AAAA fd00::1",
	},
	"v4only.example.": {
		"v4only.example. 60 IN A 10.0.0.3",
	},
	"empty.example.": {},
}

func startServer(tb testing.TB) string {
	tb.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("net.ListenPacket() error = %v, want nil", err)
	}

	srv := &dns.Server{
		PacketConn: pc,
		Handler: dns.HandlerFunc(func(w dns.ResponseWriter, req *dns.Msg) {
			m := new(dns.Msg)
			m.SetReply(req)

			q := req.Question[0]
			recs, ok := zone[q.Name]
			if !ok {
				m.SetRcode(req, dns.RcodeNameError)
			}
			for _, rec := range recs {
				rr, err := dns.NewRR(rec)
				if err != nil {
					panic(err)
				}
				if rr.Header().Rrtype == q.Qtype {
					m.Answer = append(m.Answer, rr)
				}
			}
			w.WriteMsg(m) //nolint:errcheck
		}),
	}

	started := make(chan struct{})
	srv.NotifyStartedFunc = func() { close(started) }
	go srv.ActivateAndServe() //nolint:errcheck
	<-started

	tb.Cleanup(func() { srv.Shutdown() }) //nolint:errcheck

	return pc.LocalAddr().String()
}

func TestResolver_LookupIP_NameServer(t *testing.T) {
	t.Parallel()

	r := &aerondns.Resolver{NameServer: startServer(t), Timeout: 2 * time.Second}

	cases := []struct {
		name         string
		network      string
		host         string
		want         []string
		wantNotFound bool
	}{
		{"ip", "ip", "media.example", []string{"10.0.0.1", "10.0.0.2", "fd00::1"}, false},
		{"ip4", "ip4", "media.example", []string{"10.0.0.1", "10.0.0.2"}, false},
		{"ip6", "ip6", "media.example.", []string{"fd00::1"}, false},
		{"ip6 without records", "ip6", "v4only.example", nil, true},
		{"no answers", "ip", "empty.example", nil, true},
		{"nxdomain", "ip", "missing.example", nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ips, err := r.LookupIP(context.Background(), c.network, c.host)
			if c.wantNotFound {
				var dnsErr *net.DNSError
				if !errors.As(err, &dnsErr) || !dnsErr.IsNotFound {
					t.Fatalf("r.LookupIP(ctx, %q, %q) error = %v, want not found", c.network, c.host, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("r.LookupIP(ctx, %q, %q) error = %v, want nil", c.network, c.host, err)
			}

			got := make([]string, len(ips))
			for i, ip := range ips {
				got[i] = ip.String()
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("r.LookupIP(ctx, %q, %q) = %v, want %v\ndiff (-got +want):\n%v", c.network, c.host, got, c.want, diff)
			}
			for _, ip := range ips {
				if ip.To4() != nil && len(ip) != net.IPv4len {
					t.Errorf("r.LookupIP() returned %d-byte IPv4 address %v", len(ip), ip)
				}
			}
		})
	}
}

func TestResolver_LookupIP_UnknownNetwork(t *testing.T) {
	t.Parallel()

	r := &aerondns.Resolver{NameServer: "127.0.0.1:1"}
	_, err := r.LookupIP(context.Background(), "udp", "media.example")
	var netErr net.UnknownNetworkError
	if !errors.As(err, &netErr) {
		t.Errorf("r.LookupIP(ctx, \"udp\", host) error = %v, want net.UnknownNetworkError", err)
	}
}

func TestResolver_LookupIP_System(t *testing.T) {
	t.Parallel()

	ips, err := aerondns.DefaultResolver().LookupIP(context.Background(), "ip4", "127.0.0.1")
	if err != nil {
		t.Fatalf("r.LookupIP(ctx, \"ip4\", \"127.0.0.1\") error = %v, want nil", err)
	}
	if len(ips) != 1 || !ips[0].Equal(net.IPv4(127, 0, 0, 1)) || len(ips[0]) != net.IPv4len {
		t.Errorf("r.LookupIP(ctx, \"ip4\", \"127.0.0.1\") = %v, want [127.0.0.1]", ips)
	}

	ips, err = aerondns.LookupIP(context.Background(), "::1")
	if err != nil {
		t.Fatalf("dns.LookupIP(ctx, \"::1\") error = %v, want nil", err)
	}
	if len(ips) != 1 || !ips[0].Equal(net.IPv6loopback) {
		t.Errorf("dns.LookupIP(ctx, \"::1\") = %v, want [::1]", ips)
	}
}
