package uri_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/aeronuri/uri"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		build   func(b *uri.Builder) *uri.Builder
		want    string
		wantErr error
	}{
		{"zero", func(b *uri.Builder) *uri.Builder { return b }, "aeron:", nil},
		{"ipc", func(b *uri.Builder) *uri.Builder { return b.Media(uri.MediaIPC) }, "aeron:ipc", nil},
		{
			"udp unicast",
			func(b *uri.Builder) *uri.Builder {
				return b.Media(uri.MediaUDP).
					Endpoint("localhost:40123").
					MTU(1408).
					TermLength(64 * 1024).
					Reliable(false)
			},
			"aeron:udp?endpoint=localhost:40123|mtu=1408|reliable=false|term-length=65536",
			nil,
		},
		{
			"udp multicast",
			func(b *uri.Builder) *uri.Builder {
				return b.Media(uri.MediaUDP).
					Endpoint("224.10.9.8:4567").
					Interface("192.168.0.0/24").
					TTL(16).
					SessionID(-7).
					Tags("1,2").
					Alias("md")
			},
			"aeron:udp?alias=md|endpoint=224.10.9.8:4567|interface=192.168.0.0/24|session-id=-7|tags=1,2|ttl=16",
			nil,
		},
		{
			"mdc control",
			func(b *uri.Builder) *uri.Builder {
				return b.Media(uri.MediaUDP).
					Control("192.168.0.1:40456").
					ControlMode(uri.ControlModeDynamic)
			},
			"aeron:udp?control=192.168.0.1:40456|control-mode=dynamic",
			nil,
		},
		{
			"overwrite",
			func(b *uri.Builder) *uri.Builder { return b.Media("udp").TTL(1).TTL(2) },
			"aeron:udp?ttl=2",
			nil,
		},
		{
			"invalid media",
			func(b *uri.Builder) *uri.Builder { return b.Media("udp:x") },
			"",
			uri.ErrInvalidComponent,
		},
		{
			"invalid value",
			func(b *uri.Builder) *uri.Builder { return b.Media("udp").Tags("1|2") },
			"",
			uri.ErrInvalidComponent,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := c.build(uri.NewBuilder()).Build()
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Errorf("b.Build() error = %v, want %v", err, c.wantErr)
				}
				if u != nil {
					t.Errorf("b.Build() = %v, want nil", u)
				}
				return
			}
			if err != nil {
				t.Fatalf("b.Build() error = %v, want nil", err)
			}
			if got := u.String(); got != c.want {
				t.Errorf("b.Build().String() = %q, want %q", got, c.want)
			}

			u2, err := uri.Parse(u.String())
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", u, err)
			}
			if !u2.Equal(u) {
				t.Errorf("uri.Parse(%q) = %v, want %v", u, u2, u)
			}
		})
	}
}

func TestBuilder_Reset(t *testing.T) {
	t.Parallel()

	b := uri.NewBuilder().Media("udp").TTL(4)
	first, err := b.Build()
	if err != nil {
		t.Fatalf("b.Build() error = %v, want nil", err)
	}

	second, err := b.Reset().Media("ipc").Build()
	if err != nil {
		t.Fatalf("b.Build() error = %v, want nil", err)
	}
	if got, want := second.String(), "aeron:ipc"; got != want {
		t.Errorf("second.String() = %q, want %q", got, want)
	}
	if got, want := first.String(), "aeron:udp?ttl=4"; got != want {
		t.Errorf("first.String() = %q, want %q", got, want)
	}
}
