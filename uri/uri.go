package uri

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/aeronuri/internal/errorutil"
	"github.com/ghettovoice/aeronuri/internal/ioutil"
	"github.com/ghettovoice/aeronuri/internal/util"
)

// Scheme is the scheme of every Aeron channel URI.
const Scheme = "aeron"

const prefix = Scheme + ":"

// URI is a parsed Aeron channel URI.
//
// URI is immutable. Use [Parse], [New] or [Builder] to create one.
type URI struct {
	media  string
	params Values
}

// New creates a URI from the given components without any validation.
// The params map is copied. Use [URI.Validate] to check that the result renders to
// a string that parses back to the same URI.
func New(media string, params Values) *URI {
	return &URI{media: media, params: params.Clone()}
}

// Scheme returns the URI scheme, always "aeron".
func (*URI) Scheme() string { return Scheme }

// Media returns the media over which the channel operates, typically "udp" or "ipc".
func (u *URI) Media() string {
	if u == nil {
		return ""
	}
	return u.media
}

// IsUDP reports whether the media is "udp".
func (u *URI) IsUDP() bool { return u.Media() == MediaUDP }

// IsIPC reports whether the media is "ipc".
func (u *URI) IsIPC() bool { return u.Media() == MediaIPC }

// Get returns the value of the parameter with the given key.
// The ok result is false when the key is absent.
func (u *URI) Get(key string) (value string, ok bool) {
	if u == nil {
		return "", false
	}
	return u.params.Get(key)
}

// GetOr returns the value of the parameter with the given key or def when the key is absent.
func (u *URI) GetOr(key, def string) string {
	if v, ok := u.Get(key); ok {
		return v
	}
	return def
}

// Has reports whether the URI contains a parameter with the given key.
func (u *URI) Has(key string) bool {
	return u != nil && u.params.Has(key)
}

// Len returns the number of parameters.
func (u *URI) Len() int {
	if u == nil {
		return 0
	}
	return len(u.params)
}

// Params returns a copy of the URI parameters.
func (u *URI) Params() Values {
	if u == nil {
		return nil
	}
	return u.params.Clone()
}

// All iterates over the parameters in ascending key order.
func (u *URI) All() iter.Seq2[string, string] {
	if u == nil {
		return func(func(string, string) bool) {}
	}
	return u.params.All()
}

// RenderTo writes the canonical form of the URI to w.
func (u *URI) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteStrings(prefix, u.media)
	sep := "?"
	for k, v := range u.params.All() {
		cw.WriteStrings(sep, k, "=", v)
		sep = "|"
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the canonical form of the URI.
// Parameters are rendered in ascending key order.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// LogValue implements [slog.LogValuer].
func (u *URI) LogValue() slog.Value {
	return slog.StringValue(u.String())
}

// Equal compares this URI with another for equality.
// URIs are equal when media and parameters match exactly, parameter order is irrelevant.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.media == other.media && u.params.Equal(other.params)
}

// Validate checks that the URI renders to a string which parses back to the same URI.
// Media must not contain ':' or '?', keys must not contain '=' and values must not contain '|'.
// All problems are reported, each matching [ErrInvalidComponent].
func (u *URI) Validate() error {
	if u == nil {
		return errtrace.Wrap(newInvalidComponentErr("nil URI"))
	}

	var errs []error
	if i := strings.IndexAny(u.media, ":?"); i >= 0 {
		errs = append(errs, newComponentErr("media", u.media, "contains %q", u.media[i]))
	}
	for k, v := range u.params.All() {
		if strings.Contains(k, "=") {
			errs = append(errs, newComponentErr("key", k, "contains '='"))
		}
		if strings.Contains(v, "|") {
			errs = append(errs, newComponentErr("params["+k+"]", v, "contains '|'"))
		}
	}
	return errtrace.Wrap(errorutil.JoinPrefix("invalid aeron URI:", errs...))
}

// IsValid reports whether [URI.Validate] returns no error.
func (u *URI) IsValid() bool { return u.Validate() == nil }

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
