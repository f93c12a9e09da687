package uri

import (
	"strconv"

	"braces.dev/errtrace"
)

// Builder assembles a URI from components.
// The zero value is ready to use. Setters overwrite previously set values.
type Builder struct {
	media  string
	params Values
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Reset clears all components.
func (b *Builder) Reset() *Builder {
	b.media = ""
	b.params = nil
	return b
}

// Media sets the media, typically [MediaUDP] or [MediaIPC].
func (b *Builder) Media(media string) *Builder {
	b.media = media
	return b
}

// Param sets a parameter.
func (b *Builder) Param(key, value string) *Builder {
	if b.params == nil {
		b.params = make(Values)
	}
	b.params.Set(key, value)
	return b
}

// Endpoint sets the "endpoint" parameter, e.g. "224.10.9.8:4567".
func (b *Builder) Endpoint(addr string) *Builder { return b.Param(ParamEndpoint, addr) }

// Interface sets the "interface" parameter, e.g. "192.168.0.3" or "192.168.0.0/24".
func (b *Builder) Interface(addr string) *Builder { return b.Param(ParamInterface, addr) }

// Control sets the "control" parameter used by multi-destination-cast publications.
func (b *Builder) Control(addr string) *Builder { return b.Param(ParamControl, addr) }

// ControlMode sets the "control-mode" parameter, see [ControlModeManual] and [ControlModeDynamic].
func (b *Builder) ControlMode(mode string) *Builder { return b.Param(ParamControlMode, mode) }

// TTL sets the multicast "ttl" parameter.
func (b *Builder) TTL(ttl int) *Builder { return b.Param(ParamTTL, strconv.Itoa(ttl)) }

// MTU sets the "mtu" parameter in bytes.
func (b *Builder) MTU(mtu int) *Builder { return b.Param(ParamMTU, strconv.Itoa(mtu)) }

// TermLength sets the "term-length" parameter in bytes.
func (b *Builder) TermLength(n int) *Builder { return b.Param(ParamTermLength, strconv.Itoa(n)) }

// Reliable sets the "reliable" parameter.
func (b *Builder) Reliable(reliable bool) *Builder {
	return b.Param(ParamReliable, strconv.FormatBool(reliable))
}

// SessionID sets the "session-id" parameter.
func (b *Builder) SessionID(id int32) *Builder {
	return b.Param(ParamSessionID, strconv.FormatInt(int64(id), 10))
}

// Tags sets the "tags" parameter, a comma separated list of tag ids.
func (b *Builder) Tags(tags string) *Builder { return b.Param(ParamTags, tags) }

// Alias sets the "alias" parameter.
func (b *Builder) Alias(alias string) *Builder { return b.Param(ParamAlias, alias) }

// Build validates the components and returns the URI.
// The returned error matches [ErrInvalidComponent] for every rejected component.
func (b *Builder) Build() (*URI, error) {
	u := New(b.media, b.params)
	if err := u.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u, nil
}
