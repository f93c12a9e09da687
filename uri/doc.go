// Package uri parses and renders Aeron channel URIs.
//
// # Format
//
// An Aeron channel URI names the media a publication or subscription runs over and
// carries a flat list of key/value parameters:
//
//	aeron-uri = "aeron:" media [ "?" param *( "|" param ) ]
//	media     = *( any-char-except "?" or ":" )
//	param     = key "=" value
//	key       = *( any-char-except "=" )
//	value     = *( any-char-except "|" )
//
// For example:
//
//	aeron:ipc
//	aeron:udp?endpoint=224.10.9.8:4567|interface=192.168.0.3|ttl=16
//
// Separators are always structural and cannot be escaped. No percent-decoding is done,
// keys and values are raw slices of the input. The "|" separator only ends a value, so
// inside a key it is an ordinary character: "aeron:udp?add|ress=x" has the single key "add|ress".
// When a key repeats, the last value wins.
//
// # Parsing
//
// [Parse] accepts a string or a byte slice and returns an immutable [*URI]:
//
//	u, err := uri.Parse("aeron:udp?endpoint=224.10.9.8:4567")
//	if err != nil {
//	    // errors.Is(err, uri.ErrMalformedURI) == true
//	    // errors.As(err, new(*uri.ParseError)) == true
//	}
//	u.Media()                          // "udp"
//	u.Get("endpoint")                  // "224.10.9.8:4567", true
//	u.GetOr("interface", "0.0.0.0")    // "0.0.0.0"
//
// # Construction
//
// [New] builds a URI from components without validation, [Builder] builds one with
// lexical validation of every component:
//
//	u, err := uri.NewBuilder().
//	    Media(uri.MediaUDP).
//	    Endpoint("224.10.9.8:4567").
//	    TTL(16).
//	    Build()
//
// # Rendering
//
// [URI.String] renders the canonical form. Parameters are written in ascending key order,
// so rendering is stable and Parse(u.String()) is equal to u for every URI built from
// well-formed components.
//
// # Thread Safety
//
// A URI has no mutation methods and is safe for concurrent use once constructed.
// [Values] and [Builder] are plain mutable values and are not.
package uri
