package uri

//go:generate go tool errtrace -w .

import (
	"context"
	"strings"
	"sync"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"
)

type lexState uint8

const (
	lexMedia lexState = iota
	lexParamKey
	lexParamValue
)

func (s lexState) String() string {
	switch s {
	case lexMedia:
		return "media"
	case lexParamKey:
		return "param key"
	case lexParamValue:
		return "param value"
	default:
		return "unknown"
	}
}

// stops returns the bytes that fire a trigger in the state.
// Any other byte belongs to the current token.
func (s lexState) stops() string {
	switch s {
	case lexMedia:
		return "?:"
	case lexParamKey:
		return "="
	case lexParamValue:
		return "|"
	default:
		return ""
	}
}

type lexTrigger uint8

const (
	trgQuery  lexTrigger = iota // '?'
	trgColon                    // ':'
	trgAssign                   // '='
	trgSep                      // '|'
	trgEOF
)

func triggerOf(c byte) lexTrigger {
	switch c {
	case '?':
		return trgQuery
	case ':':
		return trgColon
	case '=':
		return trgAssign
	default:
		return trgSep
	}
}

// Parse parses an Aeron channel URI from the given input s (string or []byte).
//
// The input must start with "aeron:". On failure the returned error is a [*ParseError]
// matching [ErrMalformedURI] and no URI is returned.
func Parse[T ~string | ~[]byte](s T) (*URI, error) {
	input := string(s)
	if !strings.HasPrefix(input, prefix) {
		return nil, errtrace.Wrap(&ParseError{Input: input, Reason: reasonBadPrefix})
	}

	l := lexerPool.Get().(*lexer) //nolint:forcetypeassert
	defer l.free()

	l.reset(input)
	for l.pos < len(input) {
		i := strings.IndexAny(input[l.pos:], l.state.stops())
		if i < 0 {
			l.pos = len(input)
			break
		}
		l.pos += i
		if err := l.fsm.Fire(triggerOf(input[l.pos])); err != nil {
			return nil, errtrace.Wrap(err)
		}
		l.pos++
		l.start = l.pos
	}
	if err := l.fsm.Fire(trgEOF); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &URI{media: l.media, params: l.params}, nil
}

var lexerPool = sync.Pool{
	New: func() any { return newLexer() },
}

// lexer holds the state of a single Parse call.
// Runs of ordinary bytes are skipped in one step, only stop bytes and the end of input
// fire a trigger. The current token is input[start:pos].
type lexer struct {
	fsm   *stateless.StateMachine
	state lexState

	input      string
	start, pos int

	media  string
	key    string
	params Values
}

func newLexer() *lexer {
	l := new(lexer)

	l.fsm = stateless.NewStateMachineWithExternalStorage(
		func(context.Context) (stateless.State, error) { return l.state, nil },
		func(_ context.Context, st stateless.State) error {
			l.state = st.(lexState) //nolint:forcetypeassert
			return nil
		},
		stateless.FiringImmediate,
	)
	l.fsm.OnUnhandledTrigger(l.onUnhandled)

	// ':' is not configured for the media state and therefore fails.
	l.fsm.Configure(lexMedia).
		InternalTransition(trgEOF, l.actCommitMedia).
		Permit(trgQuery, lexParamKey).
		OnExit(l.actCommitMedia)

	// EOF is not configured for the key state and therefore fails.
	l.fsm.Configure(lexParamKey).
		Permit(trgAssign, lexParamValue).
		OnExit(l.actCommitKey)

	l.fsm.Configure(lexParamValue).
		InternalTransition(trgEOF, l.actCommitParam).
		Permit(trgSep, lexParamKey).
		OnExit(l.actCommitParam)

	return l
}

func (l *lexer) reset(input string) {
	l.state = lexMedia
	l.input = input
	l.start = len(prefix)
	l.pos = len(prefix)
	l.media, l.key, l.params = "", "", nil
}

func (l *lexer) free() {
	l.reset("")
	lexerPool.Put(l)
}

func (l *lexer) token() string { return l.input[l.start:l.pos] }

func (l *lexer) actCommitMedia(context.Context, ...any) error {
	l.media = l.token()
	return nil
}

func (l *lexer) actCommitKey(context.Context, ...any) error {
	l.key = l.token()
	return nil
}

func (l *lexer) actCommitParam(context.Context, ...any) error {
	if l.params == nil {
		l.params = make(Values)
	}
	l.params[l.key] = l.token()
	return nil
}

func (l *lexer) onUnhandled(_ context.Context, state stateless.State, trigger stateless.Trigger, _ []string) error {
	st, _ := state.(lexState)
	reason := "unexpected character"
	switch {
	case st == lexMedia && trigger == trgColon:
		reason = reasonMediaColon
	case st == lexParamKey && trigger == trgEOF:
		reason = reasonUnterminatedKey
	}
	return &ParseError{ //errtrace:skip
		Input:  l.input,
		Pos:    l.pos,
		State:  st.String(),
		Reason: reason,
	}
}
