// Package stream reassembles the tunnel's newline-delimited pseudo-JSON
// envelope into display text.
//
// The remote endpoint streams fragments that only concatenate to
// {"success": true, "response": "<content>"}; they are not valid incremental
// JSON, so the decoder below is a line-oriented state machine rather than a
// JSON tokenizer.
package stream

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode"

	"guestchat/backend/internal/textnorm"
)

// DefaultFlushInterval bounds how often the sink is invoked while streaming.
const DefaultFlushInterval = 50 * time.Millisecond

// State is the position of the decoder inside the envelope.
type State int

const (
	// StateAwaitingPrefix: the envelope header has not been seen yet.
	StateAwaitingPrefix State = iota
	// StateInContent: lines are fragments of the response string.
	StateInContent
	// StateDone: the closing token was seen. Stray lines after it are kept
	// as plain text on their own lines.
	StateDone
	// StateLiteral: the first line was not an envelope header, so every line
	// is taken as plain text.
	StateLiteral
)

func (s State) String() string {
	switch s {
	case StateAwaitingPrefix:
		return "awaiting_prefix"
	case StateInContent:
		return "in_content"
	case StateDone:
		return "done"
	case StateLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

const closingToken = `"}`

var envelopeHeader = regexp.MustCompile(`"success"\s*:\s*true\s*,\s*"response"\s*:\s*"`)

// Sink receives normalized text increments, in wire order. It is never called
// with an empty string.
type Sink func(text string)

// Option configures a Reassembler.
type Option func(*Reassembler)

// WithFlushInterval sets the minimum time between two sink invocations.
func WithFlushInterval(d time.Duration) Option {
	return func(r *Reassembler) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Reassembler) {
		if now != nil {
			r.now = now
		}
	}
}

// Reassembler holds the state of one in-flight bot response. It is owned by a
// single send and is not safe for concurrent use.
type Reassembler struct {
	sink     Sink
	interval time.Duration
	now      func() time.Time

	targetMessageID string
	state           State
	residual        string
	accumulated     strings.Builder
	pending         strings.Builder
	lastFlush       time.Time
	literalLines    int
	// held is a content line ending in `"}`. It closes the envelope only if
	// nothing but blank lines follows it.
	held    string
	holding bool
}

// New creates a Reassembler that reports increments to sink. A nil sink is
// allowed; the text is then only available from Finish.
func New(sink Sink, opts ...Option) *Reassembler {
	r := &Reassembler{
		sink:     sink,
		interval: DefaultFlushInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reset discards all state and starts a new streaming session for the given
// message.
func (r *Reassembler) Reset(targetMessageID string) {
	r.targetMessageID = targetMessageID
	r.state = StateAwaitingPrefix
	r.residual = ""
	r.accumulated.Reset()
	r.pending.Reset()
	r.lastFlush = time.Time{}
	r.literalLines = 0
	r.held = ""
	r.holding = false
}

// TargetMessageID is the message this session is filling.
func (r *Reassembler) TargetMessageID() string { return r.targetMessageID }

// State reports the decoder state.
func (r *Reassembler) State() State { return r.state }

// Accumulated returns everything extracted so far, before final normalization.
func (r *Reassembler) Accumulated() string { return r.accumulated.String() }

// Feed consumes raw text as delivered by the transport. Fragments need not be
// aligned to lines or escape sequences; incomplete trailing lines are kept
// until the next call.
func (r *Reassembler) Feed(raw string) {
	if raw == "" {
		return
	}
	r.residual += raw
	for {
		i := strings.IndexByte(r.residual, '\n')
		if i < 0 {
			break
		}
		line := r.residual[:i]
		r.residual = r.residual[i+1:]
		r.processLine(line)
	}
	r.flush(false)
}

// Finish processes the trailing partial line, flushes whatever is pending and
// returns the fully normalized response.
func (r *Reassembler) Finish() string {
	if r.residual != "" {
		line := r.residual
		r.residual = ""
		r.processLine(line)
	}
	if r.holding {
		r.emit(strings.TrimSuffix(strings.TrimRightFunc(r.held, unicode.IsSpace), closingToken))
		r.held, r.holding = "", false
		r.state = StateDone
	}
	r.flush(true)
	return textnorm.Normalize(r.accumulated.String())
}

func (r *Reassembler) processLine(line string) {
	line = strings.TrimSuffix(line, "\r")

	switch r.state {
	case StateAwaitingPrefix:
		if strings.TrimSpace(line) == "" {
			return
		}
		if r.consumeHeader(line) {
			return
		}
		slog.Debug("Stream has no envelope header, treating it as plain text", "message_id", r.targetMessageID)
		r.state = StateLiteral
		r.consumeLiteral(line)

	case StateInContent:
		if strings.TrimSpace(line) == "" {
			return
		}
		r.release()
		if strings.TrimSpace(line) == closingToken {
			r.state = StateDone
			return
		}
		if r.consumeHeader(line) {
			return
		}
		r.consumeContent(line)

	case StateDone:
		if strings.TrimSpace(line) == "" {
			return
		}
		if r.consumeHeader(line) {
			return
		}
		r.emit("\n" + line)

	case StateLiteral:
		r.consumeLiteral(line)
	}
}

// consumeHeader handles a line carrying the envelope header. A line that is a
// complete envelope on its own yields its response and closes it.
func (r *Reassembler) consumeHeader(line string) bool {
	content, ok := afterHeader(line)
	if !ok {
		return false
	}
	if raw, ok := completeEnvelope(line); ok {
		r.emit(raw)
		r.state = StateDone
		return true
	}
	r.state = StateInContent
	r.consumeContent(content)
	return true
}

// consumeContent handles one line of the response string. Physical newlines
// are framing here; newlines in the content arrive escaped. A trailing
// unescaped quote is framing too. A trailing `"}` may be the end of the
// envelope, which is only known once the next line arrives.
func (r *Reassembler) consumeContent(line string) {
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
	switch {
	case endsWithClosing(trimmed):
		r.held, r.holding = line, true
	case strings.HasSuffix(trimmed, `"`) && !isEscaped(trimmed, len(trimmed)-1):
		r.emit(trimmed[:len(trimmed)-1])
	default:
		r.emit(line)
	}
}

// release emits a held line as plain content: more content followed it, so
// its `"}` was text.
func (r *Reassembler) release() {
	if !r.holding {
		return
	}
	r.emit(r.held)
	r.held, r.holding = "", false
}

// consumeLiteral keeps the physical line breaks, since nothing escaped them.
func (r *Reassembler) consumeLiteral(line string) {
	if r.literalLines > 0 {
		line = "\n" + line
	}
	r.literalLines++
	r.emit(line)
}

func (r *Reassembler) emit(fragment string) {
	if fragment == "" {
		return
	}
	text := textnorm.NormalizeChunk(fragment)
	r.accumulated.WriteString(text)
	r.pending.WriteString(text)
}

func (r *Reassembler) flush(force bool) {
	if r.pending.Len() == 0 {
		return
	}
	now := r.now()
	if !force && !r.lastFlush.IsZero() && now.Sub(r.lastFlush) < r.interval {
		return
	}
	text := r.pending.String()
	r.pending.Reset()
	r.lastFlush = now
	if r.sink != nil {
		r.sink(text)
	}
}

func afterHeader(line string) (string, bool) {
	loc := envelopeHeader.FindStringIndex(line)
	if loc == nil {
		return "", false
	}
	return line[loc[1]:], true
}

// completeEnvelope returns the still-escaped response string of a line that
// is a whole JSON envelope.
func completeEnvelope(line string) (string, bool) {
	var env struct {
		Success  bool            `json:"success"`
		Response json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(line)), &env); err != nil {
		return "", false
	}
	raw := string(env.Response)
	if !env.Success || len(raw) < 2 || raw[0] != '"' {
		return "", false
	}
	return raw[1 : len(raw)-1], true
}

func endsWithClosing(s string) bool {
	return strings.HasSuffix(s, closingToken) && !isEscaped(s, len(s)-len(closingToken))
}

// isEscaped reports whether s[i] is preceded by an odd number of backslashes.
func isEscaped(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
