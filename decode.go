package labelled

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/mailru/easyjson"
	"github.com/nbd-wtf/go-nostr"
)

const maxLineSize = 1 << 20

var ErrNotAnEvent = errors.New("not an event")

// DecodeEvent parses either a raw event object or an ["EVENT", ...] envelope
// as sent by relays. Blank lines give a nil event and no error.
func DecodeEvent(line []byte) (*nostr.Event, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil, nil
	}

	switch line[0] {
	case '{':
		evt := &nostr.Event{}
		if err := easyjson.Unmarshal(line, evt); err != nil {
			return nil, fmt.Errorf("failed to decode event: %w", err)
		}
		return evt, nil
	case '[':
		env := nostr.ParseMessage(string(line))
		if env == nil {
			return nil, fmt.Errorf("failed to parse message '%s'", truncate(line))
		}
		if ee, ok := env.(*nostr.EventEnvelope); ok {
			return &ee.Event, nil
		}
		return nil, fmt.Errorf("%w: got %s envelope", ErrNotAnEvent, env.Label())
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrNotAnEvent, truncate(line))
	}
}

// ReadEvents decodes one event per line of r. Lines that fail to decode are
// yielded as errors and reading goes on; blank lines are skipped.
func ReadEvents(r io.Reader) iter.Seq2[*nostr.Event, error] {
	return func(yield func(*nostr.Event, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		n := 0
		for scanner.Scan() {
			n++
			evt, err := DecodeEvent(bytes.Clone(scanner.Bytes()))
			if err != nil {
				if !yield(nil, fmt.Errorf("line %d: %w", n, err)) {
					return
				}
				continue
			}
			if evt == nil {
				continue
			}
			if !yield(evt, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(nil, fmt.Errorf("failed to read events: %w", err))
		}
	}
}

func truncate(b []byte) string {
	if len(b) > 50 {
		return string(b[0:50]) + "..."
	}
	return string(b)
}
