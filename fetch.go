package labelled

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip19"
	"github.com/puzpuzpuz/xsync/v3"
)

var (
	ErrNotFound = errors.New("event not found")
	ErrNoRelays = errors.New("no relays to query")
)

// Fetcher loads single events from relays so their labelled tags can be read.
// Events already fetched are kept in memory by id.
type Fetcher struct {
	Relays  []string
	Timeout time.Duration

	cache *xsync.MapOf[string, *nostr.Event]
}

func NewFetcher(relays ...string) *Fetcher {
	return &Fetcher{
		Relays:  relays,
		Timeout: 7 * time.Second,
		cache:   xsync.NewMapOf[string, *nostr.Event](),
	}
}

// Fetch takes a "note" or "nevent" code, or a hex event id, and returns the
// event from the first relay that has it. Relay hints from the code are tried
// before f.Relays.
func (f *Fetcher) Fetch(ctx context.Context, code string) (*nostr.Event, error) {
	pointer, err := parseEventCode(code)
	if err != nil {
		return nil, err
	}

	if evt, ok := f.cache.Load(pointer.ID); ok {
		return evt, nil
	}

	relays := make([]string, 0, len(pointer.Relays)+len(f.Relays))
	for _, url := range slices.Concat(pointer.Relays, f.Relays) {
		url = nostr.NormalizeURL(url)
		if url != "" && !slices.Contains(relays, url) {
			relays = append(relays, url)
		}
	}
	if len(relays) == 0 {
		return nil, ErrNoRelays
	}

	for _, url := range relays {
		evt, err := f.query(ctx, url, pointer)
		if err != nil {
			InfoLogger.Printf("%s: %s", url, err)
			continue
		}
		if evt == nil {
			DebugLogger.Printf("%s doesn't have %s", url, pointer.ID)
			continue
		}

		f.cache.Store(pointer.ID, evt)
		return evt, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, pointer.ID)
}

func (f *Fetcher) query(ctx context.Context, url string, pointer nostr.EventPointer) (*nostr.Event, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = 7 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	relay, err := nostr.RelayConnect(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	defer relay.Close()

	events, err := relay.QuerySync(ctx, pointer.AsFilter())
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	for _, evt := range events {
		if pointer.MatchesEvent(*evt) {
			return evt, nil
		}
	}
	return nil, nil
}

func parseEventCode(code string) (nostr.EventPointer, error) {
	if nostr.IsValid32ByteHex(code) {
		return nostr.EventPointer{ID: code}, nil
	}

	pointer, err := nip19.ToPointer(code)
	if err != nil {
		return nostr.EventPointer{}, fmt.Errorf("invalid event code '%s': %w", code, err)
	}

	switch p := pointer.(type) {
	case nostr.EventPointer:
		return p, nil
	case *nostr.EventPointer:
		return *p, nil
	default:
		return nostr.EventPointer{}, fmt.Errorf("'%s' doesn't point to an event", code)
	}
}
