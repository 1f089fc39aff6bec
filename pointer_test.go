package labelled

import (
	"testing"

	"github.com/nbd-wtf/go-nostr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPubKey  = "3bf0c63fcb93463407af97a5e5ee64fa883d107ef9e558472c4eb9aaaefa459d"
	testEventID = "5c83da77af1dec6d7289834998ad7aafbd9e2191396d75ec3cc27f5a77226f36"
)

func TestGetLabelledPointerEvent(t *testing.T) {
	evt := &nostr.Event{
		Tags: nostr.Tags{
			{"e", testEventID, "wss://relay.example.com", "reply"},
		},
	}

	pointer := GetLabelledPointer(evt, MarkerReply, "")
	require.NotNil(t, pointer)

	ep, ok := pointer.(nostr.EventPointer)
	require.True(t, ok)
	assert.Equal(t, testEventID, ep.ID)
	assert.Equal(t, []string{"wss://relay.example.com"}, ep.Relays)
	assert.Equal(t, testEventID, pointer.AsTagReference())
}

func TestGetLabelledPointerProfile(t *testing.T) {
	evt := &nostr.Event{
		Tags: nostr.Tags{
			{"p", testPubKey, "", "author"},
		},
	}

	pointer := GetLabelledPointer(evt, "author", "p")
	require.NotNil(t, pointer)
	assert.Equal(t, testPubKey, pointer.AsTagReference())
}

func TestGetLabelledPointerEntity(t *testing.T) {
	evt := &nostr.Event{
		Tags: nostr.Tags{
			{"a", "30617:" + testPubKey + ":go-nostr", "", "fork"},
		},
	}

	pointer := GetLabelledPointer(evt, "fork", "a")
	require.NotNil(t, pointer)

	ep, ok := pointer.(nostr.EntityPointer)
	require.True(t, ok)
	assert.Equal(t, 30617, ep.Kind)
	assert.Equal(t, testPubKey, ep.PublicKey)
	assert.Equal(t, "go-nostr", ep.Identifier)
}

func TestGetLabelledPointerInvalid(t *testing.T) {
	evt := &nostr.Event{
		Tags: nostr.Tags{
			{"e", "not-an-id", "", "reply"},
			{"t", "nostr", "", "topic"},
		},
	}

	assert.Nil(t, GetLabelledPointer(evt, MarkerReply, ""))
	assert.Nil(t, GetLabelledPointer(evt, "topic", "t"))
	assert.Nil(t, GetLabelledPointer(evt, "missing", ""))
	assert.Nil(t, GetLabelledPointer(nil, MarkerReply, ""))
}
