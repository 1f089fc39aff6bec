package labelled

import "github.com/nbd-wtf/go-nostr"

// labels commonly found at the end of "e" tags in threads
const (
	MarkerRoot    = "root"
	MarkerReply   = "reply"
	MarkerMention = "mention"
)

func GetRoot(evt *nostr.Event) (string, bool) {
	return GetLabelledTag(evt, MarkerRoot, DefaultType)
}

func GetReply(evt *nostr.Event) (string, bool) {
	return GetLabelledTag(evt, MarkerReply, DefaultType)
}
