package labelled

import "github.com/nbd-wtf/go-nostr"

// GetLabelledPointer parses the last tag matched by FindLabelledTag into a
// pointer. Only "e", "a" and "p" tags can be parsed, anything else (or a
// malformed tag) gives nil.
func GetLabelledPointer(evt *nostr.Event, label string, tagType string) nostr.Pointer {
	tag := FindLabelledTag(evt, label, tagType)
	if tag == nil {
		return nil
	}

	var pointer nostr.Pointer
	var err error
	switch tag[0] {
	case "e":
		pointer, err = nostr.EventPointerFromTag(tag)
	case "a":
		pointer, err = nostr.EntityPointerFromTag(tag)
	case "p":
		pointer, err = nostr.ProfilePointerFromTag(tag)
	default:
		return nil
	}

	if err != nil {
		DebugLogger.Printf("invalid %q tag labelled %q: %s", tag[0], label, err)
		return nil
	}
	return pointer
}
