package labelled

import (
	"iter"

	"github.com/nbd-wtf/go-nostr"
)

// DefaultType is the tag type searched when none is given.
const DefaultType = "e"

// Source is anything that can list its tags of a given type, in order.
type Source interface {
	MatchingTags(tagType string) iter.Seq[nostr.Tag]
}

// Tags exposes a plain list of nostr tags as a Source.
type Tags nostr.Tags

// MatchingTags yields the tags of the given type, including the ones made of
// the type alone.
func (tags Tags) MatchingTags(tagType string) iter.Seq[nostr.Tag] {
	return func(yield func(nostr.Tag) bool) {
		for _, tag := range tags {
			if len(tag) >= 1 && tag[0] == tagType {
				if !yield(tag) {
					return
				}
			}
		}
	}
}

// FromEvent returns a Source over the tags of evt, or nil if evt is nil.
func FromEvent(evt *nostr.Event) Source {
	if evt == nil {
		return nil
	}
	return Tags(evt.Tags)
}

// AllLabelled yields every tag of the given type (DefaultType if empty) whose
// last item is label. A tag made of the type alone matches when the label is
// the type itself.
func AllLabelled(src Source, label string, tagType string) iter.Seq[nostr.Tag] {
	return func(yield func(nostr.Tag) bool) {
		if src == nil {
			return
		}
		if tagType == "" {
			tagType = DefaultType
		}

		for tag := range src.MatchingTags(tagType) {
			if len(tag) == 0 || tag[len(tag)-1] != label {
				continue
			}
			if !yield(tag) {
				return
			}
		}
	}
}

// Lookup returns the value (second item) of the last tag of the given type
// whose last item is label. When many tags carry the same label the last
// one wins, even if it has no value, in which case nothing is found.
func Lookup(src Source, label string, tagType string) (string, bool) {
	tag := findLast(src, label, tagType)
	if len(tag) < 2 {
		return "", false
	}
	return tag[1], true
}

// GetLabelledTag is Lookup over the tags of an event. A nil event has no
// labelled tags.
func GetLabelledTag(evt *nostr.Event, label string, tagType string) (string, bool) {
	return Lookup(FromEvent(evt), label, tagType)
}

// FindLabelledTag is like GetLabelledTag but returns the whole tag, or nil.
func FindLabelledTag(evt *nostr.Event, label string, tagType string) nostr.Tag {
	tag := findLast(FromEvent(evt), label, tagType)
	if len(tag) < 2 {
		return nil
	}
	return tag
}

func findLast(src Source, label string, tagType string) nostr.Tag {
	var last nostr.Tag
	for tag := range AllLabelled(src, label, tagType) {
		last = tag
	}
	return last
}
