// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package spec

import "sort"

// TagSet is an unordered set of tag names. The zero value is an empty set
// that is ready to use for reads; Add allocates on first write.
type TagSet map[string]struct{}

// NewTagSet creates a TagSet holding the given tags.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether the set contains tag.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Add inserts tags into the set.
func (s *TagSet) Add(tags ...string) {
	if *s == nil {
		*s = make(TagSet, len(tags))
	}
	for _, t := range tags {
		(*s)[t] = struct{}{}
	}
}

// Union returns a new set with the tags of both s and other.
func (s TagSet) Union(other TagSet) TagSet {
	out := make(TagSet, len(s)+len(other))
	for t := range s {
		out[t] = struct{}{}
	}
	for t := range other {
		out[t] = struct{}{}
	}
	return out
}

// Clone returns an independent copy of the set.
func (s TagSet) Clone() TagSet {
	return s.Union(nil)
}

// Equal reports set equality.
func (s TagSet) Equal(other TagSet) bool {
	if len(s) != len(other) {
		return false
	}
	for t := range s {
		if !other.Has(t) {
			return false
		}
	}
	return true
}

// Len returns the number of tags.
func (s TagSet) Len() int {
	return len(s)
}

// Sorted returns the tags in lexical order, for stable output.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
