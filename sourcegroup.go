// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jinglesdp

import (
	"sort"
	"strings"

	"github.com/pion/jinglesdp/pkg/jingle"
)

// sourceGroup is the set of sources carried by one SDP media description.
// group is nil for a source no declared group refers to.
type sourceGroup struct {
	group   *jingle.SourceGroup
	sources []jingle.Source
}

// isMixed reports whether the group carries a source mixed by the bridge.
func (g sourceGroup) isMixed() bool {
	for _, source := range g.sources {
		if param, ok := source.Parameter(msidParameterName); ok &&
			param.Value != nil && strings.HasPrefix(*param.Value, mixedMsidPrefix) {
			return true
		}
	}

	return false
}

// msid returns the first msid value found on the sources of the group.
func (g sourceGroup) msid() (string, bool) {
	for _, source := range g.sources {
		if param, ok := source.Parameter(msidParameterName); ok && param.Value != nil {
			return *param.Value, true
		}
	}

	return "", false
}

// owner returns the owner of the first source of the group.
func (g sourceGroup) owner() string {
	if len(g.sources) == 0 {
		return ""
	}

	return g.sources[0].Owner()
}

func (g sourceGroup) ssrcs() []uint32 {
	ssrcs := make([]uint32, 0, len(g.sources))
	for _, source := range g.sources {
		ssrcs = append(ssrcs, source.SSRC)
	}

	return ssrcs
}

// groupSources partitions the sources of a description into the groups that
// each become one media description. Sources outside any declared group come
// first, one per entry, followed by the declared groups. Entries carrying a
// mixed source are then moved to the front, keeping their relative order.
// Group members without a matching source are dropped.
func groupSources(desc *jingle.RTPDescription) []sourceGroup {
	grouped := map[uint32]struct{}{}
	for _, group := range desc.SourceGroups {
		for _, ssrc := range group.Sources {
			grouped[ssrc] = struct{}{}
		}
	}

	groups := make([]sourceGroup, 0, len(desc.Sources)+len(desc.SourceGroups))
	for _, source := range desc.Sources {
		if _, ok := grouped[source.SSRC]; ok {
			continue
		}
		groups = append(groups, sourceGroup{sources: []jingle.Source{source}})
	}

	for i := range desc.SourceGroups {
		group := &desc.SourceGroups[i]
		resolved := make([]jingle.Source, 0, len(group.Sources))
		for _, ssrc := range group.Sources {
			if source, ok := desc.Source(ssrc); ok {
				resolved = append(resolved, *source)
			}
		}
		groups = append(groups, sourceGroup{group: group, sources: resolved})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].isMixed() && !groups[j].isMixed()
	})

	return groups
}
