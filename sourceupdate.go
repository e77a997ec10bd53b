// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jinglesdp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/jinglesdp/pkg/jingle"
	"github.com/pion/sdp/v3"
)

// AddSourcesFromJingle appends one media description per source group of a
// source-add to desc. New media descriptions clone the first media
// description of the same media type and get fresh mids, which are added to
// the BUNDLE group. desc is left untouched on error.
func (api *API) AddSourcesFromJingle(desc *sdp.SessionDescription, delta *jingle.Session) error {
	if desc == nil {
		return invalidDocument(errNilSessionDescription)
	}
	if delta == nil {
		return invalidDocument(errNilSession)
	}

	nextMid := nextMidValue(desc)
	added := []*sdp.MediaDescription{}
	mids := []string{}
	for i := range delta.Contents {
		content := &delta.Contents[i]
		if content.Description == nil {
			continue
		}

		template := findTemplateMediaDescription(desc, content.Description.Media)
		if template == nil {
			api.log.Warnf("Skipping sources of content %s, no %s media description to clone",
				content.Name, content.Description.Media)

			continue
		}

		attrs := filterAttributes(template.Attributes,
			sdp.AttrKeySSRC, sdp.AttrKeySSRCGroup, sdp.AttrKeyMID, sdp.AttrKeyMsid,
			sdp.AttrKeySendRecv, sdp.AttrKeySendOnly, sdp.AttrKeyRecvOnly, sdp.AttrKeyInactive,
		)

		for _, group := range groupSources(content.Description) {
			mid := strconv.Itoa(nextMid)
			nextMid++

			media := cloneMediaDescription(template, attrs)
			media.WithValueAttribute(sdp.AttrKeyMID, mid)
			addSourceDirection(media, group)
			addSourceAttributes(media, group)

			added = append(added, media)
			mids = append(mids, mid)
		}
	}

	desc.MediaDescriptions = append(desc.MediaDescriptions, added...)
	addToBundleGroup(desc, mids)
	api.log.Debugf("Added %d media descriptions for source-add", len(added))

	return nil
}

// RemoveSourcesFromJingle retires the media descriptions carrying the
// sources of a source-remove. A retired media description keeps its mid and
// its place in the BUNDLE group but is rejected (port 0) and inactive, so the
// numbering of later media descriptions stays stable. A media description
// which would only lose some of its sources can't be split and fails the
// call with ErrUnsupported. desc is left untouched on error.
func (api *API) RemoveSourcesFromJingle(desc *sdp.SessionDescription, delta *jingle.Session) error {
	if desc == nil {
		return invalidDocument(errNilSessionDescription)
	}
	if delta == nil {
		return invalidDocument(errNilSession)
	}

	removed := map[string]map[uint32]struct{}{}
	for i := range delta.Contents {
		description := delta.Contents[i].Description
		if description == nil {
			continue
		}

		ssrcs, ok := removed[description.Media]
		if !ok {
			ssrcs = map[uint32]struct{}{}
			removed[description.Media] = ssrcs
		}
		for _, source := range description.Sources {
			ssrcs[source.SSRC] = struct{}{}
		}
		for _, group := range description.SourceGroups {
			for _, ssrc := range group.Sources {
				ssrcs[ssrc] = struct{}{}
			}
		}
	}

	retired := []*sdp.MediaDescription{}
	for _, media := range desc.MediaDescriptions {
		ssrcs := removed[media.MediaName.Media]
		if len(ssrcs) == 0 {
			continue
		}

		own, err := mediaDescriptionSSRCs(media)
		if err != nil {
			return invalidDocument(err)
		}

		matched := 0
		for _, ssrc := range own {
			if _, ok := ssrcs[ssrc]; ok {
				matched++
			}
		}

		switch {
		case matched == 0:
			continue
		case matched != len(own):
			return unsupported(fmt.Errorf("%w: mid %s", errPartialSourceRemoval, getMidValue(media)))
		}
		retired = append(retired, media)
	}

	for _, media := range retired {
		media.MediaName.Port = sdp.RangedPort{Value: 0}
		media.Attributes = filterAttributes(media.Attributes,
			sdp.AttrKeySSRC, sdp.AttrKeySSRCGroup, sdp.AttrKeyMsid,
			sdp.AttrKeySendRecv, sdp.AttrKeySendOnly, sdp.AttrKeyRecvOnly, sdp.AttrKeyInactive,
		)
		media.WithPropertyAttribute(sdp.AttrKeyInactive)
		api.log.Debugf("Retired media description with mid %s", getMidValue(media))
	}

	return nil
}

// nextMidValue returns the first numeric mid above every mid in use and the
// number of media descriptions.
func nextMidValue(desc *sdp.SessionDescription) int {
	next := len(desc.MediaDescriptions)
	for _, media := range desc.MediaDescriptions {
		if mid, err := strconv.Atoi(getMidValue(media)); err == nil && mid >= next {
			next = mid + 1
		}
	}

	return next
}

// findTemplateMediaDescription returns the first media description of the
// given media type, preferring one which was not rejected.
func findTemplateMediaDescription(desc *sdp.SessionDescription, mediaType string) *sdp.MediaDescription {
	var rejected *sdp.MediaDescription
	for _, media := range desc.MediaDescriptions {
		if media.MediaName.Media != mediaType {
			continue
		}
		if media.MediaName.Port.Value != 0 {
			return media
		}
		if rejected == nil {
			rejected = media
		}
	}

	return rejected
}

func cloneMediaDescription(media *sdp.MediaDescription, attrs []sdp.Attribute) *sdp.MediaDescription {
	clone := *media
	clone.MediaName.Protos = append([]string{}, media.MediaName.Protos...)
	clone.MediaName.Formats = append([]string{}, media.MediaName.Formats...)
	if media.MediaName.Port.Range != nil {
		portRange := *media.MediaName.Port.Range
		clone.MediaName.Port.Range = &portRange
	}
	if clone.MediaName.Port.Value == 0 {
		clone.MediaName.Port = sdp.RangedPort{Value: 9}
	}

	if media.ConnectionInformation != nil {
		info := *media.ConnectionInformation
		if info.Address != nil {
			addr := *info.Address
			info.Address = &addr
		}
		clone.ConnectionInformation = &info
	}

	clone.Bandwidth = append([]sdp.Bandwidth{}, media.Bandwidth...)
	clone.Attributes = append([]sdp.Attribute{}, attrs...)

	return &clone
}

// addToBundleGroup appends mids to the BUNDLE group of a session, if any.
func addToBundleGroup(desc *sdp.SessionDescription, mids []string) {
	if len(mids) == 0 {
		return
	}

	bundle := jingle.GroupSemanticsBundle.String()
	for i, attr := range desc.Attributes {
		if attr.Key != sdp.AttrKeyGroup {
			continue
		}
		if semantics, _, _ := strings.Cut(attr.Value, " "); semantics == bundle {
			desc.Attributes[i].Value = strings.Join(append([]string{attr.Value}, mids...), " ")

			return
		}
	}
}

// mediaDescriptionSSRCs returns the SSRCs a media description announces in
// its ssrc and ssrc-group attributes, without duplicates.
func mediaDescriptionSSRCs(media *sdp.MediaDescription) ([]uint32, error) {
	seen := map[uint32]struct{}{}
	ssrcs := []uint32{}
	add := func(ssrc uint32) {
		if _, ok := seen[ssrc]; !ok {
			seen[ssrc] = struct{}{}
			ssrcs = append(ssrcs, ssrc)
		}
	}

	for _, attr := range media.Attributes {
		switch attr.Key {
		case sdp.AttrKeySSRC:
			ssrc, err := sdpParseSSRCMedia(attr)
			if err != nil {
				return nil, err
			}
			add(ssrc.SSRC)
		case sdp.AttrKeySSRCGroup:
			group, err := sdpParseSSRCGroup(attr)
			if err != nil {
				return nil, err
			}
			for _, ssrc := range group.Sources {
				add(ssrc)
			}
		}
	}

	return ssrcs, nil
}
