// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jinglesdp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pion/jinglesdp/pkg/jingle"
	"github.com/pion/sdp/v3"
)

// mediaTemplate holds the attributes shared by all media descriptions
// generated from one content. The per source attributes are added by
// newMediaDescription.
type mediaTemplate struct {
	media     string
	formats   []string
	codecs    []sdp.Attribute
	setup     *sdp.Attribute
	transport []sdp.Attribute
	rtcpMux   bool
}

func newMediaTemplate(content *jingle.Content) (*mediaTemplate, error) {
	desc := content.Description
	formats, codecs, err := codecAttributes(desc)
	if err != nil {
		return nil, err
	}

	extmaps, err := extmapAttributes(desc)
	if err != nil {
		return nil, err
	}

	t := &mediaTemplate{
		media:   desc.Media,
		formats: formats,
		codecs:  append(codecs, extmaps...),
		rtcpMux: desc.RTCPMux,
	}

	if content.Transport != nil {
		if fp := content.Transport.Fingerprint; fp != nil && fp.Setup != jingle.Setup(0) {
			attr := sdp.NewAttribute(sdp.AttrKeyConnectionSetup, connectionRoleFromSetup(fp.Setup).String())
			t.setup = &attr
		}

		if t.transport, err = transportAttributes(content.Transport); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// newMediaDescription creates the media description carrying one source
// group of the content.
func (t *mediaTemplate) newMediaDescription(mid string, group sourceGroup) *sdp.MediaDescription {
	media := sdp.NewJSEPMediaDescription(t.media, []string{})
	media.MediaName.Formats = append([]string{}, t.formats...)
	media.Attributes = append(media.Attributes, t.codecs...)
	if t.setup != nil {
		media.Attributes = append(media.Attributes, *t.setup)
	}

	media.WithValueAttribute(sdp.AttrKeyMID, mid)
	addSourceDirection(media, group)
	media.Attributes = append(media.Attributes, t.transport...)
	addSourceAttributes(media, group)

	if t.rtcpMux {
		media.WithPropertyAttribute(sdp.AttrKeyRTCPMux)
	}

	return media
}

// codecAttributes renders the payload types of a description as rtpmap,
// fmtp, rtcp and rtcp-fb attributes, in that order.
func codecAttributes(desc *jingle.RTPDescription) ([]string, []sdp.Attribute, error) {
	formats := make([]string, 0, len(desc.PayloadTypes))
	rtpmaps := make([]sdp.Attribute, 0, len(desc.PayloadTypes))
	fmtps := []sdp.Attribute{}
	feedbacks := []sdp.Attribute{}

	for _, payloadType := range desc.PayloadTypes {
		if payloadType.Name == "" {
			return nil, nil, fmt.Errorf("%w: %d", errPayloadTypeNoName, payloadType.ID)
		}
		if payloadType.ClockRate == 0 {
			return nil, nil, fmt.Errorf("%w: %d", errPayloadTypeNoClockRate, payloadType.ID)
		}

		id := strconv.FormatUint(uint64(payloadType.ID), 10)
		formats = append(formats, id)

		rtpmap := fmt.Sprintf("%s %s/%d", id, payloadType.Name, payloadType.ClockRate)
		if channels := payloadType.ChannelCount(); channels > 1 {
			rtpmap += fmt.Sprintf("/%d", channels)
		}
		rtpmaps = append(rtpmaps, sdp.NewAttribute(attrKeyRTPMap, rtpmap))

		if len(payloadType.Parameters) > 0 {
			fmtps = append(fmtps, sdp.NewAttribute(attrKeyFmtp, id+" "+fmtpString(payloadType.Parameters)))
		}

		for _, feedback := range payloadType.RTCPFeedbacks {
			value := id + " " + feedback.Type
			if feedback.Subtype != "" {
				value += " " + feedback.Subtype
			}
			feedbacks = append(feedbacks, sdp.NewAttribute(attrKeyRTCPFb, value))
		}
	}

	attrs := make([]sdp.Attribute, 0, len(rtpmaps)+len(fmtps)+len(feedbacks)+1)
	attrs = append(attrs, rtpmaps...)
	attrs = append(attrs, fmtps...)
	attrs = append(attrs, sdp.NewAttribute(attrKeyRTCP, rtcpIgnoredValue))
	attrs = append(attrs, feedbacks...)

	return formats, attrs, nil
}

// fmtpString joins format parameters with ";". Parameters without a name
// are written as their bare value.
func fmtpString(params []jingle.Parameter) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		if param.Name == "" {
			parts = append(parts, param.Value)

			continue
		}
		parts = append(parts, param.Name+"="+param.Value)
	}

	return strings.Join(parts, ";")
}

func extmapAttributes(desc *jingle.RTPDescription) ([]sdp.Attribute, error) {
	attrs := make([]sdp.Attribute, 0, len(desc.HeaderExtensions))
	for _, ext := range desc.HeaderExtensions {
		if u, err := url.Parse(ext.URI); err != nil || u.Scheme == "" {
			return nil, fmt.Errorf("%w: %q", errHeaderExtensionURI, ext.URI)
		}
		attrs = append(attrs, sdp.NewAttribute(sdp.AttrKeyExtMap, fmt.Sprintf("%d %s", ext.ID, ext.URI)))
	}

	return attrs, nil
}

// transportAttributes renders the ICE credentials, the fingerprint and the
// candidates of a transport.
func transportAttributes(transport *jingle.Transport) ([]sdp.Attribute, error) {
	media := &sdp.MediaDescription{}
	if transport.UFrag != "" && transport.Pwd != "" {
		media.WithICECredentials(transport.UFrag, transport.Pwd)
	}

	if transport.Fingerprint != nil {
		hash, value, err := fingerprintAttributeParts(transport.Fingerprint)
		if err != nil {
			return nil, err
		}
		media.WithValueAttribute(attrKeyFingerprint, hash+" "+value)
	}

	if err := addCandidatesToMediaDescription(transport.Candidates, media); err != nil {
		return nil, err
	}

	return media.Attributes, nil
}

// addSourceDirection adds the msid of the group and its direction. Groups
// owned by the bridge are received as well as sent.
func addSourceDirection(media *sdp.MediaDescription, group sourceGroup) {
	if msid, ok := group.msid(); ok {
		media.WithValueAttribute(sdp.AttrKeyMsid, msid)
	}

	if group.owner() == bridgeSourceOwner {
		media.WithPropertyAttribute(sdp.AttrKeySendRecv)
	} else {
		media.WithPropertyAttribute(sdp.AttrKeySendOnly)
	}
}

// addSourceAttributes adds one ssrc attribute per source parameter and the
// ssrc-group of a declared group.
func addSourceAttributes(media *sdp.MediaDescription, group sourceGroup) {
	for _, source := range group.sources {
		for _, param := range source.Parameters {
			value := fmt.Sprintf("%d %s", source.SSRC, param.Name)
			if param.Value != nil {
				value += ":" + *param.Value
			}
			media.WithValueAttribute(sdp.AttrKeySSRC, value)
		}
	}

	if group.group != nil {
		media.WithValueAttribute(sdp.AttrKeySSRCGroup, ssrcGroupString(group.group))
	}
}

func ssrcGroupString(group *jingle.SourceGroup) string {
	parts := make([]string, 0, len(group.Sources)+1)
	parts = append(parts, group.Semantics.String())
	for _, ssrc := range group.Sources {
		parts = append(parts, strconv.FormatUint(uint64(ssrc), 10))
	}

	return strings.Join(parts, " ")
}

// getMidValue returns the mid of a media description, or "".
func getMidValue(media *sdp.MediaDescription) string {
	for _, attr := range media.Attributes {
		if attr.Key == sdp.AttrKeyMID {
			return attr.Value
		}
	}

	return ""
}

// filterAttributes returns the attributes whose key is not listed.
func filterAttributes(attrs []sdp.Attribute, keys ...string) []sdp.Attribute {
	filtered := make([]sdp.Attribute, 0, len(attrs))
outer:
	for _, attr := range attrs {
		for _, key := range keys {
			if attr.Key == key {
				continue outer
			}
		}
		filtered = append(filtered, attr)
	}

	return filtered
}
