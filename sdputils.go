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

// rtcpFbWildcard applies an rtcp-fb attribute to every payload type (RFC 4585).
const rtcpFbWildcard = "*"

// Parses an rtpmap value. Sample input:
// 111 opus/48000/2
func sdpParseRtpMap(a sdp.Attribute) (jingle.PayloadType, error) {
	sp := strings.Index(a.Value, " ")
	if sp < 1 {
		return jingle.PayloadType{}, fmt.Errorf("%w: %s", errRTPMapSyntax, a.Value)
	}

	id, err := sdpParsePayloadTypeID(a.Value[:sp])
	if err != nil {
		return jingle.PayloadType{}, fmt.Errorf("%w: %s", errRTPMapSyntax, a.Value)
	}

	parts := strings.Split(a.Value[sp+1:], "/")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return jingle.PayloadType{}, fmt.Errorf("%w: %s", errRTPMapSyntax, a.Value)
	}

	clockRate, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return jingle.PayloadType{}, fmt.Errorf("%w: clock rate %s", errRTPMapSyntax, parts[1])
	}

	channels := uint64(1)
	if len(parts) == 3 {
		channels, err = strconv.ParseUint(parts[2], 10, 8)
		if err != nil {
			return jingle.PayloadType{}, fmt.Errorf("%w: channels %s", errRTPMapSyntax, parts[2])
		}
	}

	return jingle.PayloadType{
		ID:        id,
		Name:      parts[0],
		ClockRate: uint32(clockRate),
		Channels:  uint8(channels),
	}, nil
}

func sdpParsePayloadTypeID(raw string) (uint8, error) {
	id, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		return 0, err
	}

	return uint8(id), nil
}

// Parses an fmtp value. Sample input:
// 111 minptime=10;useinbandfec=1
func sdpParseFmtp(a sdp.Attribute) (uint8, []jingle.Parameter, error) {
	sp := strings.Index(a.Value, " ")
	if sp < 1 {
		return 0, nil, fmt.Errorf("%w: %s", errFmtpSyntax, a.Value)
	}

	id, err := sdpParsePayloadTypeID(a.Value[:sp])
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s", errFmtpSyntax, a.Value)
	}

	return id, sdpParseFmtpString(a.Value[sp+1:]), nil
}

// Parses format parameters. Sample input:
// vbr=on;cng=on
// Empty segments are skipped, segments without "=" are kept as a bare
// value with an empty name.
func sdpParseFmtpString(paramsStr string) []jingle.Parameter {
	params := []jingle.Parameter{}
	for _, param := range strings.Split(paramsStr, ";") {
		param = strings.TrimSpace(param)
		if param == "" {
			continue
		}

		name, value, ok := strings.Cut(param, "=")
		if !ok {
			params = append(params, jingle.Parameter{Value: param})

			continue
		}
		params = append(params, jingle.Parameter{Name: name, Value: value})
	}

	return params
}

// Parses an rtcp-fb value, returning the payload type it applies to, which
// may be the wildcard. Anything after the type is kept as the subtype.
// Sample input:
// 98 nack rpsi
// 98 ccm tmmbr smaxpr=120pps
func sdpParseRtcpFeedback(a sdp.Attribute) (string, jingle.RTCPFeedback, error) {
	parts := strings.SplitN(a.Value, " ", 3)
	if len(parts) < 2 || parts[1] == "" {
		return "", jingle.RTCPFeedback{}, fmt.Errorf("%w: %s", errRTCPFbSyntax, a.Value)
	}

	if parts[0] != rtcpFbWildcard {
		if _, err := sdpParsePayloadTypeID(parts[0]); err != nil {
			return "", jingle.RTCPFeedback{}, fmt.Errorf("%w: %s", errRTCPFbSyntax, a.Value)
		}
	}

	feedback := jingle.RTCPFeedback{Type: parts[1]}
	if len(parts) == 3 {
		feedback.Subtype = parts[2]
	}

	return parts[0], feedback, nil
}

// Parses an extmap value (RFC 8285). Sample input:
// 2 urn:ietf:params:rtp-hdrext:toffset
// 2/sendonly urn:ietf:params:rtp-hdrext:toffset
func sdpParseExtmap(a sdp.Attribute) (jingle.HeaderExtension, error) {
	ext := sdp.ExtMap{}
	if err := ext.Unmarshal(sdp.AttrKeyExtMap + ":" + a.Value); err != nil {
		return jingle.HeaderExtension{}, fmt.Errorf("%w: %w", errExtMapSyntax, err)
	}

	return jingle.HeaderExtension{
		ID:  uint16(ext.Value), //nolint:gosec // bounded by ExtMap.Unmarshal
		URI: strings.Fields(a.Value)[1],
	}, nil
}

// sdpSSRCMedia represents a an RFC 5576 ssrc media attribute.
type sdpSSRCMedia struct {
	SSRC      uint32
	Attribute string
	Value     *string
}

// Parses an RFC 5576 ssrc media attribute. Sample input:
// <ssrc-id> <attribute>
// <ssrc-id> <attribute>:<value>
func sdpParseSSRCMedia(a sdp.Attribute) (sdpSSRCMedia, error) {
	ssrcStr, attr, _ := strings.Cut(a.Value, " ")
	ssrc, err := strconv.ParseUint(ssrcStr, 10, 32)
	if err != nil {
		return sdpSSRCMedia{}, fmt.Errorf("%w: %s", errSSRCSyntax, ssrcStr)
	}

	media := sdpSSRCMedia{SSRC: uint32(ssrc)}
	if name, value, ok := strings.Cut(attr, ":"); ok {
		media.Attribute = name
		media.Value = &value
	} else {
		media.Attribute = attr
	}

	return media, nil
}

// Parses an RFC 5576 ssrc-group attribute. Sample input:
// FID 2339496998 1726149289
func sdpParseSSRCGroup(a sdp.Attribute) (jingle.SourceGroup, error) {
	parts := strings.Fields(a.Value)
	if len(parts) == 0 {
		return jingle.SourceGroup{}, fmt.Errorf("%w: %s", errSSRCGroupSyntax, a.Value)
	}

	semantics, err := jingle.NewSourceGroupSemantics(parts[0])
	if err != nil {
		return jingle.SourceGroup{}, fmt.Errorf("%w: %w", errSSRCGroupSyntax, err)
	}

	group := jingle.SourceGroup{Semantics: semantics, Sources: make([]uint32, 0, len(parts)-1)}
	for _, part := range parts[1:] {
		ssrc, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return jingle.SourceGroup{}, fmt.Errorf("%w: %s", errSSRCGroupSyntax, part)
		}
		group.Sources = append(group.Sources, uint32(ssrc))
	}

	return group, nil
}

// Parses the semantics of an RFC 5888 group attribute. Sample input:
// BUNDLE 0 1 2
func sdpParseGroupSemantics(value string) (jingle.GroupSemantics, error) {
	parts := strings.Fields(value)
	if len(parts) == 0 {
		return jingle.GroupSemantics(0), fmt.Errorf("%w: %s", errGroupSyntax, value)
	}

	semantics, err := jingle.NewGroupSemantics(parts[0])
	if err != nil {
		return jingle.GroupSemantics(0), fmt.Errorf("%w: %w", errGroupSyntax, err)
	}

	return semantics, nil
}

type sdpAttributeParser func(sdp.Attribute) error

func sdpMatchAttributeFunc(attrs []sdp.Attribute, key string, p sdpAttributeParser) error {
	for _, a := range attrs {
		if a.Key != key {
			continue
		}

		if err := p(a); err != nil {
			return err
		}
	}

	return nil
}
