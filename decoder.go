// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jinglesdp

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pion/jinglesdp/pkg/jingle"
	"github.com/pion/logging"
	"github.com/pion/sdp/v3"
)

// JingleFromSessionDescription builds a Jingle session, typically a
// session-accept, out of an SDP answer. Media descriptions of the same
// media type are folded into one content: the first of them supplies the
// codecs, header extensions and transport, every one of them contributes
// its sources.
func (api *API) JingleFromSessionDescription(
	desc *sdp.SessionDescription,
	action jingle.Action,
	sessionID, initiator, responder string,
) (*jingle.Session, error) {
	if desc == nil {
		return nil, invalidDocument(errNilSessionDescription)
	}

	for _, addr := range []string{initiator, responder} {
		if _, err := jingle.ParseJID(addr); err != nil {
			return nil, invalidIdentity(err)
		}
	}

	session := jingle.NewSession(action, sessionID)
	session.Initiator = initiator
	session.Responder = responder

	builders := []*contentBuilder{}
	byMedia := map[string]*contentBuilder{}
	for i, media := range desc.MediaDescriptions {
		builder, ok := byMedia[media.MediaName.Media]
		if !ok {
			var err error
			if builder, err = newContentBuilder(api.log, desc, media); err != nil {
				return nil, invalidDocument(fmt.Errorf("media description %d: %w", i, err))
			}
			byMedia[media.MediaName.Media] = builder
			builders = append(builders, builder)
		}

		if err := builder.addSources(media); err != nil {
			return nil, invalidDocument(fmt.Errorf("media description %d: %w", i, err))
		}
		api.log.Tracef("Folded media description %d into content %s", i, builder.content.Name)
	}

	session.Contents = make([]jingle.Content, 0, len(builders))
	for _, builder := range builders {
		session.Contents = append(session.Contents, builder.content)
	}

	if value, ok := desc.Attribute(sdp.AttrKeyGroup); ok {
		semantics, err := sdpParseGroupSemantics(value)
		if err != nil {
			return nil, invalidDocument(err)
		}

		group := &jingle.Group{Semantics: semantics, Contents: make([]string, 0, len(builders))}
		for _, builder := range builders {
			group.Contents = append(group.Contents, builder.content.Name)
		}
		session.Group = group
	}

	return session, nil
}

// contentBuilder accumulates the content of one media type.
type contentBuilder struct {
	content jingle.Content
	// index of every source in content.Description.Sources
	sources map[uint32]int
}

func newContentBuilder(
	log logging.LeveledLogger,
	desc *sdp.SessionDescription,
	media *sdp.MediaDescription,
) (*contentBuilder, error) {
	description := jingle.NewRTPDescription(media.MediaName.Media)
	if err := parsePayloadTypes(media, description); err != nil {
		return nil, err
	}

	err := sdpMatchAttributeFunc(media.Attributes, sdp.AttrKeyExtMap, func(a sdp.Attribute) error {
		ext, err := sdpParseExtmap(a)
		if err != nil {
			return err
		}
		description.HeaderExtensions = append(description.HeaderExtensions, ext)

		return nil
	})
	if err != nil {
		return nil, err
	}

	_, description.RTCPMux = media.Attribute(sdp.AttrKeyRTCPMux)

	for _, a := range media.Attributes {
		if a.Key != sdp.AttrKeySSRC {
			continue
		}
		ssrc, err := sdpParseSSRCMedia(a)
		if err != nil {
			return nil, err
		}
		description.SSRC = strconv.FormatUint(uint64(ssrc.SSRC), 10)

		break
	}

	transport, err := transportFromMediaDescription(log, desc, media)
	if err != nil {
		return nil, err
	}

	content := jingle.NewContent(jingle.CreatorResponder, media.MediaName.Media)
	content.Senders = getSenders(media)
	content.Description = description
	content.Transport = transport

	return &contentBuilder{content: content, sources: map[uint32]int{}}, nil
}

// parsePayloadTypes reads the rtpmap attributes of a media description and
// attaches the fmtp and rtcp-fb attributes to them.
func parsePayloadTypes(media *sdp.MediaDescription, description *jingle.RTPDescription) error {
	err := sdpMatchAttributeFunc(media.Attributes, attrKeyRTPMap, func(a sdp.Attribute) error {
		payloadType, err := sdpParseRtpMap(a)
		if err != nil {
			return err
		}
		description.PayloadTypes = append(description.PayloadTypes, payloadType)

		return nil
	})
	if err != nil {
		return err
	}

	err = sdpMatchAttributeFunc(media.Attributes, attrKeyFmtp, func(a sdp.Attribute) error {
		id, params, err := sdpParseFmtp(a)
		if err != nil {
			return err
		}
		payloadType, ok := description.PayloadType(id)
		if !ok {
			return fmt.Errorf("%w: fmtp %d", errUnknownPayloadType, id)
		}
		payloadType.Parameters = append(payloadType.Parameters, params...)

		return nil
	})
	if err != nil {
		return err
	}

	return sdpMatchAttributeFunc(media.Attributes, attrKeyRTCPFb, func(a sdp.Attribute) error {
		id, feedback, err := sdpParseRtcpFeedback(a)
		if err != nil {
			return err
		}

		if id == rtcpFbWildcard {
			for i := range description.PayloadTypes {
				payloadType := &description.PayloadTypes[i]
				payloadType.RTCPFeedbacks = append(payloadType.RTCPFeedbacks, feedback)
			}

			return nil
		}

		ptID, err := sdpParsePayloadTypeID(id)
		if err != nil {
			return fmt.Errorf("%w: %s", errRTCPFbSyntax, a.Value)
		}
		payloadType, ok := description.PayloadType(ptID)
		if !ok {
			return fmt.Errorf("%w: rtcp-fb %d", errUnknownPayloadType, ptID)
		}
		payloadType.RTCPFeedbacks = append(payloadType.RTCPFeedbacks, feedback)

		return nil
	})
}

// transportFromMediaDescription reads the ICE credentials, fingerprint and
// candidates of a media description. Credentials and fingerprint fall back
// to the session level attributes.
func transportFromMediaDescription(
	log logging.LeveledLogger,
	desc *sdp.SessionDescription,
	media *sdp.MediaDescription,
) (*jingle.Transport, error) {
	attribute := func(key string) (string, bool) {
		if value, ok := media.Attribute(key); ok {
			return value, true
		}

		return desc.Attribute(key)
	}

	transport := &jingle.Transport{}
	transport.UFrag, _ = attribute(attrKeyICEUfrag)
	transport.Pwd, _ = attribute(attrKeyICEPwd)

	if value, ok := attribute(attrKeyFingerprint); ok {
		setup, hasSetup, err := setupFromMediaDescription(desc, media)
		if err != nil {
			return nil, err
		}
		if !hasSetup {
			return nil, errFingerprintNoSetup
		}

		if transport.Fingerprint, err = parseFingerprintAttribute(value, setup); err != nil {
			return nil, err
		}
	}

	err := sdpMatchAttributeFunc(media.Attributes, sdp.AttrKeyCandidate, func(a sdp.Attribute) error {
		candidate, err := unmarshalCandidate(a.Value)
		switch {
		case errors.Is(err, errCandidateAddress):
			log.Warnf("Skipping candidate without IP address: %s", a.Value)

			return nil
		case err != nil:
			return err
		}
		transport.Candidates = append(transport.Candidates, candidate)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return transport, nil
}

func getSenders(media *sdp.MediaDescription) jingle.Senders {
	for _, attr := range media.Attributes {
		switch attr.Key {
		case sdp.AttrKeySendRecv:
			return jingle.SendersBoth
		case sdp.AttrKeySendOnly:
			return jingle.SendersResponder
		case sdp.AttrKeyRecvOnly:
			return jingle.SendersInitiator
		}
	}

	return jingle.SendersNone
}

// addSources reads the ssrc and ssrc-group attributes of a media
// description. Sources without an msid parameter inherit the msid of the
// media description.
func (b *contentBuilder) addSources(media *sdp.MediaDescription) error {
	order := []uint32{}
	params := map[uint32][]jingle.SourceParameter{}
	err := sdpMatchAttributeFunc(media.Attributes, sdp.AttrKeySSRC, func(a sdp.Attribute) error {
		ssrc, err := sdpParseSSRCMedia(a)
		if err != nil {
			return err
		}

		if _, ok := params[ssrc.SSRC]; !ok {
			order = append(order, ssrc.SSRC)
			params[ssrc.SSRC] = nil
		}
		if ssrc.Attribute != "" {
			params[ssrc.SSRC] = append(params[ssrc.SSRC], jingle.SourceParameter{Name: ssrc.Attribute, Value: ssrc.Value})
		}

		return nil
	})
	if err != nil {
		return err
	}

	msid, hasMsid := media.Attribute(sdp.AttrKeyMsid)
	for _, ssrc := range order {
		sourceParams := params[ssrc]
		if hasMsid && !hasSourceParameter(sourceParams, msidParameterName) {
			sourceParams = append(sourceParams, jingle.NewSourceParameter(msidParameterName, msid))
		}
		b.mergeSource(ssrc, sourceParams)
	}

	description := b.content.Description

	return sdpMatchAttributeFunc(media.Attributes, sdp.AttrKeySSRCGroup, func(a sdp.Attribute) error {
		group, err := sdpParseSSRCGroup(a)
		if err != nil {
			return err
		}
		description.SourceGroups = append(description.SourceGroups, group)

		return nil
	})
}

// mergeSource adds a source, or the parameters of an already known source
// it does not carry yet.
func (b *contentBuilder) mergeSource(ssrc uint32, params []jingle.SourceParameter) {
	description := b.content.Description
	i, ok := b.sources[ssrc]
	if !ok {
		b.sources[ssrc] = len(description.Sources)
		description.Sources = append(description.Sources, jingle.Source{SSRC: ssrc, Parameters: params})

		return
	}

	source := &description.Sources[i]
	for _, param := range params {
		if !hasSourceParameter(source.Parameters, param.Name) {
			source.Parameters = append(source.Parameters, param)
		}
	}
}

func hasSourceParameter(params []jingle.SourceParameter, name string) bool {
	for _, param := range params {
		if param.Name == name {
			return true
		}
	}

	return false
}
