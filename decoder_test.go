// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jinglesdp

import (
	"testing"

	"github.com/pion/ice/v4"
	"github.com/pion/jinglesdp/pkg/jingle"
	"github.com/pion/sdp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const decoderHeader = `v=0
o=- 457839365782951393 2 IN IP4 127.0.0.1
s=-
t=0 0
`

func decode(t *testing.T, raw string) (*jingle.Session, error) {
	t.Helper()

	return newTestAPI().JingleFromSessionDescription(
		parseSDP(t, raw), jingle.ActionSessionAccept, "sid", answerInitiator, answerResponder,
	)
}

func TestJingleFromSessionDescriptionErrors(t *testing.T) {
	testCases := []struct {
		name  string
		raw   string
		err   error
		cause error
	}{
		{
			"fmtp for unknown payload type",
			decoderHeader + `m=audio 9 UDP/TLS/RTP/SAVPF 111
a=rtpmap:111 opus/48000/2
a=fmtp:112 minptime=10
`,
			ErrInvalidSignalingDocument, errUnknownPayloadType,
		},
		{
			"rtcp-fb for unknown payload type",
			decoderHeader + `m=audio 9 UDP/TLS/RTP/SAVPF 111
a=rtpmap:111 opus/48000/2
a=rtcp-fb:112 transport-cc
`,
			ErrInvalidSignalingDocument, errUnknownPayloadType,
		},
		{
			"malformed rtpmap",
			decoderHeader + `m=audio 9 UDP/TLS/RTP/SAVPF 111
a=rtpmap:111 opus
`,
			ErrInvalidSignalingDocument, errRTPMapSyntax,
		},
		{
			"fingerprint without setup",
			decoderHeader + `m=audio 9 UDP/TLS/RTP/SAVPF 111
a=rtpmap:111 opus/48000/2
a=fingerprint:sha-256 ` + answerFingerprint + `
`,
			ErrInvalidSignalingDocument, errFingerprintNoSetup,
		},
		{
			"holdconn setup",
			decoderHeader + `m=audio 9 UDP/TLS/RTP/SAVPF 111
a=rtpmap:111 opus/48000/2
a=setup:holdconn
a=fingerprint:sha-256 ` + answerFingerprint + `
`,
			ErrInvalidSignalingDocument, errSetupRole,
		},
		{
			"fingerprint with unknown hash",
			decoderHeader + `m=audio 9 UDP/TLS/RTP/SAVPF 111
a=rtpmap:111 opus/48000/2
a=setup:active
a=fingerprint:sha-257 ` + answerFingerprint + `
`,
			ErrInvalidSignalingDocument, nil,
		},
		{
			"malformed candidate",
			decoderHeader + `m=audio 9 UDP/TLS/RTP/SAVPF 111
a=rtpmap:111 opus/48000/2
a=candidate:1 1 udp 2130706431 10.0.0.1 54321 host
`,
			ErrInvalidSignalingDocument, errCandidateSyntax,
		},
		{
			"malformed ssrc-group in later media description",
			decoderHeader + `m=video 9 UDP/TLS/RTP/SAVPF 96
a=rtpmap:96 VP8/90000
m=video 9 UDP/TLS/RTP/SAVPF 96
a=ssrc-group:FID 1 x
`,
			ErrInvalidSignalingDocument, errSSRCGroupSyntax,
		},
		{
			"unknown group semantics",
			decoderHeader + `a=group:NOPE 0
m=audio 9 UDP/TLS/RTP/SAVPF 111
a=rtpmap:111 opus/48000/2
`,
			ErrInvalidSignalingDocument, errGroupSyntax,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			session, err := decode(t, testCase.raw)
			assert.Nil(t, session)
			assert.ErrorIs(t, err, testCase.err)
			if testCase.cause != nil {
				assert.ErrorIs(t, err, testCase.cause)
			}
		})
	}
}

func TestJingleFromSessionDescriptionIdentity(t *testing.T) {
	desc := parseSDP(t, answer)

	testCases := []struct {
		initiator string
		responder string
	}{
		{"", answerResponder},
		{answerInitiator, ""},
		{"focus@", answerResponder},
		{answerInitiator, "user@example.com/"},
	}

	for i, testCase := range testCases {
		session, err := JingleFromSessionDescription(
			desc, jingle.ActionSessionAccept, "sid", testCase.initiator, testCase.responder,
		)
		assert.Nil(t, session, "testCase: %d %v", i, testCase)
		assert.ErrorIs(t, err, ErrInvalidIdentity, "testCase: %d %v", i, testCase)
		assert.ErrorIs(t, err, jingle.ErrInvalidJID, "testCase: %d %v", i, testCase)
	}

	_, err := JingleFromSessionDescription(nil, jingle.ActionSessionAccept, "sid", answerInitiator, answerResponder)
	assert.ErrorIs(t, err, ErrInvalidSignalingDocument)
}

func TestJingleFromSessionDescriptionTransport(t *testing.T) {
	session, err := decode(t, decoderHeader+`a=ice-ufrag:sess
a=ice-pwd:sessionpassword
a=setup:passive
a=fingerprint:SHA-1 9F:21:D6
m=audio 9 UDP/TLS/RTP/SAVPF 111
a=rtpmap:111 opus/48000/2
a=candidate:1 1 udp 2130706431 4f2a9c1e-8b0e.local 54321 typ host generation 0
a=candidate:2 1 udp 1677729535 198.51.100.7 54322 typ srflx raddr 0.0.0.0 rport 0 generation 0 network-id 2
m=video 9 UDP/TLS/RTP/SAVPF 96
a=ice-ufrag:media
a=ice-pwd:mediapassword
a=setup:active
a=rtpmap:96 VP8/90000
`)
	require.NoError(t, err)
	require.Len(t, session.Contents, 2)
	assert.Nil(t, session.Group)

	audio := session.Contents[0].Transport
	assert.Equal(t, "sess", audio.UFrag)
	assert.Equal(t, "sessionpassword", audio.Pwd)
	assert.Equal(t, &jingle.Fingerprint{
		Hash: jingle.HashAlgorithmSHA1, Setup: jingle.SetupPassive, Value: []byte{0x9f, 0x21, 0xd6},
	}, audio.Fingerprint)
	assert.Equal(t, []jingle.Candidate{{
		Foundation: "2", Component: 1, Protocol: "udp", Priority: 1677729535,
		IP:         "198.51.100.7", Port: 54322, Type: ice.CandidateTypeServerReflexive,
		RelAddr:    "0.0.0.0", RelPort: uint16Ptr(0), Network: 2,
	}}, audio.Candidates)

	video := session.Contents[1].Transport
	assert.Equal(t, "media", video.UFrag)
	assert.Equal(t, "mediapassword", video.Pwd)
	assert.Equal(t, jingle.SetupActive, video.Fingerprint.Setup)
	assert.Equal(t, jingle.SendersNone, session.Contents[1].Senders)
}

func TestJingleFromSessionDescriptionFeedbackWildcard(t *testing.T) {
	session, err := decode(t, decoderHeader+`m=video 9 UDP/TLS/RTP/SAVPF 96 97
a=rtpmap:96 VP8/90000
a=rtpmap:97 rtx/90000
a=rtcp-fb:* nack
a=rtcp-fb:96 nack pli
`)
	require.NoError(t, err)

	payloadTypes := session.Contents[0].Description.PayloadTypes
	require.Len(t, payloadTypes, 2)
	assert.Equal(t, []jingle.RTCPFeedback{{Type: "nack"}, {Type: "nack", Subtype: "pli"}}, payloadTypes[0].RTCPFeedbacks)
	assert.Equal(t, []jingle.RTCPFeedback{{Type: "nack"}}, payloadTypes[1].RTCPFeedbacks)
}

func TestRTCPFeedbackParametersRoundTrip(t *testing.T) {
	session, err := decode(t, decoderHeader+`m=video 9 UDP/TLS/RTP/SAVPF 98
a=rtpmap:98 VP9/90000
a=rtcp-fb:98 ccm tmmbr smaxpr=120pps
a=rtcp-fb:98 nack
`)
	require.NoError(t, err)
	assert.Equal(t, []jingle.RTCPFeedback{
		{Type: "ccm", Subtype: "tmmbr smaxpr=120pps"},
		{Type: "nack"},
	}, session.Contents[0].Description.PayloadTypes[0].RTCPFeedbacks)

	desc, err := newTestAPI().SessionDescriptionFromJingle(session)
	require.NoError(t, err)
	require.Len(t, desc.MediaDescriptions, 1)

	var feedbacks []string
	for _, a := range desc.MediaDescriptions[0].Attributes {
		if a.Key == attrKeyRTCPFb {
			feedbacks = append(feedbacks, a.Value)
		}
	}
	assert.Equal(t, []string{"98 ccm tmmbr smaxpr=120pps", "98 nack"}, feedbacks)
}

func TestJingleFromSessionDescriptionSources(t *testing.T) {
	session, err := decode(t, decoderHeader+`m=video 9 UDP/TLS/RTP/SAVPF 96
a=msid:stream track
a=rtpmap:96 VP8/90000
a=ssrc:1 cname:foo
a=ssrc:1 msid:explicit track
a=ssrc:2 cname:foo
m=video 9 UDP/TLS/RTP/SAVPF 96
a=msid:other track
a=rtpmap:96 VP8/90000
a=ssrc:2 label:bar
a=ssrc:2 cname:ignored
a=ssrc:3 cname:baz
a=ssrc-group:FID 2 3
`)
	require.NoError(t, err)
	require.Len(t, session.Contents, 1)

	description := session.Contents[0].Description
	assert.Equal(t, "1", description.SSRC)
	assert.Equal(t, []jingle.Source{
		{SSRC: 1, Parameters: []jingle.SourceParameter{
			jingle.NewSourceParameter("cname", "foo"),
			jingle.NewSourceParameter(msidParameterName, "explicit track"),
		}},
		{SSRC: 2, Parameters: []jingle.SourceParameter{
			jingle.NewSourceParameter("cname", "foo"),
			jingle.NewSourceParameter(msidParameterName, "stream track"),
			jingle.NewSourceParameter("label", "bar"),
		}},
		{SSRC: 3, Parameters: []jingle.SourceParameter{
			jingle.NewSourceParameter("cname", "baz"),
			jingle.NewSourceParameter(msidParameterName, "other track"),
		}},
	}, description.Sources)
	assert.Equal(t, []jingle.SourceGroup{
		{Semantics: jingle.SourceGroupSemanticsFID, Sources: []uint32{2, 3}},
	}, description.SourceGroups)
}

func TestGetSenders(t *testing.T) {
	testCases := []struct {
		attr     string
		expected jingle.Senders
	}{
		{sdp.AttrKeySendRecv, jingle.SendersBoth},
		{sdp.AttrKeySendOnly, jingle.SendersResponder},
		{sdp.AttrKeyRecvOnly, jingle.SendersInitiator},
		{sdp.AttrKeyInactive, jingle.SendersNone},
		{"", jingle.SendersNone},
	}

	for i, testCase := range testCases {
		media := &sdp.MediaDescription{}
		if testCase.attr != "" {
			media.WithPropertyAttribute(testCase.attr)
		}
		assert.Equal(t, testCase.expected, getSenders(media), "testCase: %d %v", i, testCase)
	}
}
