// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jinglesdp

import (
	"errors"
	"fmt"
)

// Kinds of translation failures. Translation errors wrap exactly one of
// them, use errors.Is to tell them apart.
var (
	// ErrInvalidSignalingDocument indicates a structural or semantic defect
	// in a Jingle or SDP document.
	ErrInvalidSignalingDocument = errors.New("invalid signaling document")

	// ErrInvalidIdentity indicates a malformed initiator or responder address.
	ErrInvalidIdentity = errors.New("invalid identity")

	// ErrUnsupported indicates a recognized request the translator cannot carry out.
	ErrUnsupported = errors.New("unsupported")
)

var (
	errPayloadTypeNoName      = errors.New("payload type has no name")
	errPayloadTypeNoClockRate = errors.New("payload type has no clock rate")
	errHeaderExtensionURI     = errors.New("header extension URI can not be parsed")
	errHashNotAllowed         = errors.New("hash function is not an RFC 4572 textual name")
	errCandidateType          = errors.New("candidate has no known type")
	errCandidateAddress       = errors.New("candidate address is not an IP address")
	errCandidateSyntax        = errors.New("candidate attribute is malformed")
	errFingerprintNoValue     = errors.New("fingerprint has no value")
	errFingerprintSyntax      = errors.New("fingerprint attribute is malformed")
	errFingerprintNoSetup     = errors.New("fingerprint without setup attribute")
	errSetupRole              = errors.New("setup attribute has no known role")
	errRTPMapSyntax           = errors.New("rtpmap attribute is malformed")
	errFmtpSyntax             = errors.New("fmtp attribute is malformed")
	errRTCPFbSyntax           = errors.New("rtcp-fb attribute is malformed")
	errExtMapSyntax           = errors.New("extmap attribute is malformed")
	errSSRCSyntax             = errors.New("ssrc attribute is malformed")
	errSSRCGroupSyntax        = errors.New("ssrc-group attribute is malformed")
	errGroupSyntax            = errors.New("group attribute is malformed")
	errUnknownPayloadType     = errors.New("attribute references an unknown payload type")
	errPartialSourceRemoval   = errors.New("removing a subset of the sources of a media description")
	errNilSessionDescription  = errors.New("session description is nil")
	errNilSession             = errors.New("jingle session is nil")
)

func invalidDocument(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidSignalingDocument, err)
}

func invalidIdentity(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidIdentity, err)
}

func unsupported(err error) error {
	return fmt.Errorf("%w: %w", ErrUnsupported, err)
}
