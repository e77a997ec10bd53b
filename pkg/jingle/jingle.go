// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package jingle implements the typed Jingle (XEP-0166) session model used
// by conferencing focus components, including the RTP description
// (XEP-0167), ICE-UDP transport (XEP-0176), DTLS-SRTP fingerprints
// (XEP-0320), source-specific media attributes (XEP-0339) and grouping
// (XEP-0338). Serialization to and from XML is left to the caller.
package jingle

import "errors"

var (
	// ErrUnknownType indicates an enum value has no known textual form.
	ErrUnknownType = errors.New("unknown")

	// ErrInvalidJID indicates a string is not a valid XMPP address.
	ErrInvalidJID = errors.New("invalid JID")

	// ErrInvalidFingerprint indicates a fingerprint value could not be parsed.
	ErrInvalidFingerprint = errors.New("invalid fingerprint")

	errInvalidActionString               = errors.New("invalid jingle action")
	errInvalidCreatorString              = errors.New("invalid content creator")
	errInvalidSendersString              = errors.New("invalid content senders")
	errInvalidSourceGroupSemanticsString = errors.New("invalid source group semantics")
	errInvalidGroupSemanticsString       = errors.New("invalid group semantics")
	errInvalidHashAlgorithmString        = errors.New("invalid hash algorithm")
	errInvalidSetupString                = errors.New("invalid DTLS setup")
	errInvalidCandidateTypeString        = errors.New("invalid candidate type")
	errHashNotSupportedByDTLS            = errors.New("hash algorithm is not supported for certificates")
)
