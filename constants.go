// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jinglesdp

import "github.com/pion/sdp/v3"

const (
	// Jitsi marks the mixed sources of the bridge with this msid prefix.
	mixedMsidPrefix = "mixedmslabel "
	// Owner of the sources forwarded by the bridge itself.
	bridgeSourceOwner = "jvb"

	msidParameterName = "msid"
	rtcpIgnoredValue  = "1 IN IP4 0.0.0.0"

	attrKeyRTPMap      = "rtpmap"
	attrKeyFmtp        = "fmtp"
	attrKeyRTCP        = "rtcp"
	attrKeyRTCPFb      = "rtcp-fb"
	attrKeyICEUfrag    = "ice-ufrag"
	attrKeyICEPwd      = "ice-pwd"
	attrKeyFingerprint = "fingerprint"

	loggerScope = "jinglesdp"
)

var msidSemanticValue = " " + sdp.SemanticTokenWebRTCMediaStreams + " *" //nolint:gochecknoglobals
