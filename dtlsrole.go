// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jinglesdp

import (
	"fmt"

	"github.com/pion/jinglesdp/pkg/jingle"
	"github.com/pion/sdp/v3"
)

// connectionRoleFromSetup returns the SDP connection role (RFC 4145) of a
// Jingle DTLS setup.
func connectionRoleFromSetup(setup jingle.Setup) sdp.ConnectionRole {
	switch setup {
	case jingle.SetupActive:
		return sdp.ConnectionRoleActive
	case jingle.SetupPassive:
		return sdp.ConnectionRolePassive
	case jingle.SetupActpass:
		return sdp.ConnectionRoleActpass
	default:
		return sdp.ConnectionRole(0)
	}
}

// setupFromConnectionRole parses the value of a setup attribute. holdconn
// has no Jingle counterpart.
func setupFromConnectionRole(raw string) (jingle.Setup, error) {
	switch raw {
	case sdp.ConnectionRoleActive.String():
		return jingle.SetupActive, nil
	case sdp.ConnectionRolePassive.String():
		return jingle.SetupPassive, nil
	case sdp.ConnectionRoleActpass.String():
		return jingle.SetupActpass, nil
	default:
		return jingle.Setup(0), fmt.Errorf("%w: %s", errSetupRole, raw)
	}
}

// setupFromMediaDescription returns the setup of a media description, or
// of the session when the media description has none.
func setupFromMediaDescription(desc *sdp.SessionDescription, media *sdp.MediaDescription) (jingle.Setup, bool, error) {
	raw, ok := media.Attribute(sdp.AttrKeyConnectionSetup)
	if !ok {
		raw, ok = desc.Attribute(sdp.AttrKeyConnectionSetup)
	}
	if !ok {
		return jingle.Setup(0), false, nil
	}

	setup, err := setupFromConnectionRole(raw)
	if err != nil {
		return jingle.Setup(0), false, err
	}

	return setup, true, nil
}
