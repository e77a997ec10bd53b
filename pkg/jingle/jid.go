// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jingle

import (
	"fmt"

	"mellium.im/xmpp/jid"
)

// ParseJID validates an XMPP address such as the initiator or responder of a
// session.
func ParseJID(raw string) (jid.JID, error) {
	if raw == "" {
		return jid.JID{}, fmt.Errorf("%w: empty address", ErrInvalidJID)
	}

	addr, err := jid.Parse(raw)
	if err != nil {
		return jid.JID{}, fmt.Errorf("%w: %w", ErrInvalidJID, err)
	}

	return addr, nil
}
