// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jinglesdp

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/pion/ice/v4"
	"github.com/pion/jinglesdp/pkg/jingle"
	"github.com/pion/sdp/v3"
)

// Candidate extension attributes kept on the Jingle side.
const (
	candidateExtGeneration = "generation"
	candidateExtNetworkID  = "network-id"
)

// marshalCandidate renders a candidate as the value of a candidate attribute,
// see https://datatracker.ietf.org/doc/html/rfc8839#section-5.1.
func marshalCandidate(c jingle.Candidate) (string, error) {
	switch c.Type {
	case ice.CandidateTypeHost, ice.CandidateTypeServerReflexive,
		ice.CandidateTypePeerReflexive, ice.CandidateTypeRelay:
	default:
		return "", fmt.Errorf("%w: %s", errCandidateType, c.Type)
	}

	if _, err := netip.ParseAddr(c.IP); err != nil {
		return "", fmt.Errorf("%w: %s", errCandidateAddress, c.IP)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d %s %d %s %d typ %s",
		c.Foundation, c.Component, c.Protocol, c.Priority, c.IP, c.Port, c.Type)

	if c.Type != ice.CandidateTypeHost {
		if c.RelAddr != "" {
			fmt.Fprintf(&b, " raddr %s", c.RelAddr)
		}
		if c.RelPort != nil {
			fmt.Fprintf(&b, " rport %d", *c.RelPort)
		}
	}

	fmt.Fprintf(&b, " %s %d", candidateExtGeneration, c.Generation)

	return b.String(), nil
}

func addCandidatesToMediaDescription(candidates []jingle.Candidate, m *sdp.MediaDescription) error {
	for _, c := range candidates {
		value, err := marshalCandidate(c)
		if err != nil {
			return err
		}
		m.WithCandidate(value)
	}

	return nil
}

// unmarshalCandidate parses the value of a candidate attribute. The
// generation and network-id extensions are kept, other extensions are
// ignored. A candidate whose address is not an IP literal, such as an mDNS
// name, returns errCandidateAddress.
func unmarshalCandidate(raw string) (jingle.Candidate, error) {
	iceCandidate, err := ice.UnmarshalCandidate(raw)
	if err != nil {
		return jingle.Candidate{}, fmt.Errorf("%w: %w", errCandidateSyntax, err)
	}

	if _, err = netip.ParseAddr(iceCandidate.Address()); err != nil {
		return jingle.Candidate{}, fmt.Errorf("%w: %s", errCandidateAddress, iceCandidate.Address())
	}

	candidate := jingle.Candidate{
		Foundation: iceCandidate.Foundation(),
		Component:  iceCandidate.Component(),
		Protocol:   iceCandidate.NetworkType().NetworkShort(),
		Priority:   iceCandidate.Priority(),
		IP:         iceCandidate.Address(),
		Port:       uint16(iceCandidate.Port()), //nolint:gosec // bounded by ice.UnmarshalCandidate
		Type:       iceCandidate.Type(),
	}

	if related := iceCandidate.RelatedAddress(); related != nil && related.Address != "" {
		relPort := uint16(related.Port) //nolint:gosec // bounded by ice.UnmarshalCandidate
		candidate.RelAddr = related.Address
		candidate.RelPort = &relPort
	}

	if candidate.Generation, err = candidateExtensionUint8(iceCandidate, candidateExtGeneration); err != nil {
		return jingle.Candidate{}, err
	}

	if candidate.Network, err = candidateExtensionUint8(iceCandidate, candidateExtNetworkID); err != nil {
		return jingle.Candidate{}, err
	}

	return candidate, nil
}

// candidateExtensionUint8 returns the numeric value of an extension
// attribute, or zero when the candidate does not carry it.
func candidateExtensionUint8(c ice.Candidate, key string) (uint8, error) {
	ext, ok := c.GetExtension(key)
	if !ok {
		return 0, nil
	}

	value, err := strconv.ParseUint(ext.Value, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s", errCandidateSyntax, key, ext.Value)
	}

	return uint8(value), nil
}
