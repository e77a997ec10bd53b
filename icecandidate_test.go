// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jinglesdp

import (
	"testing"

	"github.com/pion/ice/v4"
	"github.com/pion/jinglesdp/pkg/jingle"
	"github.com/stretchr/testify/assert"
)

func uint16Ptr(v uint16) *uint16 {
	return &v
}

func TestMarshalCandidate(t *testing.T) {
	testCases := []struct {
		candidate jingle.Candidate
		expected  string
		err       error
	}{
		{
			jingle.Candidate{
				Foundation: "1", Component: 1, Protocol: "udp", Priority: 2130706431,
				IP:         "10.228.1.45", Port: 10000, Type: ice.CandidateTypeHost,
			},
			"1 1 udp 2130706431 10.228.1.45 10000 typ host generation 0",
			nil,
		},
		{
			// Related address of a host candidate is not written.
			jingle.Candidate{
				Foundation: "1", Component: 1, Protocol: "udp", Priority: 2130706431,
				IP:         "10.228.1.45", Port: 10000, Type: ice.CandidateTypeHost,
				RelAddr:    "10.0.0.1", RelPort: uint16Ptr(9), Generation: 1,
			},
			"1 1 udp 2130706431 10.228.1.45 10000 typ host generation 1",
			nil,
		},
		{
			jingle.Candidate{
				Foundation: "3", Component: 1, Protocol: "udp", Priority: 1677724415,
				IP:         "13.229.216.23", Port: 10000, Type: ice.CandidateTypeServerReflexive,
				RelAddr:    "10.228.1.45", RelPort: uint16Ptr(10000),
			},
			"3 1 udp 1677724415 13.229.216.23 10000 typ srflx raddr 10.228.1.45 rport 10000 generation 0",
			nil,
		},
		{
			jingle.Candidate{
				Foundation: "4", Component: 2, Protocol: "tcp", Priority: 1,
				IP:         "2001:db8::1", Port: 3478, Type: ice.CandidateTypeRelay,
				RelPort:    uint16Ptr(0),
			},
			"4 2 tcp 1 2001:db8::1 3478 typ relay rport 0 generation 0",
			nil,
		},
		{
			jingle.Candidate{Foundation: "1", IP: "10.0.0.1", Type: ice.CandidateTypeUnspecified},
			"",
			errCandidateType,
		},
		{
			jingle.Candidate{Foundation: "1", IP: "abc.local", Type: ice.CandidateTypeHost},
			"",
			errCandidateAddress,
		},
	}

	for i, testCase := range testCases {
		actual, err := marshalCandidate(testCase.candidate)
		if testCase.err != nil {
			assert.ErrorIs(t, err, testCase.err, "testCase: %d %v", i, testCase)

			continue
		}
		assert.NoError(t, err, "testCase: %d %v", i, testCase)
		assert.Equal(t, testCase.expected, actual, "testCase: %d %v", i, testCase)
	}
}

func TestUnmarshalCandidate(t *testing.T) {
	testCases := []struct {
		raw      string
		expected jingle.Candidate
		err      error
	}{
		{
			"candidate:1 1 udp 2130706431 10.228.1.45 10000 typ host generation 0",
			jingle.Candidate{
				Foundation: "1", Component: 1, Protocol: "udp", Priority: 2130706431,
				IP:         "10.228.1.45", Port: 10000, Type: ice.CandidateTypeHost,
			},
			nil,
		},
		{
			"3 1 udp 1677724415 13.229.216.23 10000 typ srflx raddr 10.228.1.45 rport 10000 generation 2 network-id 1",
			jingle.Candidate{
				Foundation: "3", Component: 1, Protocol: "udp", Priority: 1677724415,
				IP:         "13.229.216.23", Port: 10000, Type: ice.CandidateTypeServerReflexive,
				RelAddr:    "10.228.1.45", RelPort: uint16Ptr(10000), Generation: 2, Network: 1,
			},
			nil,
		},
		{
			"842163049 1 udp 1677729535 2001:db8::1 51472 typ prflx ufrag 6r8f network-cost 999",
			jingle.Candidate{
				Foundation: "842163049", Component: 1, Protocol: "udp", Priority: 1677729535,
				IP:         "2001:db8::1", Port: 51472, Type: ice.CandidateTypePeerReflexive,
			},
			nil,
		},
		{
			"2 1 TCP 1518280447 192.0.2.10 9 typ host tcptype active generation 1",
			jingle.Candidate{
				Foundation: "2", Component: 1, Protocol: "tcp", Priority: 1518280447,
				IP:         "192.0.2.10", Port: 9, Type: ice.CandidateTypeHost, Generation: 1,
			},
			nil,
		},
		{"1 1 udp 2130706431 4f2a9c1e-8b0e.local 54321 typ host", jingle.Candidate{}, errCandidateAddress},
		{"1 1 udp 2130706431 10.0.0.1 54321 host", jingle.Candidate{}, errCandidateSyntax},
		{"1 1 udp 2130706431 10.0.0.1 54321 typ", jingle.Candidate{}, errCandidateSyntax},
		{"1 1 udp 2130706431 10.0.0.1 54321 typ unknown", jingle.Candidate{}, errCandidateSyntax},
		{"1 x udp 2130706431 10.0.0.1 54321 typ host", jingle.Candidate{}, errCandidateSyntax},
		{"1 1 udp 2130706431 10.0.0.1 65536 typ host", jingle.Candidate{}, errCandidateSyntax},
		{"1 1 udp 2130706431 10.0.0.1 54321 typ host generation", jingle.Candidate{}, errCandidateSyntax},
		{"1 1 udp 2130706431 10.0.0.1 54321 typ srflx raddr 10.0.0.2 rport x", jingle.Candidate{}, errCandidateSyntax},
		{"1 1 udp 2130706431 10.0.0.1 54321 typ srflx raddr 10.0.0.2", jingle.Candidate{}, errCandidateSyntax},
		{"1 1 udp 2130706431 10.0.0.1 54321 typ host generation x", jingle.Candidate{}, errCandidateSyntax},
		{"1 1 udp 2130706431 10.0.0.1 54321 typ host network-id 256", jingle.Candidate{}, errCandidateSyntax},
	}

	for i, testCase := range testCases {
		actual, err := unmarshalCandidate(testCase.raw)
		if testCase.err != nil {
			assert.ErrorIs(t, err, testCase.err, "testCase: %d %v", i, testCase)

			continue
		}
		assert.NoError(t, err, "testCase: %d %v", i, testCase)
		assert.Equal(t, testCase.expected, actual, "testCase: %d %v", i, testCase)
	}
}

func TestCandidateRoundTrip(t *testing.T) {
	candidate := jingle.Candidate{
		Foundation: "2", Component: 1, Protocol: "udp", Priority: 41885439,
		IP:         "198.51.100.7", Port: 3478, Type: ice.CandidateTypeRelay,
		RelAddr:    "203.0.113.4", RelPort: uint16Ptr(61000), Generation: 3,
	}

	raw, err := marshalCandidate(candidate)
	assert.NoError(t, err)

	actual, err := unmarshalCandidate(raw)
	assert.NoError(t, err)
	assert.Equal(t, candidate, actual)
}
