// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jingle

import (
	"crypto"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pion/dtls/v3/pkg/crypto/fingerprint"
)

// HashAlgorithm names the hash function of a fingerprint. The set covers the
// RFC 4572 textual names and the XEP-0300 names Jingle peers may send.
type HashAlgorithm int

const (
	// HashAlgorithmSHA1 is SHA-1.
	HashAlgorithmSHA1 HashAlgorithm = iota + 1
	// HashAlgorithmSHA224 is SHA-224.
	HashAlgorithmSHA224
	// HashAlgorithmSHA256 is SHA-256.
	HashAlgorithmSHA256
	// HashAlgorithmSHA384 is SHA-384.
	HashAlgorithmSHA384
	// HashAlgorithmSHA512 is SHA-512.
	HashAlgorithmSHA512
	// HashAlgorithmSHAKE128 is SHAKE128.
	HashAlgorithmSHAKE128
	// HashAlgorithmSHAKE256 is SHAKE256.
	HashAlgorithmSHAKE256
	// HashAlgorithmMD5 is MD5.
	HashAlgorithmMD5
	// HashAlgorithmMD2 is MD2.
	HashAlgorithmMD2
	// HashAlgorithmSHA3256 is SHA3-256, defined by XEP-0300 only.
	HashAlgorithmSHA3256
	// HashAlgorithmSHA3512 is SHA3-512, defined by XEP-0300 only.
	HashAlgorithmSHA3512
	// HashAlgorithmBLAKE2b256 is BLAKE2b-256, defined by XEP-0300 only.
	HashAlgorithmBLAKE2b256
	// HashAlgorithmBLAKE2b512 is BLAKE2b-512, defined by XEP-0300 only.
	HashAlgorithmBLAKE2b512
)

var hashAlgorithmStrings = map[HashAlgorithm]string{ //nolint:gochecknoglobals
	HashAlgorithmSHA1:       "sha-1",
	HashAlgorithmSHA224:     "sha-224",
	HashAlgorithmSHA256:     "sha-256",
	HashAlgorithmSHA384:     "sha-384",
	HashAlgorithmSHA512:     "sha-512",
	HashAlgorithmSHAKE128:   "shake128",
	HashAlgorithmSHAKE256:   "shake256",
	HashAlgorithmMD5:        "md5",
	HashAlgorithmMD2:        "md2",
	HashAlgorithmSHA3256:    "sha3-256",
	HashAlgorithmSHA3512:    "sha3-512",
	HashAlgorithmBLAKE2b256: "blake2b-256",
	HashAlgorithmBLAKE2b512: "blake2b-512",
}

// NewHashAlgorithm parses a hash function textual name. Names are matched
// case sensitively, as both registries define them in lower case.
func NewHashAlgorithm(raw string) (HashAlgorithm, error) {
	for algo, str := range hashAlgorithmStrings {
		if str == raw {
			return algo, nil
		}
	}

	return HashAlgorithm(0), fmt.Errorf("%w: %s", errInvalidHashAlgorithmString, raw)
}

func (h HashAlgorithm) String() string {
	if str, ok := hashAlgorithmStrings[h]; ok {
		return str
	}

	return ErrUnknownType.Error()
}

// CryptoHash returns the crypto.Hash usable for certificate fingerprints.
func (h HashAlgorithm) CryptoHash() (crypto.Hash, error) {
	hash, err := fingerprint.HashFromString(h.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errHashNotSupportedByDTLS, h)
	}

	return hash, nil
}

// UnmarshalJSON parses the JSON-encoded data and stores the result.
func (h *HashAlgorithm) UnmarshalJSON(b []byte) error {
	var val string
	if err := json.Unmarshal(b, &val); err != nil {
		return err
	}

	algo, err := NewHashAlgorithm(val)
	if err != nil {
		return err
	}
	*h = algo

	return nil
}

// MarshalJSON returns the JSON encoding.
func (h HashAlgorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// Setup is the DTLS connection role announced with a fingerprint (RFC 4145).
type Setup int

const (
	// SetupActive indicates the endpoint initiates the DTLS handshake.
	SetupActive Setup = iota + 1

	// SetupPassive indicates the endpoint accepts the DTLS handshake.
	SetupPassive

	// SetupActpass indicates the endpoint is willing to take either role.
	SetupActpass
)

// This is done this way because of a linter.
const (
	setupActiveStr  = "active"
	setupPassiveStr = "passive"
	setupActpassStr = "actpass"
)

// NewSetup parses the textual form of a DTLS setup role.
func NewSetup(raw string) (Setup, error) {
	switch raw {
	case setupActiveStr:
		return SetupActive, nil
	case setupPassiveStr:
		return SetupPassive, nil
	case setupActpassStr:
		return SetupActpass, nil
	default:
		return Setup(0), fmt.Errorf("%w: %s", errInvalidSetupString, raw)
	}
}

func (s Setup) String() string {
	switch s {
	case SetupActive:
		return setupActiveStr
	case SetupPassive:
		return setupPassiveStr
	case SetupActpass:
		return setupActpassStr
	default:
		return ErrUnknownType.Error()
	}
}

// UnmarshalJSON parses the JSON-encoded data and stores the result.
func (s *Setup) UnmarshalJSON(b []byte) error {
	var val string
	if err := json.Unmarshal(b, &val); err != nil {
		return err
	}

	setup, err := NewSetup(val)
	if err != nil {
		return err
	}
	*s = setup

	return nil
}

// MarshalJSON returns the JSON encoding.
func (s Setup) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Fingerprint is the DTLS-SRTP certificate fingerprint of a transport
// (XEP-0320).
type Fingerprint struct {
	Hash  HashAlgorithm `json:"hash"`
	Setup Setup         `json:"setup"`
	Value []byte        `json:"value"`
}

// NewFingerprintFromColonHex creates a fingerprint from its colon separated
// hex form, e.g. "9F:21:D6".
func NewFingerprintFromColonHex(setup Setup, hash HashAlgorithm, value string) (*Fingerprint, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidFingerprint)
	}

	parts := strings.Split(value, ":")
	raw := make([]byte, 0, len(parts))
	for _, part := range parts {
		if len(part) != 2 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFingerprint, value)
		}
		b, err := hex.DecodeString(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFingerprint, err)
		}
		raw = append(raw, b[0])
	}

	return &Fingerprint{Hash: hash, Setup: setup, Value: raw}, nil
}

// FingerprintFromCertificate computes the fingerprint of a certificate.
func FingerprintFromCertificate(cert *x509.Certificate, hash HashAlgorithm, setup Setup) (*Fingerprint, error) {
	cryptoHash, err := hash.CryptoHash()
	if err != nil {
		return nil, err
	}

	value, err := fingerprint.Fingerprint(cert, cryptoHash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFingerprint, err)
	}

	return NewFingerprintFromColonHex(setup, hash, value)
}

// ColonHex renders the value as upper case colon separated hex.
func (f Fingerprint) ColonHex() string {
	parts := make([]string, len(f.Value))
	for i, b := range f.Value {
		parts[i] = fmt.Sprintf("%02X", b)
	}

	return strings.Join(parts, ":")
}
