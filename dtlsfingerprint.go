// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jinglesdp

import (
	"fmt"
	"strings"

	"github.com/pion/dtls/v3/pkg/crypto/fingerprint"
	"github.com/pion/jinglesdp/pkg/jingle"
)

// fingerprintHashName returns the RFC 4572 textual name of a hash function,
// see https://www.iana.org/assignments/hash-function-text-names.
func fingerprintHashName(hash jingle.HashAlgorithm) (string, error) {
	switch hash {
	case jingle.HashAlgorithmSHA1, jingle.HashAlgorithmSHA256, jingle.HashAlgorithmSHA512:
		cryptoHash, err := hash.CryptoHash()
		if err != nil {
			return "", err
		}

		return fingerprint.StringFromHash(cryptoHash)
	case jingle.HashAlgorithmSHA224, jingle.HashAlgorithmSHA384,
		jingle.HashAlgorithmSHAKE128, jingle.HashAlgorithmSHAKE256,
		jingle.HashAlgorithmMD5, jingle.HashAlgorithmMD2:
		return hash.String(), nil
	default:
		return "", fmt.Errorf("%w: %s", errHashNotAllowed, hash)
	}
}

// fingerprintAttributeParts returns the hash name and the upper case hex
// value of a fingerprint attribute.
func fingerprintAttributeParts(fp *jingle.Fingerprint) (string, string, error) {
	hash, err := fingerprintHashName(fp.Hash)
	if err != nil {
		return "", "", err
	}

	if len(fp.Value) == 0 {
		return "", "", errFingerprintNoValue
	}

	return hash, fp.ColonHex(), nil
}

// parseFingerprintAttribute parses "<hash> <colon hex>". Hash names are
// case insensitive.
func parseFingerprintAttribute(raw string, setup jingle.Setup) (*jingle.Fingerprint, error) {
	parts := strings.Fields(raw)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %s", errFingerprintSyntax, raw)
	}

	hash, err := jingle.NewHashAlgorithm(strings.ToLower(parts[0]))
	if err != nil {
		return nil, err
	}
	if _, err = fingerprintHashName(hash); err != nil {
		return nil, err
	}

	return jingle.NewFingerprintFromColonHex(setup, hash, parts[1])
}
