// Package cryptography implements the key-pair domain's CryptoEngine
// contract on top of the standard crypto/rsa, crypto/sha256 and crypto/x509
// primitives, and provides PEM import/export helpers for key material.
package cryptography
