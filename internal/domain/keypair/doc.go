// Package keypair models a single asymmetric RSA key pair: generating it,
// persisting it to a secure credential store, and using it for encryption,
// decryption, signing and signature verification.
//
// The package defines the KeyPair entity, the Factory that constructs it,
// and the CryptoEngine and SecureStore contracts it delegates to. Raw
// cryptographic primitives and durable storage live behind those contracts
// in the infrastructure layer.
package keypair
