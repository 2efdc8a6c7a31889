// Package encryption implements password-based file encryption with SHACAL-2 in CBC mode.
//
// A 32-byte key is derived from the password with PBKDF2-HMAC-SHA256 over a random 16-byte salt.
// The file is padded with PKCS#7 and encrypted under a random 32-byte IV. The encrypted file is
//
//	salt (16) ‖ IV (32) ‖ ciphertext (multiple of 32)
//
// There is no authentication tag: tampering is only noticed if it breaks the padding.
package encryption
