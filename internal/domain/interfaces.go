package domain

// CipherService encrypts and decrypts with a fixed key square.
type CipherService interface {
	Encrypt(plaintext string) string
	Decrypt(ciphertext string) string
	Render() string
	Fingerprint() Fingerprint
}
