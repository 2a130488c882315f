// Package export writes the search history out of the store and reads it
// back in: a JSON document (optionally passphrase-encrypted) and a PDF report.
package export

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/scrypt"

	"github.com/akyairhashvil/searchhist/internal/models"
)

var (
	ErrPassphraseRequired = errors.New("export is encrypted; passphrase required")
	ErrWrongPassphrase    = errors.New("incorrect passphrase or damaged export")
)

const (
	kdfName    = "scrypt"
	scryptN    = 1 << 15
	scryptR    = 8
	scryptP    = 1
	keyLength  = 32
	saltLength = 16
)

type Document struct {
	AppVersion string                `json:"app_version"`
	ExportedAt string                `json:"exported_at"`
	Entries    []models.HistoryEntry `json:"entries"`
}

type encryptedDocument struct {
	Encrypted  bool   `json:"encrypted"`
	AppVersion string `json:"app_version"`
	ExportedAt string `json:"exported_at"`
	KDF        string `json:"kdf"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	Data       string `json:"data"`
}

// NewDocument snapshots h in iteration order.
func NewDocument(h *models.HistoryMap, appVersion string, at time.Time) Document {
	entries := h.Entries()
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return Document{
		AppVersion: appVersion,
		ExportedAt: at.UTC().Format(time.RFC3339),
		Entries:    entries,
	}
}

// WriteJSON writes doc to path. A non-empty passphrase encrypts the payload.
func WriteJSON(path string, doc Document, passphrase string) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if passphrase != "" {
		payload, err = encrypt(payload, passphrase, doc)
		if err != nil {
			return fmt.Errorf("encrypt export: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

// ReadJSON reads an export written by WriteJSON.
func ReadJSON(path, passphrase string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	var probe struct {
		Encrypted bool `json:"encrypted"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Document{}, fmt.Errorf("decode export: %w", err)
	}
	if probe.Encrypted {
		if passphrase == "" {
			return Document{}, ErrPassphraseRequired
		}
		data, err = decrypt(data, passphrase)
		if err != nil {
			return Document{}, err
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode export: %w", err)
	}
	return doc, nil
}

// IsEncrypted reports whether the export at path needs a passphrase.
func IsEncrypted(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	var probe struct {
		Encrypted bool `json:"encrypted"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false, fmt.Errorf("decode export: %w", err)
	}
	return probe.Encrypted, nil
}

func deriveKey(passphrase string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, keyLength)
}

func encrypt(payload []byte, passphrase string, doc Document) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	wrapped := encryptedDocument{
		Encrypted:  true,
		AppVersion: doc.AppVersion,
		ExportedAt: doc.ExportedAt,
		KDF:        kdfName,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Data:       base64.StdEncoding.EncodeToString(gcm.Seal(nil, nonce, payload, nil)),
	}
	return json.MarshalIndent(wrapped, "", "  ")
}

func decrypt(data []byte, passphrase string) ([]byte, error) {
	var wrapped encryptedDocument
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	if wrapped.KDF != kdfName {
		return nil, fmt.Errorf("unsupported key derivation %q", wrapped.KDF)
	}
	salt, err := base64.StdEncoding.DecodeString(wrapped.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	nonce, err := base64.StdEncoding.DecodeString(wrapped.Nonce)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	ciphertext, err := base64.StdEncoding.DecodeString(wrapped.Data)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return plain, nil
}
