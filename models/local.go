package models

import "time"

// StoredKeyPair is the device-local record of a principal's keypair.
// The private key is sealed with a key derived from the account password.
type StoredKeyPair struct {
	Principal        Principal
	PublicKey        []byte
	SealedPrivateKey []byte
	Salt             []byte
	CreatedAt        time.Time
}

func (k StoredKeyPair) TableName() string {
	return "keypairs"
}

// LocalSession is the last token obtained on this device.
type LocalSession struct {
	Login     string
	Principal Principal
	Token     string
	CreatedAt time.Time
}

func (s LocalSession) TableName() string {
	return "sessions"
}
