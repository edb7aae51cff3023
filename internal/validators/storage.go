// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-file-vault/models"
)

// Field names accepted by StorageValidator.Validate to restrict validation
// to a subset of fields.
const (
	// FieldFileName targets the plaintext file name of an upload.
	FieldFileName = "file_name"

	// FieldNumChunks targets the announced chunk count of an upload.
	FieldNumChunks = "num_chunks"

	// FieldOwnerKey targets the file key wrapped for the resource owner.
	FieldOwnerKey = "owner_key"

	// FieldRecipient targets the principal of a share grant.
	FieldRecipient = "recipient"

	// FieldWrappedKey targets the file key wrapped for a recipient.
	FieldWrappedKey = "wrapped_key"
)

// StorageValidator validates the models accepted by the storage service:
// FileUpload, ShareGrant, a list of grants and a list of principals to
// revoke.
type StorageValidator struct{}

func NewStorageValidator() Validator {
	return &StorageValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted. Fields apply to FileUpload and ShareGrant; lists pass them
// on to each element.
func (v *StorageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FileUpload:
		return v.validateFileUpload(value, fields...)
	case *models.FileUpload:
		return v.validateFileUpload(*value, fields...)

	case models.ShareGrant:
		return v.validateShareGrant(value, fields...)
	case *models.ShareGrant:
		return v.validateShareGrant(*value, fields...)

	case []models.ShareGrant:
		return v.validateShareGrants(value, fields...)

	case []models.Principal:
		return v.validateRecipients(value)

	default:
		return ErrUnsupportedType
	}
}

// validateFileUpload checks FileName, NumChunks and OwnerKey by default.
// Chunk contents are checked by the caller against its size limit.
func (v *StorageValidator) validateFileUpload(upload models.FileUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldNumChunks, FieldOwnerKey}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			if err := validateFileName(upload.FileName); err != nil {
				return err
			}
		case FieldNumChunks:
			if upload.NumChunks == 0 {
				return ErrInvalidNumChunks
			}
		case FieldOwnerKey:
			if len(upload.OwnerKey) == 0 {
				return ErrEmptyOwnerKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateFileName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyFileName
	}
	if strings.ContainsAny(name, `/\`) {
		return ErrInvalidFileName
	}
	return nil
}

func (v *StorageValidator) validateShareGrant(grant models.ShareGrant, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecipient, FieldWrappedKey}
	}

	for _, f := range fields {
		switch f {
		case FieldRecipient:
			if grant.Recipient.IsAnonymous() {
				return ErrAnonymousRecipient
			}
		case FieldWrappedKey:
			if len(grant.WrappedKey) == 0 {
				return ErrEmptyWrappedKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateShareGrants requires at least one grant and one grant per
// recipient.
func (v *StorageValidator) validateShareGrants(grants []models.ShareGrant, fields ...string) error {
	if len(grants) == 0 {
		return ErrEmptyGrants
	}

	seen := make(map[models.Principal]struct{}, len(grants))
	for _, g := range grants {
		if err := v.validateShareGrant(g, fields...); err != nil {
			return err
		}
		if _, ok := seen[g.Recipient]; ok {
			return ErrDuplicateRecipient
		}
		seen[g.Recipient] = struct{}{}
	}
	return nil
}

func (v *StorageValidator) validateRecipients(recipients []models.Principal) error {
	if len(recipients) == 0 {
		return ErrEmptyRecipients
	}
	for _, r := range recipients {
		if r.IsAnonymous() {
			return ErrAnonymousRecipient
		}
	}
	return nil
}
