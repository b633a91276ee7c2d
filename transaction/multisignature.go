// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"fmt"

	"github.com/phaetonhq/phaeton-transactions/account"
	"github.com/phaetonhq/phaeton-transactions/cryptography"
	"github.com/phaetonhq/phaeton-transactions/fault"
)

// SignatureObject - a co-signature offered for a transaction
type SignatureObject struct {
	TransactionID string `json:"transactionId"`
	PublicKey     string `json:"publicKey"`
	Signature     string `json:"signature"`
}

// CreateSignatureObject - co-sign a transaction with a member passphrase
func CreateSignatureObject(tx *Transaction, passphrase string) (*SignatureObject, error) {
	if "" == passphrase {
		return nil, fault.ErrMissingPassphrase
	}
	basic, err := tx.BasicBytes()
	if nil != err {
		return nil, err
	}
	keyPair := cryptography.KeysFromPassphrase(passphrase)
	return &SignatureObject{
		TransactionID: tx.id,
		PublicKey:     keyPair.PublicKeyHex(),
		Signature:     cryptography.SignDataWithPrivateKey(cryptography.Hash(basic), keyPair.PrivateKey),
	}, nil
}

// ProcessMultisignatures - evaluate the collected signatures
//
// the signers and threshold come from the sender account, or from the
// asset itself for a multisignature registration
func (tx *Transaction) ProcessMultisignatures(store AccountStore) *Response {
	return tx.processMultisignatures(store.GetOrDefault(tx.senderID))
}

func (tx *Transaction) processMultisignatures(sender *account.Account) *Response {
	publicKeys := sender.MembersPublicKeys
	minimum := sender.MultiMin
	if group, ok := tx.asset.(signerGroup); ok {
		publicKeys, minimum = group.signers()
	} else if 0 == len(publicKeys) {
		if 0 != len(tx.signatures) {
			return tx.multisignatureResponse(MultisignatureFail, []*fault.TransactionError{
				fault.NewTransactionError(fault.MultisignatureKind, "Sender is not a multisignature account", tx.id, ".signatures"),
			})
		}
		return tx.multisignatureResponse(MultisignatureNone, nil)
	}

	basic, err := tx.BasicBytes()
	if nil != err {
		return tx.multisignatureResponse(MultisignatureFail, []*fault.TransactionError{
			fault.NewTransactionError(fault.SchemaKind, err.Error(), tx.id, ""),
		})
	}

	errors := validateMultisignatures(tx.id, publicKeys, tx.signatures, minimum, cryptography.Hash(basic))
	switch {
	case 0 == len(errors):
		return tx.multisignatureResponse(MultisignatureReady, nil)
	case fault.OnlyPending(errors):
		return newPendingResponse(tx.id, errors)
	default:
		return tx.multisignatureResponse(MultisignatureFail, errors)
	}
}

func (tx *Transaction) multisignatureResponse(status MultisignatureStatus, errors []*fault.TransactionError) *Response {
	response := newResponse(tx.id, errors)
	response.Multisignature = status
	return response
}

// match each signature to a distinct authorised key
func validateMultisignatures(id string, publicKeys []string, signatures []string, minimum int, digest []byte) []*fault.TransactionError {
	seen := make(map[string]struct{}, len(signatures))
	for _, s := range signatures {
		if _, ok := seen[s]; ok {
			return []*fault.TransactionError{
				fault.NewTransactionError(fault.MultisignatureKind, "Encountered duplicate signature in transaction", id, ".signatures"),
			}
		}
		seen[s] = struct{}{}
	}

	if 0 == len(signatures) {
		return []*fault.TransactionError{
			fault.NewTransactionErrorWithValues(fault.PendingKind, "Missing signatures", id, ".signatures", 0, minimum),
		}
	}

	used := make(map[string]struct{}, len(publicKeys))
	errors := []*fault.TransactionError{}
	valid := 0
next:
	for _, s := range signatures {
		for _, publicKey := range publicKeys {
			if _, ok := used[publicKey]; ok {
				continue
			}
			if cryptography.VerifyData(digest, s, publicKey) {
				used[publicKey] = struct{}{}
				valid += 1
				continue next
			}
		}
		errors = append(errors, fault.NewTransactionError(fault.MultisignatureKind, "Failed to validate signature "+s, id, ".signatures"))
	}

	if valid < minimum {
		errors = append(errors, fault.NewTransactionErrorWithValues(fault.PendingKind, "Missing signatures", id, ".signatures", valid, minimum))
	}
	return errors
}

// AddMultisignature - verify and append a co-signature
//
// a rejected signature or a FAIL result leaves the signatures unchanged
func (tx *Transaction) AddMultisignature(store AccountStore, signature *SignatureObject) *Response {
	if signature.TransactionID != tx.id {
		return tx.rejectSignature(fault.ErrWrongTransactionSignature.Error(), "")
	}

	if group, ok := tx.asset.(signerGroup); ok {
		publicKeys, _ := group.signers()
		if !containsString(publicKeys, signature.PublicKey) {
			return tx.rejectSignature(fmt.Sprintf("Public Key '%s' is not a member.", signature.PublicKey), "")
		}
	} else {
		sender := store.GetOrDefault(tx.senderID)
		if !sender.IsMultisignature() || !sender.IsMember(signature.PublicKey) {
			return tx.rejectSignature(fmt.Sprintf("Public Key '%s' is not a member for account '%s'.", signature.PublicKey, sender.Address), "")
		}
	}

	if containsString(tx.signatures, signature.Signature) {
		return tx.rejectSignature(fmt.Sprintf("Signature '%s' already present in transaction.", signature.Signature), "")
	}

	basic, err := tx.BasicBytes()
	if nil != err || !cryptography.VerifyData(cryptography.Hash(basic), signature.Signature, signature.PublicKey) {
		return tx.rejectSignature(fmt.Sprintf("Failed to add signature '%s'.", signature.Signature), ".signatures")
	}

	return tx.appendSignature(store, signature.Signature)
}

// AddVerifiedMultisignature - append a co-signature checked elsewhere
//
// a FAIL result leaves the signatures unchanged
func (tx *Transaction) AddVerifiedMultisignature(store AccountStore, signature string) *Response {
	if containsString(tx.signatures, signature) {
		return tx.rejectSignature("Failed to add signature.", ".signatures")
	}
	return tx.appendSignature(store, signature)
}

// append then evaluate, restoring the previous list on FAIL
func (tx *Transaction) appendSignature(store AccountStore, signature string) *Response {
	previous := tx.signatures
	signatures := make([]string, 0, len(previous)+1)
	signatures = append(signatures, previous...)
	tx.signatures = append(signatures, signature)

	response := tx.ProcessMultisignatures(store)
	if MultisignatureFail == response.Multisignature {
		tx.signatures = previous
	}
	return response
}

func (tx *Transaction) rejectSignature(message string, dataPath string) *Response {
	return newResponse(tx.id, []*fault.TransactionError{
		fault.NewTransactionError(fault.MultisignatureKind, message, tx.id, dataPath),
	})
}

func containsString(list []string, item string) bool {
	for _, s := range list {
		if s == item {
			return true
		}
	}
	return false
}
