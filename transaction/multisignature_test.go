// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phaetonhq/phaeton-transactions/cryptography"
	"github.com/phaetonhq/phaeton-transactions/fault"
	"github.com/phaetonhq/phaeton-transactions/fixtures"
	"github.com/phaetonhq/phaeton-transactions/transaction"
)

// members of the test group, two of three must sign
var members = []fixtures.Identity{fixtures.Alpha, fixtures.Beta, fixtures.Gamma}

func registration(t *testing.T) *transaction.Transaction {
	keys := make([]string, 0, len(members))
	for _, m := range members {
		keys = append(keys, m.PublicKey)
	}
	u, err := transaction.NewMultisignature(keys, 2, 24)
	if nil != err {
		t.Fatalf("builder error: %s", err)
	}
	return signed(t, u, fixtures.Sender.Passphrase, "")
}

func cosign(t *testing.T, tx *transaction.Transaction, id fixtures.Identity) *transaction.SignatureObject {
	s, err := transaction.CreateSignatureObject(tx, id.Passphrase)
	if nil != err {
		t.Fatalf("co-sign error: %s", err)
	}
	return s
}

func TestRegistrationStartsPending(t *testing.T) {
	store, teardown := setup(t)
	defer teardown()

	tx := registration(t)
	assert.Equal(t, transaction.MultisignaturePending, tx.InitialMultisignatureStatus(), "wrong initial status")

	response := tx.ProcessMultisignatures(store)
	assert.True(t, response.Pending(), "not pending: %v", response.Errors)
	assert.Equal(t, transaction.MultisignaturePending, response.Multisignature, "wrong status")
	assert.True(t, fault.OnlyPending(response.Errors), "errors: %v", response.Errors)
}

func TestRegistrationCollection(t *testing.T) {
	store, teardown := setup(t)
	defer teardown()

	fund(store, fixtures.Sender, 3000000000)
	tx := registration(t)

	// m-1 signatures
	response := tx.AddMultisignature(store, cosign(t, tx, fixtures.Alpha))
	assert.True(t, response.Pending(), "one of two: %v", response.Errors)
	assert.Equal(t, transaction.MultisignaturePending, response.Multisignature, "wrong status")

	// a signature already present
	response = tx.AddMultisignature(store, cosign(t, tx, fixtures.Alpha))
	assert.Equal(t, transaction.StatusFail, response.Status, "duplicate accepted")
	assert.Equal(t, fault.MultisignatureKind, response.Errors[0].Kind, "wrong kind")
	assert.Equal(t, 1, len(tx.Signatures()), "duplicate appended")

	// m signatures
	response = tx.AddMultisignature(store, cosign(t, tx, fixtures.Beta))
	assert.True(t, response.OK(), "errors: %v", response.Errors)
	assert.Equal(t, transaction.MultisignatureReady, response.Multisignature, "wrong status")
	assert.True(t, response.Multisignature.IsReady(), "not ready")

	response = tx.Apply(store)
	assert.True(t, response.OK(), "errors: %v", response.Errors)
	assert.Equal(t, transaction.MultisignatureReady, response.Multisignature, "wrong status")

	sender := store.GetOrDefault(fixtures.Sender.Address)
	assert.Equal(t, []string{fixtures.Alpha.PublicKey, fixtures.Beta.PublicKey, fixtures.Gamma.PublicKey}, sender.MembersPublicKeys, "wrong members")
	assert.Equal(t, 2, sender.MultiMin, "wrong min")
	assert.Equal(t, 24, sender.MultiLifetime, "wrong lifetime")
	assert.Equal(t, "1000000000", sender.Balance.String(), "wrong fee")

	for _, m := range members {
		a := store.GetOrDefault(m.Address)
		assert.Equal(t, m.PublicKey, a.PublicKey, "member key not recorded")
	}

	response = tx.Undo(store)
	assert.True(t, response.OK(), "errors: %v", response.Errors)
	sender = store.GetOrDefault(fixtures.Sender.Address)
	assert.Equal(t, 0, len(sender.MembersPublicKeys), "members not removed")
	assert.Equal(t, "3000000000", sender.Balance.String(), "fee not returned")
}

func TestRegistrationApplyPending(t *testing.T) {
	store, teardown := setup(t)
	defer teardown()

	fund(store, fixtures.Sender, 3000000000)
	tx := registration(t)

	response := tx.AddMultisignature(store, cosign(t, tx, fixtures.Gamma))
	assert.True(t, response.Pending(), "errors: %v", response.Errors)

	response = tx.Apply(store)
	assert.Equal(t, transaction.StatusPending, response.Status, "errors: %v", response.Errors)
	assert.Equal(t, transaction.MultisignaturePending, response.Multisignature, "wrong status")
}

func TestRegistrationRejectsNonMember(t *testing.T) {
	store, teardown := setup(t)
	defer teardown()

	tx := registration(t)

	response := tx.AddMultisignature(store, cosign(t, tx, fixtures.Delegate))
	assert.Equal(t, transaction.StatusFail, response.Status, "non member accepted")
	assert.Equal(t, "Public Key '"+fixtures.Delegate.PublicKey+"' is not a member.", response.Errors[0].Message, "wrong message")
	assert.Equal(t, 0, len(tx.Signatures()), "signature appended")
}

func TestRegistrationInvalidSignature(t *testing.T) {
	store, teardown := setup(t)
	defer teardown()

	tx := registration(t)

	// a real signature, but by a key outside the group
	outsider := cosign(t, tx, fixtures.Delegate)

	response := tx.AddVerifiedMultisignature(store, outsider.Signature)
	assert.Equal(t, transaction.StatusFail, response.Status, "invalid signature accepted")
	assert.Equal(t, transaction.MultisignatureFail, response.Multisignature, "wrong status")
	assert.True(t, hasMessage(response.Errors, "Failed to validate signature "+outsider.Signature), "errors: %v", response.Errors)
}

func TestRegistrationWrongSignatureForMember(t *testing.T) {
	store, teardown := setup(t)
	defer teardown()

	tx := registration(t)
	s := cosign(t, tx, fixtures.Alpha)
	s.Signature = cosign(t, tx, fixtures.Beta).Signature

	response := tx.AddMultisignature(store, s)
	assert.Equal(t, transaction.StatusFail, response.Status, "mismatched signature accepted")
	assert.Equal(t, "Failed to add signature '"+s.Signature+"'.", response.Errors[0].Message, "wrong message")
}

func TestMultisignatureAccountTransfer(t *testing.T) {
	store, teardown := setup(t)
	defer teardown()

	sender := fund(store, fixtures.Sender, 100000000)
	sender.MembersPublicKeys = []string{fixtures.Alpha.PublicKey, fixtures.Beta.PublicKey, fixtures.Gamma.PublicKey}
	sender.MultiMin = 2
	sender.MultiLifetime = 24
	store.Set(sender.Address, sender)

	tx := signed(t, referenceTransfer(), fixtures.Sender.Passphrase, "")
	assert.Equal(t, transaction.MultisignatureUnknown, tx.InitialMultisignatureStatus(), "wrong initial status")

	response := tx.ProcessMultisignatures(store)
	assert.True(t, response.Pending(), "no signatures: %v", response.Errors)

	response = tx.AddMultisignature(store, cosign(t, tx, fixtures.Delegate))
	assert.Equal(t, "Public Key '"+fixtures.Delegate.PublicKey+"' is not a member for account '"+fixtures.Sender.Address+"'.", response.Errors[0].Message, "wrong message")

	response = tx.AddMultisignature(store, cosign(t, tx, fixtures.Beta))
	assert.True(t, response.Pending(), "m-1 signatures: %v", response.Errors)

	response = tx.AddMultisignature(store, cosign(t, tx, fixtures.Gamma))
	assert.Equal(t, transaction.MultisignatureReady, response.Multisignature, "m signatures: %v", response.Errors)

	response = tx.Apply(store)
	assert.True(t, response.OK(), "errors: %v", response.Errors)
	assert.Equal(t, "40000000", balanceOf(store, fixtures.Sender.Address), "wrong balance")
}

func TestSignaturesWithoutGroup(t *testing.T) {
	store, teardown := setup(t)
	defer teardown()

	fund(store, fixtures.Sender, 100000000)
	tx := signed(t, referenceTransfer(), fixtures.Sender.Passphrase, "")

	basic, err := tx.BasicBytes()
	assert.Nil(t, err, "basic bytes")
	signature := cryptography.SignData(cryptography.Hash(basic), fixtures.Alpha.Passphrase)

	response := tx.AddVerifiedMultisignature(store, signature)
	assert.Equal(t, transaction.MultisignatureFail, response.Multisignature, "wrong status")
	assert.True(t, hasMessage(response.Errors, "Sender is not a multisignature account"), "errors: %v", response.Errors)
	assert.Equal(t, 0, len(tx.Signatures()), "signature appended")
}

func TestDuplicateSignaturesInPayload(t *testing.T) {
	store, teardown := setup(t)
	defer teardown()

	tx := registration(t)
	s := cosign(t, tx, fixtures.Alpha)

	j := tx.JSON()
	j.Signatures = []string{s.Signature, s.Signature}
	tx, err := transaction.New(j)
	assert.Nil(t, err, "rebuild")

	response := tx.ProcessMultisignatures(store)
	assert.Equal(t, transaction.MultisignatureFail, response.Multisignature, "wrong status")
	assert.True(t, hasMessage(response.Errors, "Encountered duplicate signature in transaction"), "errors: %v", response.Errors)
}

func TestAddSignatureWithoutGroup(t *testing.T) {
	store, teardown := setup(t)
	defer teardown()

	fund(store, fixtures.Sender, 100000000)
	tx := signed(t, referenceTransfer(), fixtures.Sender.Passphrase, "")

	response := tx.AddMultisignature(store, cosign(t, tx, fixtures.Alpha))
	assert.Equal(t, transaction.StatusFail, response.Status, "signature accepted")
	assert.Equal(t, "Public Key '"+fixtures.Alpha.PublicKey+"' is not a member for account '"+fixtures.Sender.Address+"'.", response.Errors[0].Message, "wrong message")
	assert.Equal(t, 0, len(tx.Signatures()), "signature appended")

	response = tx.ProcessMultisignatures(store)
	assert.Equal(t, transaction.MultisignatureNone, response.Multisignature, "status changed")

	response = tx.Apply(store)
	assert.True(t, response.OK(), "errors: %v", response.Errors)
}

func TestAddSignatureForOtherTransaction(t *testing.T) {
	store, teardown := setup(t)
	defer teardown()

	tx := registration(t)
	other := signed(t, referenceTransfer(), fixtures.Sender.Passphrase, "")

	response := tx.AddMultisignature(store, cosign(t, other, fixtures.Alpha))
	assert.Equal(t, transaction.StatusFail, response.Status, "signature accepted")
	assert.Equal(t, fault.ErrWrongTransactionSignature.Error(), response.Errors[0].Message, "wrong message")
	assert.Equal(t, 0, len(tx.Signatures()), "signature appended")
}

func TestRegistrationFailsWithExtraOutsider(t *testing.T) {
	store, teardown := setup(t)
	defer teardown()

	tx := registration(t)
	alpha := cosign(t, tx, fixtures.Alpha)
	beta := cosign(t, tx, fixtures.Beta)
	outsider := cosign(t, tx, fixtures.Delegate)

	tx.AddMultisignature(store, alpha)
	response := tx.AddMultisignature(store, beta)
	assert.Equal(t, transaction.MultisignatureReady, response.Multisignature, "errors: %v", response.Errors)

	// enough valid signatures do not outweigh an unauthorised one
	response = tx.AddVerifiedMultisignature(store, outsider.Signature)
	assert.Equal(t, transaction.MultisignatureFail, response.Multisignature, "outsider accepted")
	assert.Equal(t, 2, len(tx.Signatures()), "signature list changed")

	response = tx.ProcessMultisignatures(store)
	assert.Equal(t, transaction.MultisignatureReady, response.Multisignature, "status not kept")

	j := tx.JSON()
	j.Signatures = []string{alpha.Signature, beta.Signature, outsider.Signature}
	crafted, err := transaction.New(j)
	assert.Nil(t, err, "rebuild")

	response = crafted.ProcessMultisignatures(store)
	assert.Equal(t, transaction.MultisignatureFail, response.Multisignature, "outsider accepted")
	assert.True(t, hasMessage(response.Errors, "Failed to validate signature "+outsider.Signature), "errors: %v", response.Errors)
}

func TestAccountTransferFailsWithExtraOutsider(t *testing.T) {
	store, teardown := setup(t)
	defer teardown()

	sender := fund(store, fixtures.Sender, 100000000)
	sender.MembersPublicKeys = []string{fixtures.Alpha.PublicKey, fixtures.Beta.PublicKey, fixtures.Gamma.PublicKey}
	sender.MultiMin = 2
	sender.MultiLifetime = 24
	store.Set(sender.Address, sender)

	tx := signed(t, referenceTransfer(), fixtures.Sender.Passphrase, "")
	alpha := cosign(t, tx, fixtures.Alpha)
	beta := cosign(t, tx, fixtures.Beta)
	outsider := cosign(t, tx, fixtures.Delegate)

	tx.AddMultisignature(store, alpha)
	response := tx.AddMultisignature(store, beta)
	assert.Equal(t, transaction.MultisignatureReady, response.Multisignature, "errors: %v", response.Errors)

	response = tx.AddVerifiedMultisignature(store, outsider.Signature)
	assert.Equal(t, transaction.MultisignatureFail, response.Multisignature, "outsider accepted")
	assert.Equal(t, 2, len(tx.Signatures()), "signature list changed")

	j := tx.JSON()
	j.Signatures = []string{alpha.Signature, outsider.Signature, beta.Signature}
	crafted, err := transaction.New(j)
	assert.Nil(t, err, "rebuild")

	response = crafted.ProcessMultisignatures(store)
	assert.Equal(t, transaction.MultisignatureFail, response.Multisignature, "outsider accepted")

	response = crafted.Apply(store)
	assert.Equal(t, transaction.StatusFail, response.Status, "applied with outsider signature")
}
