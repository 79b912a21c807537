package payout

import (
	"context"
	"fmt"

	"github.com/fox-one/mixin-sdk-go"
	"github.com/gofrs/uuid"
)

type MixinSender struct {
	client *mixin.Client
	pin    string
}

func NewMixinSender(ctx context.Context, conf *Configuration) (*MixinSender, error) {
	s := &mixin.Keystore{
		ClientID:   conf.ClientId,
		SessionID:  conf.SessionId,
		PrivateKey: conf.PrivateKey,
		PinToken:   conf.PinToken,
	}
	client, err := mixin.NewFromKeystore(s)
	if err != nil {
		return nil, err
	}
	err = client.VerifyPin(ctx, conf.PIN)
	if err != nil {
		return nil, err
	}
	return &MixinSender{client: client, pin: conf.PIN}, nil
}

func (ms *MixinSender) Transfer(ctx context.Context, assetId string, tx *Transaction) (string, error) {
	amount, err := parseAmount(tx.Amount)
	if err != nil {
		return "", err
	}
	id, _ := uuid.FromString(tx.Receiver)
	if id == uuid.Nil {
		return "", fmt.Errorf("%w: invalid receiver %s", ErrRejected, tx.Receiver)
	}
	in := &mixin.TransferInput{
		AssetID:    assetId,
		OpponentID: tx.Receiver,
		Amount:     amount,
		TraceID:    tx.TraceId,
		Memo:       tx.Memo,
	}
	snap, err := ms.client.Transfer(ctx, in, ms.pin)
	if err != nil {
		return "", err
	}
	return snap.SnapshotID, nil
}
