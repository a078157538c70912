// Package registry implements client.RegistryClient on top of a
// client.TxClient: one method per auction, bond and nameservice message, each
// of which blocks until its tx is committed, fails or times out.
package registry

import (
	"context"

	"cosmossdk.io/depinject"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/vulcanize/registry-client/pkg/client"
	"github.com/vulcanize/registry-client/pkg/client/keyring"
	"github.com/vulcanize/registry-client/pkg/polylog"
)

var _ client.RegistryClient = (*registryClient)(nil)

// registryClient signs and broadcasts registry module messages through its
// txClient, using the key named signingKeyName.
type registryClient struct {
	signingKeyName string
	signingAddr    cosmostypes.AccAddress

	logger   polylog.Logger
	txClient client.TxClient
	txCtx    client.TxContext
}

// operation names a registry operation in log lines; e.g. "auction creation
// request sent successfully" and "error in creating auction".
type operation struct {
	// noun completes "<noun> request sent successfully".
	noun string
	// gerund completes "error in <gerund>".
	gerund string
}

// NewRegistryClient constructs a new RegistryClient with the given dependencies
// and options. If a signingKeyName is not configured, an error will be returned.
//
// Required dependencies:
//   - polylog.Logger
//   - client.TxContext
//   - client.TxClient
//
// Available options:
//   - WithSigningKeyName
func NewRegistryClient(
	deps depinject.Config,
	opts ...client.RegistryClientOption,
) (client.RegistryClient, error) {
	rClient := &registryClient{}

	if err := depinject.Inject(
		deps,
		&rClient.logger,
		&rClient.txCtx,
		&rClient.txClient,
	); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(rClient)
	}

	if err := rClient.validateConfigAndSetDefaults(); err != nil {
		return nil, err
	}

	rClient.logger = rClient.logger.With(
		"component", "registry_client",
		"signing_address", rClient.signingAddr.String(),
	)

	return rClient, nil
}

// SigningAddress returns the address derived from the signing key.
func (rClient *registryClient) SigningAddress() cosmostypes.AccAddress {
	return rClient.signingAddr
}

// sendTxMessage signs and broadcasts msg and waits until its tx is committed,
// fails or times out, or ctx is done. The outcome is logged as op, and any
// failure is returned.
func (rClient *registryClient) sendTxMessage(
	ctx context.Context,
	op operation,
	msg cosmostypes.Msg,
) error {
	logger := rClient.logger.With("msg_type", cosmostypes.MsgTypeURL(msg))

	eitherErr := rClient.txClient.SignAndBroadcast(ctx, msg)
	errCh, err := eitherErr.SyncOrAsyncError()
	if err != nil {
		logger.Error().
			Err(err).
			Str("stage", "broadcast").
			Msgf("error in %s", op.gerund)
		return err
	}

	select {
	case err = <-errCh:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		logger.Error().
			Err(err).
			Str("stage", "commit").
			Msgf("error in %s", op.gerund)
		return err
	}

	logger.Info().Msgf("%s request sent successfully", op.noun)
	return nil
}

// validateConfigAndSetDefaults attempts to get the address from the keyring
// corresponding to the key whose name matches the configured signingKeyName.
// If signingKeyName is empty or the keyring does not contain the corresponding
// key, an error is returned.
func (rClient *registryClient) validateConfigAndSetDefaults() error {
	signingAddr, err := keyring.KeyNameToAddr(
		rClient.signingKeyName,
		rClient.txCtx.GetKeyring(),
	)
	if err != nil {
		return err
	}

	rClient.signingAddr = signingAddr

	return nil
}
