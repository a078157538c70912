package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vulcanize/registry-client/pkg/client"
	registryconfig "github.com/vulcanize/registry-client/pkg/registry/config"
	"github.com/vulcanize/registry-client/testutil/mockclient"
	"github.com/vulcanize/registry-client/testutil/sample"
)

const (
	testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	// testSigningAddress is the address derived from testMnemonic at m/44'/118'/0'/0/0.
	testSigningAddress = "cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4"
)

type txCmdTest struct {
	desc string
	// newCmd returns the group command under which args are executed.
	newCmd func() *cobra.Command
	args   []string
	expect func(registryClientMock *mockclient.MockRegistryClientMockRecorder, signer string)
}

func TestTxCmds(t *testing.T) {
	for _, tt := range newTxCmdTests() {
		t.Run(tt.desc, func(t *testing.T) {
			signingAddr := cosmostypes.MustAccAddressFromBech32(sample.AccAddress())
			registryClientMock := setupRegistryClientMock(t, signingAddr)
			tt.expect(registryClientMock.EXPECT(), signingAddr.String())

			_, err := executeCmd(t, tt.newCmd(), tt.args...)
			require.NoError(t, err)
		})
	}
}

func TestTxCmds_SignerFlag(t *testing.T) {
	signingAddr := cosmostypes.MustAccAddressFromBech32(sample.AccAddress())
	otherSigner := sample.AccAddress()

	registryClientMock := setupRegistryClientMock(t, signingAddr)
	registryClientMock.EXPECT().
		CancelBond(gomock.Any(), "bond1", otherSigner).
		Return(nil).
		Times(1)

	_, err := executeCmd(t, BondCmd(), "cancel", "bond1", "--signer", otherSigner)
	require.NoError(t, err)
}

func TestTxCmds_ClientError(t *testing.T) {
	signingAddr := cosmostypes.MustAccAddressFromBech32(sample.AccAddress())
	expectedErr := errors.New("tx timed out")

	registryClientMock := setupRegistryClientMock(t, signingAddr)
	registryClientMock.EXPECT().
		RenewRecord(gomock.Any(), "record1", signingAddr.String()).
		Return(expectedErr).
		Times(1)

	_, err := executeCmd(t, NameserviceCmd(), "renew-record", "record1")
	require.ErrorIs(t, err, expectedErr)
}

func TestTxCmds_InvalidArgs(t *testing.T) {
	tests := []struct {
		desc        string
		newCmd      func() *cobra.Command
		args        []string
		expectedErr error
	}{
		{
			desc:        "create auction with malformed duration",
			newCmd:      AuctionCmd,
			args:        []string{"create", "five-minutes", "5m", "10aphoton", "10aphoton", "100aphoton"},
			expectedErr: ErrRegistryCmdInvalidArg,
		},
		{
			desc:        "create auction with non-positive duration",
			newCmd:      AuctionCmd,
			args:        []string{"create", "5m", "0s", "10aphoton", "10aphoton", "100aphoton"},
			expectedErr: ErrRegistryCmdInvalidArg,
		},
		{
			desc:        "create auction with malformed minimum bid",
			newCmd:      AuctionCmd,
			args:        []string{"create", "5m", "5m", "10aphoton", "10aphoton", "aphoton"},
			expectedErr: ErrRegistryCmdInvalidArg,
		},
		{
			desc:        "create bond with malformed coins",
			newCmd:      BondCmd,
			args:        []string{"create", "lots"},
			expectedErr: ErrRegistryCmdInvalidArg,
		},
		{
			desc:        "refill bond with empty coins",
			newCmd:      BondCmd,
			args:        []string{"refill", "bond1", ""},
			expectedErr: ErrRegistryCmdInvalidArg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			setupRegistryConfig(t)
			newRegistryClientFn = func(
				context.Context,
				*cobra.Command,
				*registryconfig.RegistryClientConfig,
			) (client.RegistryClient, error) {
				t.Fatal("registry client must not be constructed for invalid args")
				return nil, nil
			}

			_, err := executeCmd(t, tt.newCmd(), tt.args...)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestTxCmds_WrongArgCount(t *testing.T) {
	setupRegistryConfig(t)

	_, err := executeCmd(t, NameserviceCmd(), "set-name", "crn://example/app")
	require.ErrorContains(t, err, "accepts 2 arg(s), received 1")
}

func TestTxCmds_NoConfig(t *testing.T) {
	setupRegistryConfig(t)
	registryConfig = nil

	_, err := executeCmd(t, BondCmd(), "cancel", "bond1")
	require.ErrorIs(t, err, ErrRegistryCmdNoConfig)
}

func TestAddressCmd(t *testing.T) {
	setupRegistryConfig(t)

	output, err := executeCmd(t, AddressCmd())
	require.NoError(t, err)
	require.Equal(t, testSigningAddress+"\n", output)
}

func TestAddressCmd_InvalidMnemonic(t *testing.T) {
	setupRegistryConfig(t)
	registryConfig.Mnemonic = "not a mnemonic"

	_, err := executeCmd(t, AddressCmd())
	require.Error(t, err)
}

// setupRegistryConfig sets the package config as if it had been loaded by the
// root command, restoring the package state when the test ends.
func setupRegistryConfig(t *testing.T) {
	t.Helper()

	prevConfig, prevNewRegistryClientFn := registryConfig, newRegistryClientFn
	t.Cleanup(func() {
		registryConfig, newRegistryClientFn = prevConfig, prevNewRegistryClientFn
	})

	registryConfig = &registryconfig.RegistryClientConfig{
		SigningKeyName: registryconfig.DefaultSigningKeyName,
		Mnemonic:       testMnemonic,
	}
}

// setupRegistryClientMock makes tx commands use a mock registry client whose
// signing address is signingAddr.
func setupRegistryClientMock(
	t *testing.T,
	signingAddr cosmostypes.AccAddress,
) *mockclient.MockRegistryClient {
	t.Helper()

	setupRegistryConfig(t)

	ctrl := gomock.NewController(t)
	registryClientMock := mockclient.NewMockRegistryClient(ctrl)
	registryClientMock.EXPECT().SigningAddress().Return(signingAddr).AnyTimes()

	newRegistryClientFn = func(
		context.Context,
		*cobra.Command,
		*registryconfig.RegistryClientConfig,
	) (client.RegistryClient, error) {
		return registryClientMock, nil
	}

	return registryClientMock
}

// executeCmd runs cmd with args and returns what it wrote to stdout.
func executeCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	stdout := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

// coinsMatcher matches coins by their string representation, which is
// independent of how their amounts were parsed.
type coinsMatcher struct{ expected fmt.Stringer }

func (m coinsMatcher) Matches(x any) bool {
	actual, ok := x.(fmt.Stringer)
	return ok && actual.String() == m.expected.String()
}

func (m coinsMatcher) String() string {
	return fmt.Sprintf("is equal to %s", m.expected)
}

// eqCoin matches a cosmostypes.Coin equal to the given coin string.
func eqCoin(coin string) gomock.Matcher {
	parsedCoin, err := cosmostypes.ParseCoinNormalized(coin)
	if err != nil {
		panic(err)
	}
	return coinsMatcher{expected: parsedCoin}
}

// eqCoins matches cosmostypes.Coins equal to the given coins string.
func eqCoins(coins string) gomock.Matcher {
	parsedCoins, err := cosmostypes.ParseCoinsNormalized(coins)
	if err != nil {
		panic(err)
	}
	return coinsMatcher{expected: parsedCoins}
}

func newTxCmdTests() []txCmdTest {
	return []txCmdTest{
		{
			desc:   "auction create",
			newCmd: AuctionCmd,
			args:   []string{"create", "5m", "90s", "10aphoton", "20aphoton", "100aphoton"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.CreateAuction(
					gomock.Any(),
					5*time.Minute, 90*time.Second,
					eqCoin("10aphoton"), eqCoin("20aphoton"), eqCoin("100aphoton"),
					signer,
				).Return(nil).Times(1)
			},
		},
		{
			desc:   "auction commit-bid",
			newCmd: AuctionCmd,
			args:   []string{"commit-bid", "auction1", "commitHash1"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.CommitBid(gomock.Any(), "auction1", "commitHash1", signer).Return(nil).Times(1)
			},
		},
		{
			desc:   "auction reveal-bid",
			newCmd: AuctionCmd,
			args:   []string{"reveal-bid", "auction1", "7b2272657665616c227d"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.RevealBid(gomock.Any(), "auction1", "7b2272657665616c227d", signer).Return(nil).Times(1)
			},
		},
		{
			desc:   "bond create",
			newCmd: BondCmd,
			args:   []string{"create", "1000aphoton,5stake"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.CreateBond(gomock.Any(), signer, eqCoins("1000aphoton,5stake")).Return(nil).Times(1)
			},
		},
		{
			desc:   "bond refill",
			newCmd: BondCmd,
			args:   []string{"refill", "bond1", "500aphoton"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.RefillBond(gomock.Any(), "bond1", signer, eqCoins("500aphoton")).Return(nil).Times(1)
			},
		},
		{
			desc:   "bond withdraw",
			newCmd: BondCmd,
			args:   []string{"withdraw", "bond1", "200aphoton"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.WithdrawBond(gomock.Any(), "bond1", signer, eqCoins("200aphoton")).Return(nil).Times(1)
			},
		},
		{
			desc:   "bond cancel",
			newCmd: BondCmd,
			args:   []string{"cancel", "bond1"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.CancelBond(gomock.Any(), "bond1", signer).Return(nil).Times(1)
			},
		},
		{
			desc:   "nameservice associate-bond",
			newCmd: NameserviceCmd,
			args:   []string{"associate-bond", "record1", "bond1"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.AssociateBond(gomock.Any(), "record1", "bond1", signer).Return(nil).Times(1)
			},
		},
		{
			desc:   "nameservice dissociate-bond",
			newCmd: NameserviceCmd,
			args:   []string{"dissociate-bond", "record1"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.DissociateBond(gomock.Any(), "record1", signer).Return(nil).Times(1)
			},
		},
		{
			desc:   "nameservice dissociate-records",
			newCmd: NameserviceCmd,
			args:   []string{"dissociate-records", "bond1"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.DissociateRecords(gomock.Any(), "bond1", signer).Return(nil).Times(1)
			},
		},
		{
			desc:   "nameservice delete-authority",
			newCmd: NameserviceCmd,
			args:   []string{"delete-authority", "example"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.DeleteNameAuthority(gomock.Any(), "example", signer).Return(nil).Times(1)
			},
		},
		{
			desc:   "nameservice reassociate-records",
			newCmd: NameserviceCmd,
			args:   []string{"reassociate-records", "bond2", "bond1"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.ReAssociateRecords(gomock.Any(), "bond2", "bond1", signer).Return(nil).Times(1)
			},
		},
		{
			desc:   "nameservice renew-record",
			newCmd: NameserviceCmd,
			args:   []string{"renew-record", "record1"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.RenewRecord(gomock.Any(), "record1", signer).Return(nil).Times(1)
			},
		},
		{
			desc:   "nameservice set-authority-bond",
			newCmd: NameserviceCmd,
			args:   []string{"set-authority-bond", "example", "bond1"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.SetAuthorityBond(gomock.Any(), "example", "bond1", signer).Return(nil).Times(1)
			},
		},
		{
			desc:   "nameservice reserve-authority without owner",
			newCmd: NameserviceCmd,
			args:   []string{"reserve-authority", "example"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.ReserveAuthority(gomock.Any(), "example", signer, "").Return(nil).Times(1)
			},
		},
		{
			desc:   "nameservice reserve-authority with owner",
			newCmd: NameserviceCmd,
			args:   []string{"reserve-authority", "example", testSigningAddress},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.ReserveAuthority(gomock.Any(), "example", signer, testSigningAddress).Return(nil).Times(1)
			},
		},
		{
			desc:   "nameservice set-name",
			newCmd: NameserviceCmd,
			args:   []string{"set-name", "crn://example/app", "bafyreiexamplecid"},
			expect: func(m *mockclient.MockRegistryClientMockRecorder, signer string) {
				m.SetName(gomock.Any(), "crn://example/app", "bafyreiexamplecid", signer).Return(nil).Times(1)
			},
		},
	}
}
