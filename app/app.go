package app

const (
	// Name is the name of the client application.
	Name = "registryclient"

	// AccountAddressPrefix is the bech32 human readable prefix of the chain's
	// account addresses.
	AccountAddressPrefix = "cosmos"

	// DenomPhoton is the denomination in which tx fees are paid.
	DenomPhoton = "aphoton"

	// DefaultFeeAmount is the fixed amount of DenomPhoton paid for every tx.
	DefaultFeeAmount = 10

	// DefaultGasLimit is the fixed gas limit of every tx.
	DefaultGasLimit = 1000
)
