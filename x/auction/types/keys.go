package types

const (
	// ModuleName defines the module name
	ModuleName = "auction"

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)
