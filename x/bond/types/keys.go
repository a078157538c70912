package types

const (
	// ModuleName defines the module name
	ModuleName = "bond"

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)
