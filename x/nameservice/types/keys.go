package types

const (
	// ModuleName defines the module name
	ModuleName = "nameservice"

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)
