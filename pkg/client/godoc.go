// Package client defines the interfaces through which the registry chain is
// transacted with: a TxContext wrapping the cosmos-sdk client machinery, a
// TxClient which signs, broadcasts and tracks txs, and a RegistryClient which
// exposes one method per auction, bond and nameservice operation.
//
// The interfaces depend on cosmos-sdk and cometbft types where doing otherwise
// would only add conversion boilerplate; implementations live in subpackages.
package client
