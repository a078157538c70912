package registry

import (
	"github.com/vulcanize/registry-client/pkg/client"
)

// WithSigningKeyName sets the name of the keyring key whose address is the
// client's SigningAddress.
func WithSigningKeyName(keyName string) client.RegistryClientOption {
	return func(rClient client.RegistryClient) {
		rClient.(*registryClient).signingKeyName = keyName
	}
}
