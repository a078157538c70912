package flags

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// FlagDescriptor ties a persistent flag to the registry client config key it
// overrides. Flags are strings unless IsSwitch is set, in which case they
// are bools that may be given without a value (e.g. --metrics).
type FlagDescriptor struct {
	FlagName    string
	ConfigKey   string
	Description string
	IsSwitch    bool
}

// BindFlags registers the described persistent flags on cmd and binds each to
// its viper config key, so that a flag given on the command line takes
// precedence over the environment, the config file and the defaults.
// The default shown in usage is the viper value of the key at bind time;
// viper defaults must therefore be set beforehand.
func BindFlags(cmd *cobra.Command, flagDescriptors ...FlagDescriptor) error {
	v := viper.GetViper()
	persistentFlags := cmd.PersistentFlags()

	for _, flagDesc := range flagDescriptors {
		if persistentFlags.Lookup(flagDesc.FlagName) != nil {
			return fmt.Errorf("flag --%s is already registered on %q", flagDesc.FlagName, cmd.Name())
		}

		if flagDesc.IsSwitch {
			persistentFlags.Bool(flagDesc.FlagName, v.GetBool(flagDesc.ConfigKey), flagDesc.Description)
		} else {
			persistentFlags.String(flagDesc.FlagName, v.GetString(flagDesc.ConfigKey), flagDesc.Description)
		}

		if err := v.BindPFlag(flagDesc.ConfigKey, persistentFlags.Lookup(flagDesc.FlagName)); err != nil {
			return fmt.Errorf("binding flag --%s to %q: %w", flagDesc.FlagName, flagDesc.ConfigKey, err)
		}
	}
	return nil
}
