package config

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/mmp/nft"
	"github.com/MixinNetwork/mmp/payout"
	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml"
)

const envPrefix = "MMP_"

type Ledger struct {
	Owner          string `toml:"owner" env:"OWNER"`
	MetadataSetter string `toml:"metadata-setter" env:"METADATA_SETTER"`
	FeeRecipient   string `toml:"fee-recipient" env:"FEE_RECIPIENT"`
}

type HTTP struct {
	Listen string `toml:"listen" env:"LISTEN"`
}

type Configuration struct {
	Ledger Ledger               `toml:"ledger" envPrefix:"LEDGER_"`
	Mixin  payout.Configuration `toml:"mixin" envPrefix:"MIXIN_"`
	HTTP   HTTP                 `toml:"http" envPrefix:"HTTP_"`
}

// Setup reads the TOML file at path, then lets MMP_ prefixed environment
// variables override any value, e.g. MMP_LEDGER_OWNER or MMP_HTTP_LISTEN.
func Setup(path string) (*Configuration, error) {
	conf := &Configuration{HTTP: HTTP{Listen: ":7001"}}
	f, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if len(f) > 0 {
		err = toml.Unmarshal(f, conf)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	err = env.ParseWithOptions(conf, env.Options{Prefix: envPrefix})
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return conf, nil
}

func (c *Configuration) Roles() nft.Roles {
	return nft.Roles{
		Owner:          c.Ledger.Owner,
		MetadataSetter: c.Ledger.MetadataSetter,
		FeeRecipient:   c.Ledger.FeeRecipient,
	}
}
