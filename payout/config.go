package payout

type Configuration struct {
	ClientId   string `toml:"client-id" env:"CLIENT_ID"`
	SessionId  string `toml:"session-id" env:"SESSION_ID"`
	PrivateKey string `toml:"private-key" env:"PRIVATE_KEY"`
	PinToken   string `toml:"pin-token" env:"PIN_TOKEN"`
	PIN        string `toml:"pin" env:"PIN"`
	AssetId    string `toml:"asset-id" env:"ASSET_ID"`
}

func (c *Configuration) Enabled() bool {
	return c.ClientId != "" && c.PIN != ""
}
