package config

// Configurator wraps the config package's functions so commands can be
// exercised with a mocked config in tests.
type Configurator interface {
	GetDefaultConfigPath() (string, error)
	Parse(string) error
	Get() *Config
}

func New() Configurator {
	return &defaultConfigurator{}
}

type defaultConfigurator struct{}

func (c *defaultConfigurator) GetDefaultConfigPath() (string, error) {
	return GetDefaultConfigPath()
}

func (c *defaultConfigurator) Parse(path string) error {
	return Parse(path)
}

func (c *defaultConfigurator) Get() *Config {
	return Get()
}
