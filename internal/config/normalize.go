package config

import "strings"

func (c *Config) normalize() {
	c.normalizeHello()
	c.normalizeOutput()
	c.normalizeLogging()
}

func (c *Config) normalizeHello() {
	c.Hello.DefaultName = strings.TrimSpace(c.Hello.DefaultName)
	if c.Hello.DefaultName == "" {
		c.Hello.DefaultName = defaultHelloName
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultOutputColor
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
