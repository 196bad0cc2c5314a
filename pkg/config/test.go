package config

func loadTestConfig(cfg *Config) {
	cfg.DatabaseFilePath = ":memory:"
	cfg.FrontendURL = "http://localhost:8080"
	cfg.ServerHost = "127.0.0.1"
	// Port 0 so parallel test runs never collide.
	cfg.ServerPort = 0
}
