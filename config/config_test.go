package config

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	LoadConfig()

	if AppConfig.AppPort != "5000" {
		t.Errorf("expected default port 5000, got %s", AppConfig.AppPort)
	}
	if AppConfig.Env != "development" {
		t.Errorf("expected default env development, got %s", AppConfig.Env)
	}
	if AppConfig.DatabaseName != "brushNfloss" {
		t.Errorf("expected default database name brushNfloss, got %s", AppConfig.DatabaseName)
	}
	if AppConfig.MaxRequestsPerMin != 100 {
		t.Errorf("expected default rate limit 100, got %d", AppConfig.MaxRequestsPerMin)
	}
}

func TestIsProduction(t *testing.T) {
	AppConfig.Env = "production"
	if !IsProduction() {
		t.Error("expected IsProduction() to return true for production")
	}

	AppConfig.Env = "development"
	if IsProduction() {
		t.Error("expected IsProduction() to return false for development")
	}
}
