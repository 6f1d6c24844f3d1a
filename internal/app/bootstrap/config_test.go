package bootstrap

import (
	"testing"

	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "crm_app",
		SessionKey:    "dev-only-change-me-please-0123456789ABCDEF",
		SessionName:   "crmapp-session",
		ChartWidth:    640,
		ChartHeight:   400,
		ChartFormat:   "svg",
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	if err := ValidateConfig(nil, validAppConfig(), testLogger()); err != nil {
		t.Fatalf("ValidateConfig failed: %v", err)
	}
}

func TestValidateConfig_BadChartFormat(t *testing.T) {
	cfg := validAppConfig()
	cfg.ChartFormat = "gif"
	if err := ValidateConfig(nil, cfg, testLogger()); err == nil {
		t.Fatal("expected error for unsupported chart format")
	}
}

func TestValidateConfig_BadDimensions(t *testing.T) {
	cfg := validAppConfig()
	cfg.ChartWidth = 0
	if err := ValidateConfig(nil, cfg, testLogger()); err == nil {
		t.Fatal("expected error for zero chart width")
	}
}

func TestValidateConfig_BadMongoURI(t *testing.T) {
	cfg := validAppConfig()
	cfg.MongoURI = "not-a-mongo-uri"
	if err := ValidateConfig(nil, cfg, testLogger()); err == nil {
		t.Fatal("expected error for invalid MongoDB URI")
	}
}
