package config

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mongo with url", Config{DBType: "mongo", MongoURL: "mongodb://localhost"}, false},
		{"mongo without url", Config{DBType: "mongo"}, true},
		{"postgres with url", Config{DBType: "postgres", PostgresURL: "postgres://localhost/db"}, false},
		{"postgres without url", Config{DBType: "postgres", MongoURL: "mongodb://localhost"}, true},
		{"memory", Config{DBType: "memory"}, false},
		{"unknown", Config{DBType: "sqlite"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_TYPE", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URL", "mongodb://fallback")
	t.Setenv("MONGO_DB", "")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("MAX_UPLOAD_MB", "bogus")
	t.Setenv("R2_BUCKET", "")
	t.Setenv("R2_ACCOUNT_ID", "")

	cfg := LoadConfig()
	if cfg.DBType != "mongo" {
		t.Errorf("DBType = %q, want mongo", cfg.DBType)
	}
	if cfg.MongoURL != "mongodb://fallback" {
		t.Errorf("MongoURL = %q, want MONGO_URL fallback", cfg.MongoURL)
	}
	if cfg.MongoDatabase != "aerozone" {
		t.Errorf("MongoDatabase = %q", cfg.MongoDatabase)
	}
	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
	if cfg.AllowedOrigins != "*" {
		t.Errorf("AllowedOrigins = %q, want *", cfg.AllowedOrigins)
	}
	if cfg.MaxUploadMB != 32 {
		t.Errorf("MaxUploadMB = %d, want 32", cfg.MaxUploadMB)
	}
	if cfg.R2.Enabled() {
		t.Error("R2 should be disabled without bucket settings")
	}
}
