package config

import "testing"

func TestDBConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     DBConfig
		wantErr bool
	}{
		{name: "postgres with dsn", cfg: DBConfig{Driver: DriverPostgres, DSN: "postgres://localhost/autonex"}},
		{name: "postgres missing dsn", cfg: DBConfig{Driver: DriverPostgres}, wantErr: true},
		{name: "sqlite with path", cfg: DBConfig{Driver: DriverSQLite, SQLitePath: "autonex.db"}},
		{name: "sqlite missing path", cfg: DBConfig{Driver: DriverSQLite}, wantErr: true},
		{name: "unknown driver", cfg: DBConfig{Driver: "mysql", DSN: "x"}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRedisEnabled(t *testing.T) {
	if (RedisConfig{}).Enabled() {
		t.Fatal("empty redis config should be disabled")
	}
	if !(RedisConfig{URL: "redis://localhost:6379"}).Enabled() {
		t.Fatal("url-configured redis should be enabled")
	}
	if !(RedisConfig{Address: "localhost:6379"}).Enabled() {
		t.Fatal("addr-configured redis should be enabled")
	}
}
