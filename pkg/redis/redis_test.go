package redis

import (
	"context"
	"testing"
	"time"

	"github.com/Alijeyrad/portfolio_backend/config"
)

func TestFromCentralConfig(t *testing.T) {
	tests := []struct {
		name string
		in   config.RedisConfig
		want Config
	}{
		{
			name: "defaults fill unset fields",
			in:   config.RedisConfig{Addr: "localhost:6379"},
			want: Config{
				Addr:         "localhost:6379",
				PoolSize:     10,
				MinIdleConns: 2,
				DialTimeout:  5 * time.Second,
				ReadTimeout:  3 * time.Second,
				WriteTimeout: 3 * time.Second,
			},
		},
		{
			name: "explicit values win",
			in: config.RedisConfig{
				Addr:                "redis:6379",
				DB:                  2,
				PoolSize:            4,
				MinIdleConns:        1,
				DialTimeoutSeconds:  1,
				ReadTimeoutSeconds:  2,
				WriteTimeoutSeconds: 7,
			},
			want: Config{
				Addr:         "redis:6379",
				DB:           2,
				PoolSize:     4,
				MinIdleConns: 1,
				DialTimeout:  time.Second,
				ReadTimeout:  2 * time.Second,
				WriteTimeout: 7 * time.Second,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromCentralConfig(tt.in); got != tt.want {
				t.Errorf("FromCentralConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewRedis_EmptyAddr(t *testing.T) {
	if _, err := NewRedis(context.Background(), Config{}); err == nil {
		t.Error("expected error for empty addr")
	}
}
