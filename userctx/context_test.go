package userctx

import (
	"context"
	"testing"
)

func TestGetUserEmail(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"no identity", context.Background(), Anonymous},
		{"empty identity", SetUserEmail(context.Background(), ""), Anonymous},
		{"forwarded identity", SetUserEmail(context.Background(), "planner@example.com"), "planner@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserEmail(tt.ctx); got != tt.want {
				t.Errorf("GetUserEmail() = %q, want %q", got, tt.want)
			}
		})
	}
}
