package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWritesText(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := New(Options{Service: "gateway", Env: "dev", Format: "Text", Output: &buf})
	log.Info("hello", slog.String("user", "test"))

	out := buf.String()
	for _, want := range []string{"msg=hello", "service=gateway", "env=dev", "user=test"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestNewWritesJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := New(Options{Service: "api", Env: "test", Level: "warn", Output: &buf})
	log.Info("dropped")
	log.Warn("kept", slog.String("user", "test"))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if line["msg"] != "kept" || line["service"] != "api" || line["env"] != "test" || line["user"] != "test" {
		t.Fatalf("unexpected record %v", line)
	}
}

func TestUnaryServerInterceptor(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
	}{
		{"ok", nil, "INFO", "OK"},
		{"client error", status.Error(codes.NotFound, "cart not found"), "INFO", "NotFound"},
		{"server error", errors.New("boom"), "ERROR", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, nil))
			icpt := UnaryServerInterceptor(log)

			info := &grpc.UnaryServerInfo{FullMethod: "/storefront.cart.v1.CartService/GetCart"}
			_, err := icpt(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
				return nil, tt.err
			})
			if !errors.Is(err, tt.err) {
				t.Fatalf("interceptor changed error: %v", err)
			}

			var line map[string]any
			if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
				t.Fatalf("bad log line %q: %v", buf.String(), err)
			}
			if line["level"] != tt.wantLevel || line["code"] != tt.wantCode || line["method"] != info.FullMethod {
				t.Fatalf("unexpected record %v", line)
			}
		})
	}
}
