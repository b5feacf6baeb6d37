package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/agbru/rotcoef/internal/metrics"
)

// freePort grabs a free TCP port from the kernel.
func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer l.Close()
	return l.Addr().String()
}

func TestMetricsServerServesMetrics(t *testing.T) {
	addr := freePort(t)
	srv := New(addr, nil)
	srv.Start()
	defer func() {
		if err := srv.Shutdown(context.Background()); err != nil {
			t.Errorf("Shutdown() error = %v", err)
		}
	}()

	metrics.RecordEvaluation("hyperdual", 0.001)

	url := fmt.Sprintf("http://%s/metrics", addr)
	var body string
	// The listener comes up asynchronously.
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get(url)
		if err == nil {
			data, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if readErr != nil {
				t.Fatalf("ReadAll() error = %v", readErr)
			}
			body = string(data)
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("metrics endpoint never came up: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	if !strings.Contains(body, "rotcoef_evaluations_total") {
		t.Error("metrics output missing rotcoef_evaluations_total")
	}
	if !strings.Contains(body, "rotcoef_process_resident_memory_bytes") {
		t.Error("metrics output missing rotcoef_process_resident_memory_bytes")
	}
}

func TestMetricsServerShutdownIdempotentRegistration(t *testing.T) {
	// Creating a second server must not fail on duplicate collector
	// registration.
	addr := freePort(t)
	srv := New(addr, nil)
	srv2 := New(freePort(t), nil)
	_ = srv
	_ = srv2
}
