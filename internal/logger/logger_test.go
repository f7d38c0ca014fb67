package logger

import "testing"

func TestInitialize_Idempotent(t *testing.T) {
	if err := Initialize("info", ""); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}
	first := Get()

	// повторный вызов не пересоздаёт синглтон
	if err := Initialize("debug", ""); err != nil {
		t.Fatalf("Expected no error on repeated initialize, got '%v'", err)
	}
	if Get() != first {
		t.Error("Expected the same logger instance after repeated initialize")
	}
}
