package monitoring

import (
	"testing"
)

func TestMonitor_GetMetrics(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	metrics := m.GetMetrics()

	// Check if our metric is present
	value, exists := metrics["test_metric"]
	if !exists {
		t.Fatalf("Expected 'test_metric' to be present in metrics, but it was not")
	}

	// Check value
	if value != 42 {
		t.Errorf("Expected 'test_metric' to be 42, but got %v", value)
	}

	// Check uptime presence
	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}

func TestMonitor_RecordDayResult(t *testing.T) {
	m := NewMonitor()

	testMetrics := map[string]interface{}{
		"score":        850,
		"satisfaction": 62,
	}

	m.RecordDayResult(3, testMetrics)

	metrics := m.GetMetrics()

	// Check if metrics are recorded with the proper prefix
	value, exists := metrics["day3_score"]
	if !exists {
		t.Fatalf("Expected 'day3_score' to be present in metrics, but it was not")
	}

	if value != 850 {
		t.Errorf("Expected 'day3_score' to be 850, but got %v", value)
	}

	// Check timestamp is recorded
	_, exists = metrics["day3_recorded_at"]
	if !exists {
		t.Errorf("Expected 'day3_recorded_at' to be present in metrics, but it was not")
	}
}

func TestMonitor_Reset(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	m.Reset()

	metrics := m.GetMetrics()

	// Our test metric should be gone, but uptime should still be there
	_, exists := metrics["test_metric"]
	if exists {
		t.Errorf("Expected 'test_metric' to be removed after Reset(), but it was present")
	}

	// Uptime should still be present (it's added on GetMetrics call)
	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}
