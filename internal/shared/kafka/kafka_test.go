package kafka

import (
	"reflect"
	"testing"
)

func TestBrokers(t *testing.T) {
	cases := map[string][]string{
		"localhost:9092":             {"localhost:9092"},
		" a:9092, b:9092 ,,":         {"a:9092", "b:9092"},
		"":                           {},
		"kafka-1:9092,kafka-2:29092": {"kafka-1:9092", "kafka-2:29092"},
	}
	for in, want := range cases {
		if got := Brokers(in); !reflect.DeepEqual(got, want) {
			t.Errorf("Brokers(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWriter(t *testing.T) {
	w := NewWriter("a:9092,b:9092", "parlay_placed")
	defer w.Close()

	if w.Topic != "parlay_placed" {
		t.Errorf("topic = %q", w.Topic)
	}
	if w.Addr == nil {
		t.Error("addr not set")
	}
}
