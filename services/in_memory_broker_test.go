package services

import (
	"testing"
	"time"
)

func TestInMemoryBrokerDelivers(t *testing.T) {
	b := NewInMemoryBroker()
	defer b.Close()

	ch, err := b.Consume("match.m1.goal")
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}

	msg := BrokerMessage{Topic: "match.m1.goal", Key: "m1", Value: []byte(`{}`)}
	if err := b.Produce(msg); err != nil {
		t.Fatalf("Produce: %v", err)
	}

	select {
	case got := <-ch:
		if got.Key != "m1" {
			t.Errorf("Key = %s, want m1", got.Key)
		}
	case <-time.After(time.Second):
		t.Error("Message not delivered")
	}
}

func TestInMemoryBrokerWildcard(t *testing.T) {
	b := NewInMemoryBroker()
	defer b.Close()

	all, _ := b.Consume("match.*")
	other, _ := b.Consume("match.m2.goal")

	b.Produce(BrokerMessage{Topic: "match.m1.yellow_card", Key: "m1"})

	select {
	case <-all:
	case <-time.After(time.Second):
		t.Error("Wildcard consumer missed message")
	}

	select {
	case <-other:
		t.Error("Non-matching consumer received message")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestTopicMatches(t *testing.T) {
	cases := []struct {
		pattern, topic string
		want           bool
	}{
		{"match.m1.goal", "match.m1.goal", true},
		{"match.*", "match.m1.goal", true},
		{"#", "anything", true},
		{"match.m2.goal", "match.m1.goal", false},
		{"odds.*", "match.m1.goal", false},
	}

	for _, c := range cases {
		if got := topicMatches(c.pattern, c.topic); got != c.want {
			t.Errorf("topicMatches(%s, %s) = %v, want %v", c.pattern, c.topic, got, c.want)
		}
	}
}
