package cache

import (
	"strings"
	"testing"
	"time"
)

func TestTextKey_StableAndPrefixed(t *testing.T) {
	key := TextKey("Rozpočet stavby")

	if !strings.HasPrefix(key, "stavex:v1:") {
		t.Errorf("Expected key prefix stavex:v1:, got %s", key)
	}
	if key != TextKey("Rozpočet stavby") {
		t.Error("Expected identical text to produce an identical key")
	}
	if key == TextKey("Rozpočet stavby ") {
		t.Error("Expected different text to produce a different key")
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("value"), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, found := c.Get("k")
	if !found {
		t.Fatal("Expected a cache hit")
	}
	if string(got) != "value" {
		t.Errorf("Expected value, got %s", got)
	}
}

func TestMemoryCache_MissAfterDelete(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_ = c.Set("k", []byte("value"), 0)
	if err := c.Delete("k"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected a miss after delete")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_ = c.Set("a", []byte("1"), 0)
	_ = c.Set("b", []byte("2"), 0)
	if err := c.Clear(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("Expected a miss after clear")
	}
}

func TestDiskCache_SetGet(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set(TextKey("doc"), []byte(`{"summary":"x"}`), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, found := c.Get(TextKey("doc"))
	if !found {
		t.Fatal("Expected a cache hit")
	}
	if string(got) != `{"summary":"x"}` {
		t.Errorf("Unexpected cached value: %s", got)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	_ = c.Set("k", []byte("value"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("Expected an expired entry to miss")
	}
}

func TestDiskCache_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first := NewDiskCache(dir, time.Minute)
	if err := first.Set("k", []byte("value"), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	second := NewDiskCache(dir, time.Minute)
	got, found := second.Get("k")
	if !found {
		t.Fatal("Expected the entry to survive a reopen")
	}
	if string(got) != "value" {
		t.Errorf("Unexpected value after reopen: %s", got)
	}
}

func TestDiskCache_Clear(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	_ = c.Set("k", []byte("value"), 0)
	if err := c.Clear(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected a miss after clear")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()

	warm := NewLayeredCache(time.Minute, dir, time.Minute)
	if err := warm.Set("k", []byte("value"), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// A fresh instance has a cold memory layer; the hit must come from
	// disk and land back in memory.
	cold := NewLayeredCache(time.Minute, dir, time.Minute)
	got, found := cold.Get("k")
	if !found {
		t.Fatal("Expected a disk-layer hit")
	}
	if string(got) != "value" {
		t.Errorf("Unexpected value: %s", got)
	}

	if _, found := cold.memory.Get("k"); !found {
		t.Error("Expected the disk hit to be promoted into memory")
	}
}

func TestLayeredCache_DeleteRemovesBothLayers(t *testing.T) {
	c := NewLayeredCache(time.Minute, t.TempDir(), time.Minute)

	_ = c.Set("k", []byte("value"), 0)
	if err := c.Delete("k"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected a miss after delete")
	}
}
