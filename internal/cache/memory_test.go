package cache

import "testing"

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()

	if _, found := c.Get("missing"); found {
		t.Error("empty cache should miss")
	}

	key := TypeKey(42, "KEYNOTE")
	c.Set(key, "03.01")
	if v, found := c.Get(key); !found || v != "03.01" {
		t.Errorf("Get(%q) = %q, %v", key, v, found)
	}

	// Empty values are cached too: absence of a parameter is a result.
	c.Set(TypeKey(42, "TYPE_MARK"), "")
	if v, found := c.Get(TypeKey(42, "TYPE_MARK")); !found || v != "" {
		t.Errorf("cached empty value: %q, %v", v, found)
	}

	c.Clear()
	if _, found := c.Get(key); found {
		t.Error("cache should be empty after Clear")
	}
}

func TestTypeKey_DistinctPerTypeAndParam(t *testing.T) {
	keys := map[string]bool{
		TypeKey(1, "KEYNOTE"):   true,
		TypeKey(2, "KEYNOTE"):   true,
		TypeKey(1, "TYPE_MARK"): true,
	}
	if len(keys) != 3 {
		t.Errorf("expected 3 distinct keys, got %d", len(keys))
	}
}
