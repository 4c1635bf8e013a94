package lfucache

import (
	"errors"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	src := New[string, int](3)
	src.Put("a", 1)
	src.Put("b", 2)
	src.Put("c", 3)
	src.Get("a")
	src.Get("a")
	src.Get("b") // a at frequency 3, b at 2, c at 1

	blob, err := src.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	dst := New[string, int](3)
	if err := dst.Restore(blob); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		if v, found := dst.Peek(key); !found || v != want {
			t.Errorf("Expected restored %s=%d, got %d, found: %v", key, want, v, found)
		}
	}

	// Restored frequencies drive eviction exactly like the original:
	// c (freq 1) goes first, then d, then the fresher e pushes nothing
	// ahead of b.
	dst.Put("d", 4)
	if _, found := dst.Peek("c"); found {
		t.Error("Expected restored 'c' to be the first eviction victim")
	}
	dst.Put("e", 5)
	if _, found := dst.Peek("d"); found {
		t.Error("Expected fresh 'd' to lose to restored frequencies")
	}
	if _, found := dst.Peek("b"); !found {
		t.Error("Expected restored 'b' to survive")
	}
}

// Recency within one frequency bucket survives the round trip.
func TestSnapshotPreservesRecency(t *testing.T) {
	src := New[string, int](3)
	src.Put("old", 1)
	src.Put("mid", 2)
	src.Put("new", 3) // all frequency 1; old is least recent

	blob, err := src.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	dst := New[string, int](3)
	if err := dst.Restore(blob); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	dst.Put("x", 9)
	if _, found := dst.Peek("old"); found {
		t.Error("Expected 'old' to be evicted first after restore")
	}
	if _, found := dst.Peek("new"); !found {
		t.Error("Expected 'new' to survive")
	}
}

func TestSnapshotCorruption(t *testing.T) {
	src := New[string, int](2)
	src.Put("a", 1)

	blob, err := src.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	t.Run("truncated", func(t *testing.T) {
		dst := New[string, int](2)
		if err := dst.Restore(blob[:4]); !errors.Is(err, ErrSnapshotFormat) {
			t.Errorf("Expected ErrSnapshotFormat, got %v", err)
		}
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), blob...)
		bad[0] ^= 0xff
		dst := New[string, int](2)
		if err := dst.Restore(bad); !errors.Is(err, ErrSnapshotFormat) {
			t.Errorf("Expected ErrSnapshotFormat, got %v", err)
		}
	})

	t.Run("bad version", func(t *testing.T) {
		bad := append([]byte(nil), blob...)
		bad[4] = 99
		dst := New[string, int](2)
		if err := dst.Restore(bad); !errors.Is(err, ErrSnapshotVersion) {
			t.Errorf("Expected ErrSnapshotVersion, got %v", err)
		}
	})

	t.Run("flipped payload byte", func(t *testing.T) {
		bad := append([]byte(nil), blob...)
		bad[len(bad)-1] ^= 0x01
		dst := New[string, int](2)
		dst.Put("keep", 7)
		if err := dst.Restore(bad); !errors.Is(err, ErrSnapshotChecksum) {
			t.Errorf("Expected ErrSnapshotChecksum, got %v", err)
		}
		// Failed restore must leave the cache untouched.
		if v, found := dst.Peek("keep"); !found || v != 7 {
			t.Error("Expected cache contents to survive a failed restore")
		}
	})
}

func TestImportOverCapacity(t *testing.T) {
	dst := New[int, int](2)
	dst.Import([]Item[int, int]{
		{Key: 1, Val: 1, Frequency: 1},
		{Key: 2, Val: 2, Frequency: 2},
		{Key: 3, Val: 3, Frequency: 3},
	})

	if dst.Len() != 2 {
		t.Fatalf("Expected 2 keys after over-capacity import, got %d", dst.Len())
	}
	// The lowest-frequency item was sacrificed on the way in.
	if _, found := dst.Peek(1); found {
		t.Error("Expected lowest-frequency item to be evicted during import")
	}
	for _, k := range []int{2, 3} {
		if _, found := dst.Peek(k); !found {
			t.Errorf("Expected item %d to survive import", k)
		}
	}
}

func TestImportSanitizesFrequency(t *testing.T) {
	dst := New[int, int](2)
	dst.Import([]Item[int, int]{{Key: 1, Val: 1, Frequency: -5}})

	if s := dst.Stats(); s.MinFrequency != 1 {
		t.Errorf("Expected imported frequency clamped to 1, floor is %d", s.MinFrequency)
	}
}

func TestImportIntoZeroCapacity(t *testing.T) {
	dst := New[int, int](0)
	dst.Import([]Item[int, int]{{Key: 1, Val: 1, Frequency: 1}})

	if dst.Len() != 0 {
		t.Errorf("Expected zero-capacity cache to reject imports, got %d keys", dst.Len())
	}
}

func TestImportOverwritesExisting(t *testing.T) {
	dst := New[int, int](4)
	dst.Put(1, 100)
	dst.Get(1) // frequency 2

	dst.Import([]Item[int, int]{{Key: 1, Val: 200, Frequency: 5}})

	if v, found := dst.Peek(1); !found || v != 200 {
		t.Errorf("Expected import to overwrite value, got %d, found: %v", v, found)
	}
	if dst.Len() != 1 {
		t.Errorf("Expected single entry after overwrite, got %d", dst.Len())
	}
	if s := dst.Stats(); s.MinFrequency != 5 {
		t.Errorf("Expected floor at imported frequency 5, got %d", s.MinFrequency)
	}
}
