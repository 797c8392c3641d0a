package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "stayfinder/internal/adapters/redis"
)

type payload struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestCache_SetGetDel(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var out payload
	ok, err := c.Get(ctx, "hotel:abc", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected miss on empty cache")
	}

	in := payload{Name: "Hotel Aria", Price: 45.5}
	if err := c.Set(ctx, "hotel:abc", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	ok, err = c.Get(ctx, "hotel:abc", &out)
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if out != in {
		t.Fatalf("round-trip mismatch: %+v", out)
	}

	if err := c.Del(ctx, "hotel:abc"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "hotel:abc", &out); ok {
		t.Fatalf("expected miss after del")
	}
}
