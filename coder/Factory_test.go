package coder

import (
	"errors"
	"testing"

	ans "github.com/anscore/ansgo"
	"github.com/anscore/ansgo/model"
)

func TestFactoryBuildsEachKind(t *testing.T) {
	freqs, _ := model.New(map[ans.Symbol]uint64{0: 1, 1: 1})

	cases := []Config{
		{Variant: RANSKind, Model: freqs},
		{Variant: TANSKind, B: 2, L: 1, Model: freqs},
		{Variant: UABSKind, PNum: 1, PDen: 2},
	}

	for _, cfg := range cases {
		v, err := New(cfg)

		if err != nil {
			t.Fatalf("New(%v): unexpected error: %v", cfg.Variant, err)
		}

		if v == nil {
			t.Fatalf("New(%v): got nil Variant", cfg.Variant)
		}
	}
}

func TestFactoryRejectsUnknownKind(t *testing.T) {
	if _, err := New(Config{Variant: Kind(99)}); !errors.Is(err, ans.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{RANSKind: "rans", UABSKind: "uabs", TANSKind: "tans"}

	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
