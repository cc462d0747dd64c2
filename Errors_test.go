package ans

import (
	"errors"
	"testing"
)

func TestErrorKindSentinelRoundTrips(t *testing.T) {
	cases := map[ErrorKind]error{
		KindInvalidModel:     ErrInvalidModel,
		KindInvalidParameter: ErrInvalidParameter,
		KindUnknownSymbol:    ErrUnknownSymbol,
		KindStateOutOfDomain: ErrStateOutOfDomain,
		KindTruncated:        ErrTruncated,
		KindTableLookupMiss:  ErrTableLookupMiss,
	}

	for kind, sentinel := range cases {
		if kind.Sentinel() != sentinel {
			t.Errorf("%v.Sentinel() = %v, want %v", kind, kind.Sentinel(), sentinel)
		}

		wrapped := errors.Join(kind.Sentinel())

		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is failed to match %v through its sentinel", kind)
		}
	}
}

func TestErrorKindStringIsNonEmpty(t *testing.T) {
	kinds := []ErrorKind{
		KindInvalidModel, KindInvalidParameter, KindUnknownSymbol,
		KindStateOutOfDomain, KindTruncated, KindTableLookupMiss,
	}

	for _, k := range kinds {
		if k.String() == "" || k.String() == "unknown" {
			t.Errorf("ErrorKind(%d).String() = %q, want a descriptive name", k, k.String())
		}
	}
}
