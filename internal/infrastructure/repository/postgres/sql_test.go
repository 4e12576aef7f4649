package postgres

import (
	"database/sql"
	"testing"
)

func TestNullStringToPtr(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		got := nullStringToPtr(sql.NullString{String: "usr-1", Valid: true})
		if got == nil || *got != "usr-1" {
			t.Fatalf("expected usr-1, got %v", got)
		}
	})

	t.Run("null", func(t *testing.T) {
		if got := nullStringToPtr(sql.NullString{}); got != nil {
			t.Fatalf("expected nil, got %v", *got)
		}
	})
}

func TestPtrToNullInt64(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		if got := ptrToNullInt64(nil); got.Valid {
			t.Fatalf("expected invalid NullInt64, got %+v", got)
		}
	})

	t.Run("value round trip", func(t *testing.T) {
		n := 7
		got := nullInt64ToPtr(ptrToNullInt64(&n))
		if got == nil || *got != 7 {
			t.Fatalf("expected 7, got %v", got)
		}
	})
}
