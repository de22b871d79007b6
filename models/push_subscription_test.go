package models

import (
	"reflect"
	"strings"
	"testing"

	"gorm.io/gorm"
)

// Deleting a subscription must remove the row for real. With soft delete the
// tombstone still occupies the (user_id, endpoint) unique index, so after the
// engine prunes a gone endpoint the same device could never subscribe again:
// the lookup (scoped to deleted_at IS NULL) misses the row and the re-insert
// hits a unique-constraint violation.
func TestPushSubscriptionDeletesHard(t *testing.T) {
	deletedAt := reflect.TypeOf(gorm.DeletedAt{})

	var hasSoftDelete func(typ reflect.Type) bool
	hasSoftDelete = func(typ reflect.Type) bool {
		for i := 0; i < typ.NumField(); i++ {
			f := typ.Field(i)
			if f.Type == deletedAt {
				return true
			}
			if f.Anonymous && f.Type.Kind() == reflect.Struct && hasSoftDelete(f.Type) {
				return true
			}
		}
		return false
	}

	if hasSoftDelete(reflect.TypeOf(PushSubscription{})) {
		t.Fatal("PushSubscription must not carry a soft-delete field; pruned endpoints have to free their unique index slot")
	}
}

func TestPushSubscriptionUniquePerUserAndEndpoint(t *testing.T) {
	typ := reflect.TypeOf(PushSubscription{})

	for _, name := range []string{"UserID", "Endpoint"} {
		f, ok := typ.FieldByName(name)
		if !ok {
			t.Fatalf("missing field %s", name)
		}
		if !strings.Contains(f.Tag.Get("gorm"), "uniqueIndex:idx_user_endpoint") {
			t.Errorf("%s should be part of the idx_user_endpoint unique index", name)
		}
	}
}
