package service_test

import (
	"testing"

	"github.com/saadjs/mealplan-cli/internal/service"
)

func TestConfigSetGet(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, ok, err := service.GetConfig(db, service.ConfigDefaultUser); err != nil || ok {
		t.Fatalf("expected unset default user, got ok=%v err=%v", ok, err)
	}
	if err := service.SetConfig(db, "DEFAULT_USER", " ana "); err != nil {
		t.Fatalf("set config: %v", err)
	}
	if err := service.SetConfig(db, service.ConfigDefaultUser, "ben"); err != nil {
		t.Fatalf("overwrite config: %v", err)
	}
	value, ok, err := service.GetConfig(db, service.ConfigDefaultUser)
	if err != nil || !ok || value != "ben" {
		t.Fatalf("expected ben, got %q ok=%v err=%v", value, ok, err)
	}
	if err := service.SetConfig(db, "theme", "dark"); err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
	all, err := service.ListConfig(db)
	if err != nil {
		t.Fatalf("list config: %v", err)
	}
	if len(all) != 1 || all[service.ConfigDefaultUser] != "ben" {
		t.Fatalf("unexpected config %v", all)
	}
}
