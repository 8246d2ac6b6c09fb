package scene

import (
	"testing"

	"github.com/quasilyte/gdata/v2"

	"github.com/phanxgames/celest"
)

// openTestManager opens a gdata manager rooted in a temporary home directory.
func openTestManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return manager
}

func TestVisitStoreInMemory(t *testing.T) {
	vs := NewVisitStore(nil)
	if vs.Persistent() {
		t.Error("nil manager should not be persistent")
	}
	if vs.Last() != "" {
		t.Errorf("Last = %q, want empty", vs.Last())
	}

	work := celest.Destination{Name: "Work", Path: "/work.html"}
	contact := celest.Destination{Name: "Contact", Path: "/contact.html"}
	for _, d := range []celest.Destination{work, contact, work} {
		if err := vs.Record(d); err != nil {
			t.Fatalf("Record(%s): %v", d.Name, err)
		}
	}

	if vs.Last() != "Work" {
		t.Errorf("Last = %q, want Work", vs.Last())
	}
	if vs.Count("Work") != 2 || vs.Count("Contact") != 1 || vs.Count("Projects") != 0 {
		t.Errorf("counts = Work:%d Contact:%d Projects:%d",
			vs.Count("Work"), vs.Count("Contact"), vs.Count("Projects"))
	}
}

func TestVisitStoreLoadResets(t *testing.T) {
	vs := NewVisitStore(nil)
	_ = vs.Record(celest.Destination{Name: "Work"})
	if err := vs.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if vs.Last() != "" || vs.Count("Work") != 0 {
		t.Error("Load without a manager should start from an empty history")
	}
}

func TestVisitStorePersists(t *testing.T) {
	manager := openTestManager(t, "celest_test_visits")

	vs := NewVisitStore(manager)
	if !vs.Persistent() {
		t.Fatal("store with a manager should be persistent")
	}
	for _, name := range []string{"Projects", "Work", "Projects"} {
		if err := vs.Record(celest.Destination{Name: name}); err != nil {
			t.Fatalf("Record(%s): %v", name, err)
		}
	}
	if !manager.ObjectPropExists(visitsObject, visitsProperty) {
		t.Fatal("Record should save the history")
	}

	reloaded := NewVisitStore(manager)
	if reloaded.Last() != "Projects" {
		t.Errorf("Last = %q, want Projects", reloaded.Last())
	}
	if reloaded.Count("Projects") != 2 || reloaded.Count("Work") != 1 {
		t.Errorf("counts = Projects:%d Work:%d, want 2 and 1",
			reloaded.Count("Projects"), reloaded.Count("Work"))
	}
}

func TestVisitStoreLoadsRecordWithoutCounts(t *testing.T) {
	manager := openTestManager(t, "celest_test_visits_partial")
	if err := manager.SaveObjectProp(visitsObject, visitsProperty, []byte("last: Contact\n")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	vs := NewVisitStore(manager)
	if vs.Last() != "Contact" {
		t.Errorf("Last = %q, want Contact", vs.Last())
	}
	// Recording must not hit a nil map.
	if err := vs.Record(celest.Destination{Name: "Contact"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if vs.Count("Contact") != 1 {
		t.Errorf("Count = %d, want 1", vs.Count("Contact"))
	}
}

func TestVisitStoreCorruptRecordStartsFresh(t *testing.T) {
	manager := openTestManager(t, "celest_test_visits_corrupt")
	if err := manager.SaveObjectProp(visitsObject, visitsProperty, []byte("counts: [oops")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	vs := NewVisitStore(manager)
	if vs.Last() != "" || vs.Count("Work") != 0 {
		t.Error("unreadable history should start empty")
	}
	if err := vs.Load(); err == nil {
		t.Error("Load should report the unmarshal error")
	}
}
