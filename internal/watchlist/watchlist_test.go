package watchlist

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestStore_AddRemoveList(t *testing.T) {
	s, err := NewStore("", []string{"BBRI", "GOTO"})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	added, err := s.Add("ANTM")
	if err != nil || !added {
		t.Fatalf("add: added=%v err=%v", added, err)
	}
	if added, _ := s.Add("ANTM"); added {
		t.Error("second add of the same ticker must report false")
	}

	if !s.Contains("BBRI") {
		t.Error("default ticker missing")
	}

	removed, _ := s.Remove("GOTO")
	if !removed {
		t.Error("remove of present ticker must report true")
	}
	if removed, _ := s.Remove("GOTO"); removed {
		t.Error("remove of absent ticker must report false")
	}

	want := []string{"ANTM", "BBRI"}
	if got := s.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("list=%v, want %v", got, want)
	}
}

func TestStore_PersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.json")

	s, err := NewStore(path, []string{"BBRI"})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := s.Add("BREN"); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Reload: defaults must not be re-applied over the saved file.
	s2, err := NewStore(path, []string{"TLKM"})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if s2.Contains("TLKM") {
		t.Error("defaults must not override a persisted watchlist")
	}
	want := []string{"BBRI", "BREN"}
	if got := s2.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("reloaded list=%v, want %v", got, want)
	}
}
