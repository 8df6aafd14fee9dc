package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestIsDuplicate(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Pokhara-Kathmandu'"}

	if !IsDuplicate(dup) {
		t.Fatal("1062 should be reported as duplicate")
	}
	if !IsDuplicate(fmt.Errorf("insert route: %w", dup)) {
		t.Fatal("wrapped 1062 should be reported as duplicate")
	}
	if IsDuplicate(&mysql.MySQLError{Number: 1452}) {
		t.Fatal("foreign key failure is not a duplicate")
	}
	if IsDuplicate(errors.New("some other error")) {
		t.Fatal("plain errors are not duplicates")
	}
	if IsDuplicate(nil) {
		t.Fatal("nil is not a duplicate")
	}
}
