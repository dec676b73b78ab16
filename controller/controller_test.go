package controller

import (
	"fmt"
	"os"
	"testing"

	"github.com/mww/dynasty_tracker/testutils"
)

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	// Setup the global testDB variable
	testDB = testutils.NewTestDB()
	code := m.Run()
	testDB.Shutdown()
	os.Exit(code)
}

func testController(t *testing.T) C {
	ctrl, err := New(testDB.Clock, testDB.DB)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}
	return ctrl
}

func errorsEqual(e1, e2 error) bool {
	if e1 == nil && e2 == nil {
		return true
	}
	if (e1 != nil && e2 == nil) || (e1 == nil && e2 != nil) {
		return false
	}
	return e1.Error() == e2.Error()
}

func ip(i int) *int {
	return &i
}
