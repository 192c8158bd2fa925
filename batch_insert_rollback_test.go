package bptree

import "testing"

// TestBatchInsertRollsBackOnInvariantViolation forces CheckInvariants
// to fail by desyncing the reported count from the actual leaf-chain
// total, then checks BatchInsert undoes exactly the pairs it inserted.
func TestBatchInsertRollsBackOnInvariantViolation(t *testing.T) {
	tree, err := New[int, string](4)
	if err != nil {
		t.Fatal(err)
	}
	tree.Insert(1, "a")
	tree.Insert(2, "b")

	tree.count++ // desync: leaf chain still totals 2

	err = tree.BatchInsert([]KV[int, string]{{Key: 3, Value: "c"}, {Key: 4, Value: "d"}})
	if err == nil {
		t.Fatal("expected an invariant violation error")
	}

	if _, ok := tree.Get(3); ok {
		t.Error("key 3 was not rolled back")
	}
	if _, ok := tree.Get(4); ok {
		t.Error("key 4 was not rolled back")
	}
	if v, ok := tree.Get(1); !ok || v != "a" {
		t.Errorf("get(1) = (%q,%v), want (\"a\",true) after rollback", v, ok)
	}
	if v, ok := tree.Get(2); !ok || v != "b" {
		t.Errorf("get(2) = (%q,%v), want (\"b\",true) after rollback", v, ok)
	}
}
