package tasklist_test

import (
	"testing"

	"todo/internal/service"
	"todo/internal/tasklist"
)

// assertCounts checks the derived counters against the listed tasks.
func assertCounts(t *testing.T, m *tasklist.Manager) {
	t.Helper()

	tasks := m.List()
	open := 0
	for _, task := range tasks {
		if !task.Completed {
			open++
		}
	}
	if m.Remaining() != open {
		t.Errorf("Remaining() = %d, but %d listed tasks are open", m.Remaining(), open)
	}
	if m.Total() != len(tasks) {
		t.Errorf("Total() = %d, but List() has %d tasks", m.Total(), len(tasks))
	}
}

func texts(tasks []service.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Text
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAdd_BlankIsNoop(t *testing.T) {
	m := tasklist.New()

	for _, text := range []string{"", "   ", "\t\n"} {
		task, ok := m.Add(text)
		if ok {
			t.Errorf("Add(%q) created %+v", text, task)
		}
	}
	if m.Total() != 0 {
		t.Errorf("expected empty collection, got %d tasks", m.Total())
	}
	assertCounts(t, m)
}

func TestAdd_CreatesOpenTask(t *testing.T) {
	m := tasklist.New()

	task, ok := m.Add("Buy milk")
	if !ok {
		t.Fatal("expected task to be created")
	}
	if task.Text != "Buy milk" {
		t.Errorf("expected text 'Buy milk', got %q", task.Text)
	}
	if task.Completed {
		t.Error("new task should not be completed")
	}
	if task.ID != 1 {
		t.Errorf("expected id 1, got %d", task.ID)
	}
	if m.Total() != 1 {
		t.Errorf("expected total 1, got %d", m.Total())
	}
	assertCounts(t, m)
}

func TestAdd_TrimsText(t *testing.T) {
	m := tasklist.New()

	task, ok := m.Add("  Walk the dog \n")
	if !ok {
		t.Fatal("expected task to be created")
	}
	if task.Text != "Walk the dog" {
		t.Errorf("expected trimmed text, got %q", task.Text)
	}
}

func TestList_InsertionOrder(t *testing.T) {
	m := tasklist.New()
	want := []string{"one", "two", "three", "four"}
	for _, text := range want {
		m.Add(text)
	}

	if got := texts(m.List()); !equalStrings(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	m := tasklist.New()
	m.Add("A")

	tasks := m.List()
	tasks[0].Text = "changed"
	tasks[0].Completed = true

	got := m.List()
	if got[0].Text != "A" || got[0].Completed {
		t.Errorf("mutating List() result changed the manager: %+v", got[0])
	}
	if m.Remaining() != 1 {
		t.Errorf("expected 1 remaining, got %d", m.Remaining())
	}
}

func TestToggle_IsOwnInverse(t *testing.T) {
	m := tasklist.New()
	task, _ := m.Add("A")

	completed, found := m.Toggle(task.ID)
	if !found || !completed {
		t.Fatalf("first toggle: completed=%v found=%v", completed, found)
	}
	assertCounts(t, m)

	completed, found = m.Toggle(task.ID)
	if !found || completed {
		t.Fatalf("second toggle: completed=%v found=%v", completed, found)
	}

	got, _ := m.Get(task.ID)
	if got != task {
		t.Errorf("expected %+v after two toggles, got %+v", task, got)
	}
	assertCounts(t, m)
}

func TestToggle_UnknownID(t *testing.T) {
	m := tasklist.New()
	m.Add("A")
	m.Add("B")
	before := m.List()

	if _, found := m.Toggle(42); found {
		t.Error("expected not found")
	}

	after := m.List()
	if len(after) != len(before) {
		t.Fatalf("expected %d tasks, got %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("task %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
	if m.Remaining() != 2 || m.Total() != 2 {
		t.Errorf("expected 2/2, got %d/%d", m.Remaining(), m.Total())
	}
}

func TestRemove(t *testing.T) {
	m := tasklist.New()
	a, _ := m.Add("A")
	m.Add("B")
	m.Add("C")

	if !m.Remove(a.ID) {
		t.Fatal("expected removal")
	}
	if m.Total() != 2 {
		t.Errorf("expected total 2, got %d", m.Total())
	}
	if m.Remove(a.ID) {
		t.Error("second removal of the same id should be a no-op")
	}
	if m.Total() != 2 {
		t.Errorf("expected total 2 after repeated removal, got %d", m.Total())
	}
	if _, ok := m.Get(a.ID); ok {
		t.Error("removed task still reachable through Get")
	}
	assertCounts(t, m)
}

func TestRemove_PreservesOrder(t *testing.T) {
	m := tasklist.New()
	m.Add("A")
	b, _ := m.Add("B")
	m.Add("C")
	m.Add("D")

	m.Remove(b.ID)

	want := []string{"A", "C", "D"}
	if got := texts(m.List()); !equalStrings(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScenario(t *testing.T) {
	m := tasklist.New()
	a, _ := m.Add("A")
	b, _ := m.Add("B")
	m.Add("C")

	if got := texts(m.List()); !equalStrings(got, []string{"A", "B", "C"}) {
		t.Errorf("expected [A B C], got %v", got)
	}
	if m.Total() != 3 || m.Remaining() != 3 {
		t.Errorf("expected 3/3, got remaining=%d total=%d", m.Remaining(), m.Total())
	}

	m.Toggle(b.ID)
	if m.Remaining() != 2 {
		t.Errorf("expected 2 remaining, got %d", m.Remaining())
	}

	m.Remove(a.ID)
	if got := texts(m.List()); !equalStrings(got, []string{"B", "C"}) {
		t.Errorf("expected [B C], got %v", got)
	}
	if m.Total() != 2 || m.Remaining() != 1 {
		t.Errorf("expected remaining=1 total=2, got remaining=%d total=%d", m.Remaining(), m.Total())
	}
	assertCounts(t, m)
}

func TestIDs_NotReusedAfterRemove(t *testing.T) {
	m := tasklist.New()
	m.Add("A")
	b, _ := m.Add("B")
	m.Remove(b.ID)

	c, _ := m.Add("C")
	if c.ID != 3 {
		t.Errorf("expected id 3, got %d", c.ID)
	}
}

// stuckGenerator always returns the same id.
type stuckGenerator struct{ id service.ID }

func (g stuckGenerator) NextID() service.ID { return g.id }

func TestIDs_GeneratorCollisionFallsBack(t *testing.T) {
	m := tasklist.New(tasklist.WithIDGenerator(stuckGenerator{id: 7}))

	a, _ := m.Add("A")
	b, _ := m.Add("B")
	c, _ := m.Add("C")

	if a.ID != 7 || b.ID != 8 || c.ID != 9 {
		t.Errorf("expected ids 7,8,9, got %d,%d,%d", a.ID, b.ID, c.ID)
	}
}

func TestIDs_NonPositiveGeneratorFallsBack(t *testing.T) {
	m := tasklist.New(tasklist.WithIDGenerator(stuckGenerator{id: 0}))

	a, _ := m.Add("A")
	if a.ID != 1 {
		t.Errorf("expected id 1, got %d", a.ID)
	}
}

func TestInvariant_RandomizedSequence(t *testing.T) {
	m := tasklist.New()
	ops := []struct {
		op   string
		text string
		id   service.ID
	}{
		{"add", "A", 0}, {"add", " ", 0}, {"add", "B", 0}, {"toggle", "", 1},
		{"add", "C", 0}, {"toggle", "", 9}, {"remove", "", 2}, {"toggle", "", 3},
		{"toggle", "", 1}, {"remove", "", 2}, {"add", "D", 0}, {"remove", "", 1},
	}

	for i, op := range ops {
		switch op.op {
		case "add":
			m.Add(op.text)
		case "toggle":
			m.Toggle(op.id)
		case "remove":
			m.Remove(op.id)
		}
		assertCounts(t, m)
		if t.Failed() {
			t.Fatalf("counters out of sync after step %d (%s)", i, op.op)
		}
	}

	want := []string{"C", "D"}
	if got := texts(m.List()); !equalStrings(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if m.Remaining() != 1 {
		t.Errorf("expected 1 remaining, got %d", m.Remaining())
	}
}
