package dataset

import (
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	data := `id,tokens,answer_id
1,how do i reset my password,10
2,billing address change,20
3,,10
`
	table, err := Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("Len = %d, want 3", table.Len())
	}

	q := table.Questions[0]
	if q.ID != 1 || q.AnswerID != 10 {
		t.Errorf("question 0 = %+v", q)
	}
	if len(q.Tokens) != 6 || q.Tokens[0] != "how" || q.Tokens[5] != "password" {
		t.Errorf("tokens = %v", q.Tokens)
	}

	// Empty tokens field is a zero-token question, not an error.
	if len(table.Questions[2].Tokens) != 0 {
		t.Errorf("expected zero tokens, got %v", table.Questions[2].Tokens)
	}

	labels := table.Labels()
	if labels[0] != 10 || labels[1] != 20 || labels[2] != 10 {
		t.Errorf("labels = %v", labels)
	}
}

func TestReadRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"wrong header", "question,words,label\n1,a b,2\n"},
		{"bad question id", "id,tokens,answer_id\nx,a b,2\n"},
		{"bad answer id", "id,tokens,answer_id\n1,a b,x\n"},
		{"header only", "id,tokens,answer_id\n"},
	}
	for _, tc := range cases {
		if _, err := Read(strings.NewReader(tc.data)); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does/not/exist.csv"); err == nil {
		t.Error("expected error for missing file")
	}
}
