// Package dataset loads the tokenized question tables the pipeline consumes.
// Tokenization happens upstream; a table row is just a question id, its
// pre-tokenized text, and the id of the answer class it belongs to.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Question is one row of a table.
type Question struct {
	ID       int
	Tokens   []string
	AnswerID int
}

// Table is an ordered collection of questions.
type Table struct {
	Questions []Question
}

// Len returns the number of questions.
func (t *Table) Len() int {
	return len(t.Questions)
}

// Docs returns the token sequences in table order.
func (t *Table) Docs() [][]string {
	docs := make([][]string, len(t.Questions))
	for i, q := range t.Questions {
		docs[i] = q.Tokens
	}
	return docs
}

// Labels returns the answer-class ids in table order.
func (t *Table) Labels() []int {
	labels := make([]int, len(t.Questions))
	for i, q := range t.Questions {
		labels[i] = q.AnswerID
	}
	return labels
}

// Load reads a question table from a CSV file with the header
// id,tokens,answer_id. The tokens column is a space-separated token list; an
// empty tokens field is kept as a zero-token question.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("faqrank: opening dataset: %w", err)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("faqrank: reading dataset %s: %w", path, err)
	}
	slog.Debug("Loaded dataset", "path", path, "questions", table.Len())
	return table, nil
}

// Read parses a question table from CSV data.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, err
	}
	if header[0] != "id" || header[1] != "tokens" || header[2] != "answer_id" {
		return nil, fmt.Errorf("unexpected header %v, want [id tokens answer_id]", header)
	}

	table := &Table{}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		id, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad question id %q", line, record[0])
		}
		answerID, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad answer id %q", line, record[2])
		}
		table.Questions = append(table.Questions, Question{
			ID:       id,
			Tokens:   strings.Fields(record[1]),
			AnswerID: answerID,
		})
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("no questions")
	}
	return table, nil
}
