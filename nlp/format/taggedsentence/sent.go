// Package taggedsentence reads whitespace-separated word/POS tokens,
// one sentence per line, for parsing without gold annotation.
package taggedsentence

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	nlp "listdep/nlp/types"
)

const SEPARATOR = "/"

// ParseToken splits a word/POS token on its last separator; earlier
// separators belong to the word itself (e.g. "1/2/CD").
func ParseToken(token string) (nlp.TaggedToken, error) {
	split := strings.LastIndex(token, SEPARATOR)
	if split <= 0 || split == len(token)-1 {
		return nlp.TaggedToken{}, fmt.Errorf("token %q is not of the form word%spos", token, SEPARATOR)
	}
	return nlp.TaggedToken{Token: token[:split], POS: token[split+1:]}, nil
}

func Read(reader io.Reader, limit int) ([]nlp.BasicTaggedSentence, error) {
	var sentences []nlp.BasicTaggedSentence
	scanner := bufio.NewScanner(reader)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		sentence := make(nlp.BasicTaggedSentence, 0, len(fields))
		for _, field := range fields {
			token, err := ParseToken(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %s", lineNum, err.Error())
			}
			sentence = append(sentence, token)
		}
		sentences = append(sentences, sentence)
		if limit > 0 && len(sentences) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sentences, nil
}

func ReadFile(filename string, limit int) ([]nlp.BasicTaggedSentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file, limit)
}
