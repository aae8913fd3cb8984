package hufftree

import (
	"strings"
	"testing"
)

func TestCodebook_Dump(t *testing.T) {
	cb, err := Generate(makeTestFrequencies())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Codebook{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode('a') = \"1100\"\n",
		"\tEncode('b') = \"1101\"\n",
		"\tEncode('c') = \"100\"\n",
		"\tEncode('d') = \"101\"\n",
		"\tEncode('e') = \"111\"\n",
		"\tEncode('f') = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = cb.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCodebook_IsPrefixFree(t *testing.T) {
	type testRow struct {
		name   string
		codes  []string
		expect bool
	}

	testData := [...]testRow{
		{name: "single", codes: []string{"0"}, expect: true},
		{name: "pair", codes: []string{"0", "1"}, expect: true},
		{name: "huffman", codes: []string{"0", "100", "101", "1100", "1101", "111"}, expect: true},
		{name: "prefix", codes: []string{"0", "01", "11"}, expect: false},
		{name: "duplicate", codes: []string{"10", "10"}, expect: false},
		{name: "empty", codes: []string{"", "1"}, expect: false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			cb := make(Codebook, len(row.codes))
			for i, str := range row.codes {
				hc, err := ParseCode(str)
				if err != nil {
					t.Fatalf("ParseCode(%q) failed: %v", str, err)
				}
				cb[Symbol('a'+i)] = hc
			}
			if actual := cb.IsPrefixFree(); actual != row.expect {
				t.Errorf("wrong result:\n\texpect: %v\n\tactual: %v", row.expect, actual)
			}
		})
	}
}

func TestCodebook_WeightedLength(t *testing.T) {
	cb := Codebook{'a': MakeCode(0), 'b': MakeCode(1, 0), 'c': MakeCode(1, 1)}
	freqs := Frequencies{'a': 10, 'b': 3, 'c': 2, 'z': 99}
	if actual := cb.WeightedLength(freqs); actual != 20 {
		t.Errorf("wrong weighted length:\n\texpect: %d\n\tactual: %d", 20, actual)
	}
	if cb.MinSize() != 1 || cb.MaxSize() != 2 {
		t.Errorf("wrong sizes:\n\texpect: 1 .. 2\n\tactual: %d .. %d", cb.MinSize(), cb.MaxSize())
	}
}
