package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"genblast2gff/internal/gff"
	"genblast2gff/pkg/api"
)

func testFeature(seqid, attrs string) gff.Feature {
	return gff.Feature{
		SeqID: seqid, Source: "BLAST", Type: "match",
		Start: "100", End: "200", Score: "50.5", Strand: "+", Phase: ".",
		Attributes: attrs,
		NumHSPs:    2, AvgPercIdentity: 97.0, QueryCoveragePerc: 95.0, MatchLength: 100,
	}
}

func TestGFFOutputWithHeader(t *testing.T) {
	var b bytes.Buffer
	in, done := StartFeatureWriter(&b, "gff", true, 1)
	in <- testFeature("CHR1", "ID=QGENE_1")
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("write: %v", err)
	}
	want := gff.Header + "\nCHR1\tBLAST\tmatch\t100\t200\t50.5\t+\t.\tID=QGENE_1\n"
	if b.String() != want {
		t.Fatalf("output mismatch:\n got: %q\nwant: %q", b.String(), want)
	}
}

func TestGFFOutputNoHeader(t *testing.T) {
	var b bytes.Buffer
	in, done := StartFeatureWriter(&b, "gff", false, 1)
	in <- testFeature("CHR1", "ID=QGENE_1")
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.Contains(b.String(), gff.Header) {
		t.Fatalf("header should be suppressed: %q", b.String())
	}
}

func TestGFFHeaderEvenWhenEmpty(t *testing.T) {
	var b bytes.Buffer
	in, done := StartFeatureWriter(&b, "gff", true, 1)
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("write: %v", err)
	}
	if b.String() != gff.Header+"\n" {
		t.Fatalf("expected bare header, got %q", b.String())
	}
}

func TestJSONOutput(t *testing.T) {
	var b bytes.Buffer
	in, done := StartFeatureWriter(&b, "json", true, 2)
	in <- testFeature("CHR1", "ID=A_1")
	in <- testFeature("CHR2", "ID=B_2")
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("write: %v", err)
	}
	var got []api.FeatureV1
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 || got[0].SeqID != "CHR1" || got[1].Attributes != "ID=B_2" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestJSONOutputEmptyArray(t *testing.T) {
	var b bytes.Buffer
	in, done := StartFeatureWriter(&b, "json", true, 1)
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.TrimSpace(b.String()) != "[]" {
		t.Fatalf("expected empty array, got %q", b.String())
	}
}

func TestJSONLOutput(t *testing.T) {
	var b bytes.Buffer
	in, done := StartFeatureWriter(&b, "jsonl", true, 2)
	in <- testFeature("CHR1", "ID=A_1")
	in <- testFeature("CHR2", "ID=B_2")
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 JSONL lines, got %d: %q", len(lines), b.String())
	}
	for _, ln := range lines {
		var f api.FeatureV1
		if err := json.Unmarshal([]byte(ln), &f); err != nil {
			t.Fatalf("bad JSONL line %q: %v", ln, err)
		}
	}
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartFeatureWriter(&b, "nope-format", true, 1)
	close(in)
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unsupported output") {
		t.Fatalf("expected unsupported-output error, got %v", err)
	}
}
