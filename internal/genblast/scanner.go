// internal/genblast/scanner.go
package genblast

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"genblast2gff/internal/logging"
)

// Report markers. genblastA delimits each report block with literal
// START/END lines and announces the query once per block.
const (
	startMarker = "//*****************START"
	endMarker   = "//******************END"
	queryMarker = "//for query: "
	hspPrefix   = "HSP_ID"
	coverToken  = "gene cover"
)

var (
	// <query>|<target>:<start>..<end>|<strand>|gene cover:<count>(<perc>%)|score:<score>|rank:<rank>
	matchRE = regexp.MustCompile(`^([^|]*)\|([^:]*):(\d+)\.\.(\d+)\|([+-])\|gene cover:(\d+)\(([\d.]+)%\)\|score:([-\d.]+)\|rank:(\d+)$`)
	// HSP_ID[<id>]:(<mstart>-<mend>);query:(<qstart>-<qend>); pid: <pid>
	hspRE = regexp.MustCompile(`^HSP_ID\[(\d+)\]:\((\d+)-(\d+)\);query:\((\d+)-(\d+)\); pid: ([\d.]+)$`)
)

// block holds all per-block working state. Abandoning a block on a
// malformed line is a single reset, so nothing half-built can leak
// into the next block.
type block struct {
	inBlock bool
	query   string
	match   *Match
	hsps    map[int]HSP
}

func (b *block) reset() {
	b.inBlock = false
	b.query = ""
	b.match = nil
	b.hsps = make(map[int]HSP)
}

// ScanCtx reads a genblastA report from r and calls emit once per
// finalized match, in input order. A match is finalized when the next
// match line or the block's END marker is reached; a block left open at
// EOF emits nothing.
//
// Malformed lines are logged and abandon the enclosing block without
// emitting its in-progress match; scanning resumes at the next START
// marker. Only scanner I/O errors, context cancellation, and errors
// returned by emit abort the scan.
func ScanCtx(ctx context.Context, r io.Reader, logger logging.Logger, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 1 << 20 // generous; report lines are short
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var b block
	b.reset()

	finalize := func() error {
		if b.match == nil {
			return nil
		}
		rec := Record{QueryName: b.query, Match: *b.match, HSPs: b.hsps}
		b.match = nil
		b.hsps = make(map[int]HSP)
		return emit(rec)
	}

	lineNo := 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		line := sc.Text()

		if !b.inBlock {
			if strings.HasPrefix(line, startMarker) {
				b.inBlock = true
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, endMarker):
			if err := finalize(); err != nil {
				return err
			}
			b.reset()

		case strings.HasPrefix(line, queryMarker):
			fields := strings.Fields(strings.TrimPrefix(line, queryMarker))
			if len(fields) != 4 {
				logger.Error("wrong number of fields on query line", "got", len(fields), "want", 4, "lineno", lineNo, "line", line)
				b.reset()
				continue
			}
			b.query = fields[2]

		case strings.Contains(line, coverToken):
			// A new match line is the boundary that finalizes the
			// previous one; the HSPs seen so far belong to it.
			if err := finalize(); err != nil {
				return err
			}
			b.hsps = make(map[int]HSP)
			m, ok := parseMatch(strings.TrimRight(line, " \t\r"))
			if !ok {
				logger.Error("genomic match pattern failed", "lineno", lineNo, "line", line)
				b.reset()
				continue
			}
			b.match = &m
			logger.Debug("genomic match",
				"query", b.query, "target", m.Name,
				"start", m.Start, "end", m.End, "rank", m.Rank)

		case strings.HasPrefix(line, hspPrefix):
			id, h, ok := parseHSP(strings.TrimRight(line, " \t\r"))
			if !ok {
				logger.Error("HSP pattern failed", "lineno", lineNo, "line", line)
				b.reset()
				continue
			}
			b.hsps[id] = h
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("genblast scan: %w", err)
	}
	return nil
}

// Scan is the background-context convenience wrapper around ScanCtx.
func Scan(r io.Reader, logger logging.Logger, emit func(Record) error) error {
	return ScanCtx(context.Background(), r, logger, emit)
}

// Stream is the channel form of ScanCtx for consumers that prefer
// ranging over records. The channel is closed when the input is
// exhausted or ctx is cancelled.
func Stream(ctx context.Context, r io.Reader, logger logging.Logger) <-chan Record {
	out := make(chan Record, 8)
	go func() {
		defer close(out)
		_ = ScanCtx(ctx, r, logger, func(rec Record) error {
			select {
			case out <- rec:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out
}

func parseMatch(line string) (Match, bool) {
	g := matchRE.FindStringSubmatch(line)
	if g == nil {
		return Match{}, false
	}
	// g[1] is the query prefix on the match line; the tracked
	// per-block query name is authoritative, so it is not kept.
	start, err1 := strconv.Atoi(g[3])
	end, err2 := strconv.Atoi(g[4])
	count, err3 := strconv.Atoi(g[6])
	perc, err4 := strconv.ParseFloat(g[7], 64)
	score, err5 := strconv.ParseFloat(g[8], 64)
	rank, err6 := strconv.Atoi(g[9])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil || err6 != nil {
		return Match{}, false
	}
	return Match{
		Name:            g[2],
		Start:           start,
		End:             end,
		StartText:       g[3],
		EndText:         g[4],
		Strand:          g[5],
		CoverageCount:   count,
		CoveragePercent: perc,
		Score:           score,
		ScoreText:       g[8],
		Rank:            rank,
	}, true
}

func parseHSP(line string) (int, HSP, bool) {
	g := hspRE.FindStringSubmatch(line)
	if g == nil {
		return 0, HSP{}, false
	}
	id, err0 := strconv.Atoi(g[1])
	ms, err1 := strconv.Atoi(g[2])
	me, err2 := strconv.Atoi(g[3])
	qs, err3 := strconv.Atoi(g[4])
	qe, err4 := strconv.Atoi(g[5])
	pid, err5 := strconv.ParseFloat(g[6], 64)
	if err0 != nil || err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
		return 0, HSP{}, false
	}
	return id, HSP{MatchStart: ms, MatchEnd: me, QueryStart: qs, QueryEnd: qe, PercID: pid}, true
}
