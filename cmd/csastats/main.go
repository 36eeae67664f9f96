package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Arborescent/shogi-kifu/pkg/csa"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
)

type filterEnv struct {
	GameID      string `expr:"game_id"`
	Dialect     string `expr:"dialect"`
	BlackName   string `expr:"black_name"`
	WhiteName   string `expr:"white_name"`
	Event       string `expr:"event"`
	Site        string `expr:"site"`
	MoveCount   int    `expr:"move_count"`
	Ending      string `expr:"ending"`
	TotalTimeMs int64  `expr:"total_time_ms"`
}

func envFromSummary(s csa.GameSummary) filterEnv {
	return filterEnv{
		GameID:      s.GameID,
		Dialect:     s.Dialect,
		BlackName:   s.BlackName,
		WhiteName:   s.WhiteName,
		Event:       s.Event,
		Site:        s.Site,
		MoveCount:   int(s.MoveCount),
		Ending:      s.Ending,
		TotalTimeMs: s.TotalTimeMs,
	}
}

func main() {
	csaDir := flag.String("csa-dir", "", "input directory for CSA files")
	parquetPath := flag.String("parquet", "", "input parquet file")
	parquetOut := flag.String("parquet-out", "", "write summaries to this parquet file")
	filterExpr := flag.String("filter", "", "boolean expression over summary fields, e.g. 'move_count > 100 and ending == \"TORYO\"'")
	flag.Parse()

	if (*csaDir == "") == (*parquetPath == "") {
		fatal(fmt.Errorf("specify exactly one of -csa-dir or -parquet"))
	}
	if *parquetOut != "" && *csaDir == "" {
		fatal(fmt.Errorf("-parquet-out requires -csa-dir"))
	}

	var program *vm.Program
	if *filterExpr != "" {
		compiled, err := expr.Compile(*filterExpr, expr.Env(filterEnv{}), expr.AsBool())
		if err != nil {
			fatal(fmt.Errorf("bad filter: %w", err))
		}
		program = compiled
	}

	var summaries []csa.GameSummary
	failed := 0
	if *parquetPath != "" {
		loaded, err := readParquet(*parquetPath, 4)
		if err != nil {
			fatal(err)
		}
		summaries = loaded
	} else {
		files, err := csa.CollectCSA(*csaDir)
		if err != nil {
			fatal(err)
		}
		if len(files) == 0 {
			fatal(fmt.Errorf("no .csa files found in %s", *csaDir))
		}
		for _, path := range files {
			rec, err := csa.LoadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to parse %s: %v\n", path, err)
				failed++
				continue
			}
			summaries = append(summaries, csa.SummaryFromRecord(gameID(path), rec))
		}
	}

	if program != nil {
		kept := summaries[:0]
		for _, s := range summaries {
			out, err := expr.Run(program, envFromSummary(s))
			if err != nil {
				fatal(fmt.Errorf("filter failed on %s: %w", s.GameID, err))
			}
			if out.(bool) {
				kept = append(kept, s)
			}
		}
		summaries = kept
	}

	if *parquetOut != "" {
		ch := make(chan csa.GameSummary)
		done := make(chan error, 1)
		go func() {
			done <- csa.WriteParquet(*parquetOut, ch, 4)
		}()
		for _, s := range summaries {
			ch <- s
		}
		close(ch)
		if err := <-done; err != nil {
			fatal(err)
		}
	}

	dialectCounts := make(map[string]int)
	endingCounts := make(map[string]int)
	totalMoves := 0
	for _, s := range summaries {
		dialectCounts[s.Dialect]++
		if s.Ending != "" {
			endingCounts[s.Ending]++
		}
		totalMoves += int(s.MoveCount)
	}

	fmt.Printf("games: %d\n", len(summaries))
	fmt.Printf("failed files: %d\n", failed)
	if len(summaries) > 0 {
		fmt.Printf("average moves: %.1f\n", float64(totalMoves)/float64(len(summaries)))
	}
	fmt.Println("dialects:")
	printCounts(dialectCounts)
	fmt.Println("endings:")
	printCounts(endingCounts)
}

func printCounts(counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%s,%d\n", key, counts[key])
	}
}

func gameID(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func readParquet(path string, parallel int64) ([]csa.GameSummary, error) {
	absPath := path
	if !filepath.IsAbs(path) {
		if resolved, err := filepath.Abs(path); err == nil {
			absPath = resolved
		}
	}
	fileReader, err := local.NewLocalFileReader(absPath)
	if err != nil {
		return nil, err
	}
	defer fileReader.Close()

	parquetReader, err := reader.NewParquetReader(fileReader, new(csa.GameSummary), parallel)
	if err != nil {
		return nil, err
	}
	defer parquetReader.ReadStop()

	num := int(parquetReader.GetNumRows())
	summaries := make([]csa.GameSummary, 0, num)
	batchSize := 1024
	for offset := 0; offset < num; offset += batchSize {
		remain := num - offset
		if remain < batchSize {
			batchSize = remain
		}
		batch := make([]csa.GameSummary, batchSize)
		if err := parquetReader.Read(&batch); err != nil {
			return nil, err
		}
		summaries = append(summaries, batch...)
	}
	return summaries, nil
}
