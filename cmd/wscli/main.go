package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"wordgrove.com/wordsearch"
	"wordgrove.com/wordsearch/pkg/wordlist"
)

// demoWords is the word list used when no file or theme is given.
var demoWords = []string{
	"nap",
	"sleep",
	"pillow",
	"eggplant",
	"distraction",
	"sandwich",
	"anklet",
	"rats",
	"skater",
}

func main() {
	numRows := flag.Int("rows", 15, "The number of grid rows")
	numCols := flag.Int("cols", 15, "The number of grid columns")
	file := flag.String("file", "", "The file to load words from")
	theme := flag.String("theme", "", "Generate the word list from a theme with Gemini (requires GCP_PROJECT_ID)")
	themeCount := flag.Int("theme-count", 9, "How many words to request for a theme")
	count := flag.Int("count", 1, "How many puzzles to generate")
	seed := flag.Uint64("seed", 0, "The random seed (0 picks one from the clock)")

	backward := flag.Bool("backward", true, "Allow backward and upward words")
	givenLetters := flag.Bool("given-letters", false, "Fill the grid using only letters from the word list")
	showSpans := flag.Bool("spans", false, "Print where each word was placed")

	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for placement")

	profile := flag.Bool("profile", false, "Profile the generator")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	if *file != "" && *theme != "" {
		fmt.Println("Cannot use both -file and -theme")
		os.Exit(1)
	}

	ctx := context.Background()

	maxWordLength := *numRows
	if *numCols < maxWordLength {
		maxWordLength = *numCols
	}

	words := demoWords
	if *file != "" {
		fmt.Println("Loading words from file...")
		var err error
		if words, err = loadFromFile(ctx, *file, 3, maxWordLength); err != nil {
			fmt.Println("Error loading words from file:", err)
			os.Exit(1)
		}
	}
	if *theme != "" {
		fmt.Println("Generating words for theme:", *theme)
		var err error
		if words, err = loadFromTheme(ctx, *theme, *themeCount, maxWordLength); err != nil {
			fmt.Println("Error generating themed words:", err)
			os.Exit(1)
		}
	}

	fmt.Println("Words:", len(words))

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			fmt.Println("Error creating memory profile file:", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(s, uint64(time.Now().Nanosecond())))

	cfg := &wordsearch.Config{
		NumRows:             *numRows,
		NumColumns:          *numCols,
		Words:               words,
		UseOnlyGivenLetters: *givenLetters,
		AllowBackwardWords:  *backward,
	}

	for i := range *count {
		genCtx, cancel := context.WithTimeout(ctx, *timeout)
		ws, err := wordsearch.Generate(genCtx, cfg, rng)
		cancel()
		if err != nil {
			fmt.Println("Error generating puzzle:", err)
			os.Exit(1)
		}

		if i > 0 {
			fmt.Println("--------------------------------")
		}
		fmt.Print(ws)

		if *showSpans {
			for _, p := range ws.Placements() {
				fmt.Printf("%s: starts %v going %v\n", p.Word, p.Span.Begin, p.Span.Dir)
			}
		}
	}

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}
}

func loadFromFile(ctx context.Context, path string, minWordLength, maxWordLength int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if strings.HasPrefix(word, "#") {
			continue
		}
		if len(word) < minWordLength || len(word) > maxWordLength {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		for _, r := range word {
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("word %s contains non-lowercase letter %q", word, r)
			}
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}

func loadFromTheme(ctx context.Context, theme string, count, maxWordLength int) ([]string, error) {
	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		return nil, fmt.Errorf("GCP_PROJECT_ID must be set to use -theme")
	}

	client, err := wordlist.NewGeminiClient(ctx, projectID, os.Getenv("GCP_REGION"))
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return client.ThemedWords(ctx, theme, count, maxWordLength)
}
