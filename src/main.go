package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"google.golang.org/api/iterator"

	"wordgrove.com/wordsearch"
	"wordgrove.com/wordsearch/pkg/wordlist"
)

type GeneratePuzzleRequest struct {
	NumRows             int      `json:"numRows"`
	NumColumns          int      `json:"numColumns"`
	Words               []string `json:"words"`
	WordScope           string   `json:"wordScope"`
	Theme               string   `json:"theme"`
	ThemeWordCount      int      `json:"themeWordCount"`
	UseOnlyGivenLetters bool     `json:"useOnlyGivenLetters"`
	AllowBackwardWords  bool     `json:"allowBackwardWords"`
	Seed                uint64   `json:"seed"`
}

type PuzzlePlacement struct {
	Word      string `json:"word"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
}

type GeneratePuzzleResponse struct {
	Success    bool              `json:"success"`
	Grid       string            `json:"grid,omitempty"`
	Rendered   string            `json:"rendered,omitempty"`
	Placements []PuzzlePlacement `json:"placements,omitempty"`
	Error      string            `json:"error,omitempty"`
}

const maxGridSide = 50

func getWords(ctx context.Context, scope string) ([]string, error) {
	client, err := bigquery.NewClient(ctx, "wordgrove-x")
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	query := fmt.Sprintf("SELECT word_key FROM `wordgrove-x.WordBank.all_words` WHERE scope = %q", scope)
	q := client.Query(query)
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}

func getThemedWords(ctx context.Context, theme string, count, maxLen int) ([]string, error) {
	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		return nil, fmt.Errorf("themed word lists are not configured")
	}

	client, err := wordlist.NewGeminiClient(ctx, projectID, os.Getenv("GCP_REGION"))
	if err != nil {
		return nil, fmt.Errorf("wordlist.NewGeminiClient: %w", err)
	}
	defer client.Close()

	return client.ThemedWords(ctx, theme, count, maxLen)
}

func execute(ctx context.Context, req GeneratePuzzleRequest) (*wordsearch.WordSearch, error) {
	if req.NumRows < 1 || req.NumColumns < 1 {
		return nil, fmt.Errorf("numRows and numColumns must be at least 1")
	}
	if req.NumRows > maxGridSide || req.NumColumns > maxGridSide {
		return nil, fmt.Errorf("numRows and numColumns must be at most %d", maxGridSide)
	}

	for i, word := range req.Words {
		req.Words[i] = strings.ToLower(word)
	}

	maxWordLength := min(req.NumRows, req.NumColumns)

	if req.WordScope != "" {
		scopeWords, err := getWords(ctx, req.WordScope)
		if err != nil {
			return nil, fmt.Errorf("getWords: %w", err)
		}
		fmt.Printf("Loaded %d words for scope %q\n", len(scopeWords), req.WordScope)
		req.Words = append(req.Words, scopeWords...)
	}

	if req.Theme != "" {
		count := req.ThemeWordCount
		if count <= 0 {
			count = 9
		}
		themeWords, err := getThemedWords(ctx, req.Theme, count, maxWordLength)
		if err != nil {
			return nil, fmt.Errorf("getThemedWords: %w", err)
		}
		fmt.Printf("Generated %d words for theme %q\n", len(themeWords), req.Theme)
		req.Words = append(req.Words, themeWords...)
	}

	if len(req.Words) == 0 {
		return nil, fmt.Errorf("no words: provide words, wordScope, or theme")
	}

	seed := req.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, uint64(time.Now().Nanosecond())))

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
		fmt.Printf("Setting timeout to %v\n", timeout)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return wordsearch.Generate(ctx, &wordsearch.Config{
		NumRows:             req.NumRows,
		NumColumns:          req.NumColumns,
		Words:               req.Words,
		UseOnlyGivenLetters: req.UseOnlyGivenLetters,
		AllowBackwardWords:  req.AllowBackwardWords,
	}, rng)
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func generatePuzzle(w http.ResponseWriter, r *http.Request) {
	// Set CORS headers
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req GeneratePuzzleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("Error parsing JSON body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		response := GeneratePuzzleResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	ws, err := execute(r.Context(), req)

	response := GeneratePuzzleResponse{
		Success: err == nil,
	}

	if err != nil {
		response.Error = err.Error()
	} else {
		response.Grid = ws.Grid().Repr()
		response.Rendered = ws.String()
		for _, p := range ws.Placements() {
			response.Placements = append(response.Placements, PuzzlePlacement{
				Word:      p.Word,
				Row:       p.Span.Begin.Row,
				Col:       p.Span.Begin.Col,
				Direction: p.Span.Dir.String(),
			})
		}
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Printf("Error marshaling response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/generate-puzzle", generatePuzzle)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
